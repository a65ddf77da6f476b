package progress

import (
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// QuietSink drops progress and informational output. Errors still reach out
// so that --json runs keep stdout clean while reporting failures on stderr.
type QuietSink struct {
	usecase.NopProgress
	out io.Writer
}

func NewQuietSink(out io.Writer) *QuietSink {
	return &QuietSink{out: out}
}

func (q *QuietSink) Error(message string) {
	color.New(color.FgRed).Fprintln(q.out, message)
}

var _ usecase.ProgressSink = (*QuietSink)(nil)
