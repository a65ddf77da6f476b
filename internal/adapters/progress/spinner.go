package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// SpinnerSink reports progress with a spinner and colored messages
type SpinnerSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerSink creates a sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	opt := spinner.WithWriter(out)
	if f, ok := out.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opt)
	s.HideCursor = false
	return &SpinnerSink{out: out, spinner: s}
}

// OnProgress records stage changes and drives the spinner
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != "" && (len(r.stages) == 0 || r.stages[len(r.stages)-1].Stage != event.Stage) {
		now := time.Now()
		if len(r.stages) > 0 {
			r.stages[len(r.stages)-1].EndTime = now
		}
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: now})
	}

	if event.Stage == usecase.StageCompleted || !event.Spinner {
		r.spinner.Stop()
		return
	}
	r.spinner.Suffix = " " + r.stageLine() + "  " + event.Message
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

func (r *SpinnerSink) Success(message string) {
	r.print(color.New(color.FgGreen), "✓ "+message)
}

func (r *SpinnerSink) Warn(message string) {
	r.print(color.New(color.FgYellow), "⚠ "+message)
}

func (r *SpinnerSink) Error(message string) {
	r.print(color.New(color.FgRed), "✗ "+message)
}

// print writes a line while the spinner is paused
func (r *SpinnerSink) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	c.Fprintln(r.out, message)
	if wasActive {
		r.spinner.Start()
	}
}

// stageLine renders the stages seen so far, e.g. "✓ Submitting (1.2s) → ● Waiting"
func (r *SpinnerSink) stageLine() string {
	parts := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		if stage.EndTime.IsZero() {
			parts = append(parts, fmt.Sprintf("● %s", color.New(color.FgYellow).Sprint(stage.Stage)))
			continue
		}
		duration := stage.EndTime.Sub(stage.StartTime).Round(100 * time.Millisecond)
		parts = append(parts, fmt.Sprintf("✓ %s (%s)", color.New(color.FgGreen).Sprint(stage.Stage), duration))
	}
	return strings.Join(parts, " → ")
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
