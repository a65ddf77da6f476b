package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/opctl/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CommandsRenderer lists registered commands grouped by category
type CommandsRenderer struct {
	out io.Writer
}

func NewCommandsRenderer(out io.Writer) *CommandsRenderer {
	return &CommandsRenderer{out: out}
}

func (r *CommandsRenderer) Render(specs []usecase.CommandSpec) error {
	if len(specs) == 0 {
		fmt.Fprintln(r.out, "No commands registered")
		return nil
	}

	groups := lo.GroupBy(specs, func(s usecase.CommandSpec) string { return s.Descriptor.Category })
	categories := lo.Keys(groups)
	sort.Strings(categories)

	title := cases.Title(language.English)
	for i, category := range categories {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, color.New(color.FgWhite, color.Bold).Sprint(title.String(category)))

		t := newTable()
		for _, spec := range groups[category] {
			t.AppendRow(table.Row{color.New(color.FgCyan).Sprint(spec.ID()), spec.Description})
		}
		fmt.Fprintln(r.out, t.Render())
	}
	return nil
}
