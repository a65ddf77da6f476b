package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/opctl/internal/domain"
)

// RenderMultisigState renders the signer set and, when present, the proposal
func RenderMultisigState(state *domain.MultisigState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%d of %d)\n",
		color.New(color.FgWhite, color.Bold).Sprint("Multisig"),
		state.Multisig.Address.Hex(),
		state.Multisig.Threshold,
		len(state.Multisig.Signers),
	)

	if p := state.Proposal; p != nil {
		t := newTable()
		t.AppendRows([]table.Row{
			{"Proposal", p.ID},
			{"Target", p.Data.ContractAddress},
			{"Entrypoint", p.Data.Entrypoint},
			{"Calldata", fmt.Sprintf("%d words", len(p.Data.Calldata))},
			{"Confirmations", fmt.Sprintf("%d / %d", p.Confirmations, state.Multisig.Threshold)},
			{"Stage", stageColor(state.Stage()).Sprint(state.Stage())},
			{"Next action", actionColor(p.NextAction).Sprint(p.NextAction)},
		})
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	t := newTable()
	t.AppendHeader(table.Row{"#", "Signer"})
	for i, signer := range state.Multisig.Signers {
		t.AppendRow(table.Row{i + 1, signer.Hex()})
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:      "  ",
		PaddingRight:     "  ",
		MiddleHorizontal: "─",
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignLeft}})
	return t
}

func stageColor(stage domain.ProposalStage) *color.Color {
	switch stage {
	case domain.StageExecuted:
		return color.New(color.FgGreen)
	case domain.StageExecutable:
		return color.New(color.FgCyan, color.Bold)
	default:
		return color.New(color.FgYellow)
	}
}

func actionColor(action domain.Action) *color.Color {
	switch action {
	case domain.ActionExecute:
		return color.New(color.FgCyan, color.Bold)
	case domain.ActionApprove:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
