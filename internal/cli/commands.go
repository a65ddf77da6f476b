package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/opctl/internal/cli/render"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// NewCommandsCmd lists the registered commands
func NewCommandsCmd(registry *usecase.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List available operator commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.NewCommandsRenderer(cmd.OutOrStdout()).Render(registry.Specs())
		},
	}
}
