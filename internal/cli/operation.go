package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/opctl/internal/app"
	"github.com/trebuchet-org/opctl/internal/cli/render"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// newOperationCmd exposes a registered command on the command line
func newOperationCmd(spec usecase.CommandSpec) *cobra.Command {
	use := spec.ID()
	positional := cobra.NoArgs
	if spec.Positional != "" {
		use += " <" + spec.Positional + ">"
		positional = cobra.MaximumNArgs(1)
	}

	cmd := &cobra.Command{
		Use:     use,
		Short:   spec.Description,
		Example: examples(spec.Examples),
		Args:    positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			return runOperation(cmd.Context(), a, spec.ID(), collectFlags(cmd, spec), args, cmd.OutOrStdout())
		},
	}

	for _, f := range spec.Flags {
		switch f.Kind {
		case usecase.FlagStringSlice:
			cmd.Flags().StringSlice(f.Name, nil, f.Usage)
		case usecase.FlagBool:
			cmd.Flags().Bool(f.Name, false, f.Usage)
		default:
			cmd.Flags().String(f.Name, "", f.Usage)
		}
	}

	return cmd
}

// collectFlags converts the flags the operator actually set
func collectFlags(cmd *cobra.Command, spec usecase.CommandSpec) usecase.Flags {
	flags := usecase.Flags{}
	for _, f := range spec.Flags {
		pf := cmd.Flags().Lookup(f.Name)
		if pf == nil || !pf.Changed {
			continue
		}
		switch f.Kind {
		case usecase.FlagStringSlice:
			v, _ := cmd.Flags().GetStringSlice(f.Name)
			flags[f.Name] = v
		case usecase.FlagBool:
			v, _ := cmd.Flags().GetBool(f.Name)
			flags[f.Name] = v
		default:
			flags[f.Name] = pf.Value.String()
		}
	}
	return flags
}

func runOperation(ctx context.Context, a *app.App, id string, flags usecase.Flags, args []string, out io.Writer) error {
	factory, err := a.Factory(id)
	if err != nil {
		return err
	}

	a.Log.Debug("creating command", "id", id, "flags", len(flags), "args", args)
	command, err := factory.Create(ctx, flags, args)
	if err != nil {
		return err
	}

	result, err := command.Execute(ctx)
	if result != nil {
		if rerr := render.NewResultRenderer(out, a.Config.JSON).Render(result); rerr != nil {
			return fmt.Errorf("failed to render result: %w", rerr)
		}
	}
	if err != nil {
		return err
	}

	if tx := result.Tx(); tx != nil && !tx.Accepted() {
		return fmt.Errorf("transaction rejected: %s", tx.ErrorMessage)
	}
	return nil
}

func examples(lines []string) string {
	indented := make([]string, len(lines))
	for i, l := range lines {
		indented[i] = "  " + l
	}
	return strings.Join(indented, "\n")
}
