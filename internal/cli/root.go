package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/opctl/internal/adapters/progress"
	"github.com/trebuchet-org/opctl/internal/app"
	"github.com/trebuchet-org/opctl/internal/commands"
	"github.com/trebuchet-org/opctl/internal/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// commands that run without a project or node
var standalone = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
	"commands":   true,
}

// NewRootCmd creates the root command with one subcommand per registered command id
func NewRootCmd() *cobra.Command {
	registry, err := commands.NewRegistry()
	if err != nil {
		// registration only fails on duplicate ids, a programming error
		panic(err)
	}

	rootCmd := &cobra.Command{
		Use:   "opctl",
		Short: "Operator commands for EVM contracts",
		Long: `opctl runs typed operator commands against EVM contracts. Every command can be
sent directly from a wallet or routed through a multisig as a proposal that is
approved and executed by its signers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if standalone[cmd.Name()] {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerSink(os.Stderr)
			if v.GetBool("json") {
				sink = progress.NewQuietSink(os.Stderr)
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}
			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			if a.Config.NonInteractive {
				return cmd.Help()
			}
			id, err := a.Selector.SelectCommand(a.Registry.Specs(), "Select a command")
			if err != nil {
				return err
			}
			sub, _, err := cmd.Find([]string{id})
			if err != nil {
				return err
			}
			return sub.Help()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., local, sepolia)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "operations",
		Title: "Operator Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, spec := range registry.Specs() {
		opCmd := newOperationCmd(spec)
		opCmd.GroupID = "operations"
		rootCmd.AddCommand(opCmd)
	}

	commandsCmd := NewCommandsCmd(registry)
	commandsCmd.GroupID = "management"
	rootCmd.AddCommand(commandsCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
