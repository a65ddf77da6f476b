package interactive

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// CommandSelector lets the operator pick a registered command
type CommandSelector struct {
	nonInteractive bool
	run            func(s *promptui.Select) (int, error)
}

func NewCommandSelector(cfg *config.RuntimeConfig) *CommandSelector {
	return &CommandSelector{
		nonInteractive: cfg.NonInteractive,
		run: func(s *promptui.Select) (int, error) {
			i, _, err := s.Run()
			return i, err
		},
	}
}

// SelectCommand returns the id of the chosen command
func (s *CommandSelector) SelectCommand(specs []usecase.CommandSpec, label string) (string, error) {
	if s.nonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(specs) == 0 {
		return "", fmt.Errorf("no commands to select from")
	}
	if len(specs) == 1 {
		return specs[0].ID(), nil
	}

	options := formatCommandOptions(specs)
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to filter, Enter to select"),
	}
	index, err := s.run(&promptui.Select{
		Label:             label,
		Items:             options,
		Templates:         templates,
		Size:              12,
		StartInSearchMode: true,
		Searcher:          fuzzySearcher(specs),
	})
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return specs[index].ID(), nil
}

// formatCommandOptions renders "multisig:set_threshold  Set the signature threshold"
func formatCommandOptions(specs []usecase.CommandSpec) []string {
	width := 0
	for _, spec := range specs {
		width = max(width, len(spec.ID()))
	}
	options := make([]string, len(specs))
	for i, spec := range specs {
		id := color.New(color.FgWhite, color.Bold).Sprint(spec.ID())
		pad := strings.Repeat(" ", width-len(spec.ID())+2)
		options[i] = id + pad + color.New(color.FgBlue).Sprint(spec.Description)
	}
	return options
}

// fuzzySearcher matches the typed input against command ids
func fuzzySearcher(specs []usecase.CommandSpec) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		input = strings.ToLower(input)
		id := strings.ToLower(specs[index].ID())
		if strings.Contains(id, input) {
			return true
		}
		return len(fuzzy.Find(input, []string{id})) > 0
	}
}
