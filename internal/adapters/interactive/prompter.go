package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// Prompter asks the operator for a yes/no confirmation on the terminal
type Prompter struct {
	nonInteractive bool
	run            func(p *promptui.Prompt) (string, error)
}

// NewPrompter creates a prompter. In non-interactive mode every prompt is confirmed.
func NewPrompter(cfg *config.RuntimeConfig) *Prompter {
	return &Prompter{
		nonInteractive: cfg.NonInteractive,
		run:            func(p *promptui.Prompt) (string, error) { return p.Run() },
	}
}

func (p *Prompter) Confirm(ctx context.Context, label string) error {
	if p.nonInteractive {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prompt := &promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := p.run(prompt); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return domain.ErrAborted
		}
		return fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return nil
}

var _ usecase.Prompter = (*Prompter)(nil)
