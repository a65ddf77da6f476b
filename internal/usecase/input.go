package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trebuchet-org/opctl/internal/domain"
)

// UserInputFunc builds the operator-facing input from flags and positional arguments
type UserInputFunc[UI any] func(flags Flags, args []string, env Env) (UI, error)

// Validation checks user input before anything reaches the network
type Validation[UI any] func(ctx context.Context, input UI, ec *ExecutionContext) error

// ContractInputFunc derives the ordered ABI arguments from user input
type ContractInputFunc[UI any] func(ctx context.Context, input UI, ec *ExecutionContext) ([]any, error)

// Input is the result of the input pipeline
type Input[UI any] struct {
	User     UI
	Contract []any
}

// makeUserInput honours the --input payload before the command's own flag parsing.
func makeUserInput[UI any](flags Flags, args []string, env Env, fn UserInputFunc[UI]) (UI, error) {
	if flags.Has(FlagInput) {
		return DecodeInput[UI](flags[FlagInput])
	}
	if fn == nil {
		var zero UI
		return zero, nil
	}
	return fn(flags, args, env)
}

// runValidations runs every validation and reports all failures together
func runValidations[UI any](ctx context.Context, id string, input UI, ec *ExecutionContext, validations []Validation[UI]) error {
	var errs []error
	for _, validate := range validations {
		if err := validate(ctx, input, ec); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Command: id, Err: errors.Join(errs...)}
}

// buildInput runs user input, validations and contract input in that order.
func buildInput[UI any](
	ctx context.Context,
	ec *ExecutionContext,
	args []string,
	makeUser UserInputFunc[UI],
	validations []Validation[UI],
	makeContract ContractInputFunc[UI],
) (Input[UI], error) {
	user, err := makeUserInput(ec.Flags, args, ec.Env, makeUser)
	if err != nil {
		return Input[UI]{}, &domain.ValidationError{Command: ec.ID, Err: err}
	}

	if err := runValidations(ctx, ec.ID, user, ec, validations); err != nil {
		return Input[UI]{}, err
	}

	input := Input[UI]{User: user}
	if makeContract != nil {
		input.Contract, err = makeContract(ctx, user, ec)
		if err != nil {
			return Input[UI]{}, fmt.Errorf("failed to build contract input for %s: %w", ec.ID, err)
		}
	}
	return input, nil
}
