package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
)

// CommandSpec describes a command independently of its dependencies
type CommandSpec struct {
	Descriptor  domain.CommandDescriptor
	Description string
	Examples    []string
	Flags       []FlagSpec
	// Positional names the positional argument, empty when none is taken
	Positional string
}

// ID returns the command identifier
func (s CommandSpec) ID() string {
	return s.Descriptor.ID()
}

// CommandBuilder binds a command definition to its dependencies.
type CommandBuilder interface {
	Spec() CommandSpec
	Build(deps Dependencies) CommandFactory
}

// CommandFactory creates one command instance per invocation.
type CommandFactory interface {
	Spec() CommandSpec
	Create(ctx context.Context, flags Flags, args []string) (Command, error)
}

// Command is a ready-to-run command instance
type Command interface {
	ID() string
	Execute(ctx context.Context) (*models.Result, error)
}

// ExecuteCommand is a Command that produces a single contract call.
type ExecuteCommand interface {
	Command
	ExecutionContext() *ExecutionContext
	MakeMessage(ctx context.Context) (domain.Call, error)
	BeforeExecute(ctx context.Context) error
	AfterExecute(ctx context.Context, result *models.Result) (map[string]any, error)
}

// ExecutionContext is everything a command instance knows about its invocation
type ExecutionContext struct {
	Category        string
	Action          string
	ID              string
	ContractAddress common.Address
	Wallet          Wallet
	Provider        Provider
	Flags           Flags
	Contract        *ContractHandle
	Env             Env
	Logger          *slog.Logger
}

// Sender returns the address transactions are sent from
func (ec *ExecutionContext) Sender() (common.Address, bool) {
	if ec.Wallet != nil {
		return ec.Wallet.Address(), true
	}
	if domain.IsAddress(ec.Env.Account) {
		return common.HexToAddress(ec.Env.Account), true
	}
	return common.Address{}, false
}

// HookDeps is what hooks may use to talk to the operator
type HookDeps struct {
	Logger   *slog.Logger
	Progress ProgressSink
	Prompt   Prompter
}

// BeforeExecuteHook is bound once per instance and runs before submission
type BeforeExecuteHook[UI any] func(ec *ExecutionContext, input Input[UI], deps HookDeps) func(ctx context.Context) error

// AfterExecuteHook is bound once per instance and runs after the transaction is final.
// The returned map is merged into the result data.
type AfterExecuteHook[UI any] func(ec *ExecutionContext, input Input[UI], deps HookDeps) func(ctx context.Context, result *models.Result) (map[string]any, error)
