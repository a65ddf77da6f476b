package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// InspectionOutcome is the verdict of one comparison
type InspectionOutcome string

const (
	InspectionSuccess InspectionOutcome = "success"
	InspectionFailed  InspectionOutcome = "failed"
)

// InspectionResult annotates one compared field
type InspectionResult struct {
	ID         string            `json:"id"`
	Message    string            `json:"message"`
	ResultType InspectionOutcome `json:"resultType"`
}

// Expect compares an expected value against the observed one
func Expect(id string, expected, actual any) InspectionResult {
	if reflect.DeepEqual(expected, actual) {
		return InspectionResult{ID: id, Message: fmt.Sprintf("%s matches: %v", id, actual), ResultType: InspectionSuccess}
	}
	return InspectionResult{
		ID:         id,
		Message:    fmt.Sprintf("%s mismatch: expected %v, got %v", id, expected, actual),
		ResultType: InspectionFailed,
	}
}

// InspectUserInput carries the query input and optional expected values
type InspectUserInput[UI, C any] struct {
	Input     UI `json:"input"`
	ToCompare *C `json:"toCompare,omitempty"`
}

// InspectCommandConfig defines a read-only command that runs a batch of queries.
type InspectCommandConfig[UI, C, Q any] struct {
	Category    string
	Action      string
	Suffixes    []string
	ContractID  string
	Description string
	Examples    []string
	Flags       []FlagSpec

	// Queries are ABI method names issued concurrently
	Queries []string

	MakeUserInput func(flags Flags, args []string) (InspectUserInput[UI, C], error)
	// MakeContractInput returns per-query arguments; missing entries mean no arguments
	MakeContractInput func(input UI) ([][]any, error)
	// MakeComparisonData folds the raw query outputs into comparable and reportable values
	MakeComparisonData func(ctx context.Context, provider Provider, results [][]any, input UI, address common.Address) (C, Q, error)
	// Inspect is optional
	Inspect func(expected InspectUserInput[UI, C], actual C) []InspectionResult
}

// MakeInspectionCommand turns a config into a command builder
func MakeInspectionCommand[UI, C, Q any](cfg InspectCommandConfig[UI, C, Q]) CommandBuilder {
	if cfg.Action == "" {
		cfg.Action = "inspect"
	}
	return &inspectBuilder[UI, C, Q]{cfg: cfg}
}

type inspectBuilder[UI, C, Q any] struct {
	cfg InspectCommandConfig[UI, C, Q]
}

func (b *inspectBuilder[UI, C, Q]) Spec() CommandSpec {
	flags := append([]FlagSpec{}, b.cfg.Flags...)
	flags = append(flags, FlagSpec{Name: FlagInput, Usage: "Inspection input and expected values as JSON or YAML"})
	return CommandSpec{
		Descriptor: domain.CommandDescriptor{
			Category: b.cfg.Category,
			Action:   b.cfg.Action,
			Suffixes: b.cfg.Suffixes,
		},
		Description: b.cfg.Description,
		Examples:    b.cfg.Examples,
		Flags:       flags,
		Positional:  "CONTRACT_ADDRESS",
	}
}

func (b *inspectBuilder[UI, C, Q]) Build(deps Dependencies) CommandFactory {
	return &inspectFactory[UI, C, Q]{cfg: b.cfg, spec: b.Spec(), deps: deps.withDefaults()}
}

type inspectFactory[UI, C, Q any] struct {
	cfg  InspectCommandConfig[UI, C, Q]
	spec CommandSpec
	deps Dependencies
}

func (f *inspectFactory[UI, C, Q]) Spec() CommandSpec {
	return f.spec
}

// Create builds an inspection instance. No wallet is involved.
func (f *inspectFactory[UI, C, Q]) Create(ctx context.Context, flags Flags, args []string) (Command, error) {
	id := f.spec.ID()
	if flags == nil {
		flags = Flags{}
	}

	env, err := f.deps.MakeEnv(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve environment: %w", err)
	}
	provider, err := f.deps.MakeProvider(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", env.NodeURL, err)
	}

	if len(args) == 0 {
		return nil, &domain.ValidationError{Command: id, Err: fmt.Errorf("a contract address is required")}
	}
	address, err := domain.NormalizeAddress(args[0])
	if err != nil {
		return nil, &domain.ValidationError{Command: id, Err: err}
	}

	artifact, err := f.deps.Loader.Load(f.cfg.ContractID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract %s: %w", f.cfg.ContractID, err)
	}

	var input InspectUserInput[UI, C]
	switch {
	case flags.Has(FlagInput):
		input, err = DecodeInput[InspectUserInput[UI, C]](flags[FlagInput])
	case f.cfg.MakeUserInput != nil:
		input, err = f.cfg.MakeUserInput(flags, args)
	}
	if err != nil {
		return nil, &domain.ValidationError{Command: id, Err: err}
	}

	return &inspectCommand[UI, C, Q]{
		id:       id,
		cfg:      f.cfg,
		deps:     f.deps,
		provider: provider,
		contract: NewContractHandle(address, artifact, provider),
		input:    input,
		logger:   f.deps.Logger.With("command", id, "run", uuid.NewString()),
	}, nil
}

type inspectCommand[UI, C, Q any] struct {
	id       string
	cfg      InspectCommandConfig[UI, C, Q]
	deps     Dependencies
	provider Provider
	contract *ContractHandle
	input    InspectUserInput[UI, C]
	logger   *slog.Logger
}

func (c *inspectCommand[UI, C, Q]) ID() string {
	return c.id
}

// Execute issues every query concurrently; one failure aborts the batch.
func (c *inspectCommand[UI, C, Q]) Execute(ctx context.Context) (*models.Result, error) {
	var queryArgs [][]any
	if c.cfg.MakeContractInput != nil {
		var err error
		if queryArgs, err = c.cfg.MakeContractInput(c.input.Input); err != nil {
			return nil, &domain.ValidationError{Command: c.id, Err: err}
		}
	}

	c.deps.Progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageFetching,
		Message: fmt.Sprintf("Inspecting contract %s", c.contract.Address.Hex()),
		Spinner: true,
	})

	results := make([][]any, len(c.cfg.Queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, query := range c.cfg.Queries {
		var args []any
		if i < len(queryArgs) {
			args = queryArgs[i]
		}
		g.Go(func() error {
			out, err := c.contract.Call(gctx, query, args...)
			if err != nil {
				return fmt.Errorf("query %s failed: %w", query, err)
			}
			results[i] = out
			return nil
		})
	}
	err := g.Wait()
	c.deps.Progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("queries completed", "count", len(results))

	toCompare, data, err := c.cfg.MakeComparisonData(ctx, c.provider, results, c.input.Input, c.contract.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to interpret query results: %w", err)
	}

	inspection := []InspectionResult{}
	if c.cfg.Inspect != nil {
		inspection = c.cfg.Inspect(c.input, toCompare)
		for _, r := range inspection {
			if r.ResultType == InspectionSuccess {
				c.deps.Progress.Success(r.Message)
			} else {
				c.deps.Progress.Error(r.Message)
			}
		}
	}

	return &models.Result{Data: map[string]any{
		"data":       data,
		"contract":   c.contract.Address.Hex(),
		"inspection": inspection,
	}}, nil
}
