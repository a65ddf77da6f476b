package usecase

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
)

var commonFlags = []FlagSpec{
	{Name: FlagInput, Usage: "Full command input as JSON or YAML, overrides individual flags"},
	{Name: FlagNoWallet, Usage: "Send from the node-managed ACCOUNT instead of signing locally", Kind: FlagBool},
}

var deployFlags = []FlagSpec{
	{Name: FlagSalt, Usage: "Deploy deterministically with this salt"},
}

// Salter is implemented by user inputs that carry a deployment salt
type Salter interface {
	DeploySalt() string
}

// ExecuteCommandConfig defines a command that produces one contract call.
type ExecuteCommandConfig[UI any] struct {
	Category string
	Action   string
	Suffixes []string
	// ContractID is the logical name handed to the contract loader
	ContractID string
	// InternalFunction overrides Action as the ABI method name
	InternalFunction string
	Description      string
	Examples         []string
	Flags            []FlagSpec

	MakeUserInput     UserInputFunc[UI]
	Validations       []Validation[UI]
	MakeContractInput ContractInputFunc[UI]

	BeforeExecute BeforeExecuteHook[UI]
	AfterExecute  AfterExecuteHook[UI]
}

// MakeExecuteCommand turns a config into a command builder
func MakeExecuteCommand[UI any](cfg ExecuteCommandConfig[UI]) CommandBuilder {
	return &executeBuilder[UI]{cfg: cfg}
}

type executeBuilder[UI any] struct {
	cfg ExecuteCommandConfig[UI]
}

func (b *executeBuilder[UI]) Spec() CommandSpec {
	flags := append([]FlagSpec{}, b.cfg.Flags...)
	flags = append(flags, commonFlags...)
	positional := "CONTRACT_ADDRESS"
	if b.cfg.Action == domain.ActionDeploy {
		flags = append(flags, deployFlags...)
		positional = ""
	}
	return CommandSpec{
		Descriptor: domain.CommandDescriptor{
			Category: b.cfg.Category,
			Action:   b.cfg.Action,
			Suffixes: b.cfg.Suffixes,
		},
		Description: b.cfg.Description,
		Examples:    b.cfg.Examples,
		Flags:       flags,
		Positional:  positional,
	}
}

func (b *executeBuilder[UI]) Build(deps Dependencies) CommandFactory {
	return &executeFactory[UI]{cfg: b.cfg, spec: b.Spec(), deps: deps.withDefaults()}
}

type executeFactory[UI any] struct {
	cfg  ExecuteCommandConfig[UI]
	spec CommandSpec
	deps Dependencies
}

func (f *executeFactory[UI]) Spec() CommandSpec {
	return f.spec
}

// Create resolves the environment, loads the contract and runs the input pipeline.
func (f *executeFactory[UI]) Create(ctx context.Context, flags Flags, args []string) (Command, error) {
	id := f.spec.ID()
	logger := f.deps.Logger.With("command", id, "run", uuid.NewString())
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

	var wallet Wallet
	if flags.Bool(FlagNoWallet) {
		if !domain.IsAddress(env.Account) {
			return nil, &domain.ValidationError{Command: id, Err: fmt.Errorf("--%s requires ACCOUNT to be a valid address", FlagNoWallet)}
		}
	} else {
		wallet, err = f.deps.MakeWallet(env)
		if err != nil {
			return nil, fmt.Errorf("failed to load wallet: %w", err)
		}
	}

	isDeploy := f.cfg.Action == domain.ActionDeploy
	var address common.Address
	if !isDeploy {
		if len(args) == 0 {
			return nil, &domain.ValidationError{Command: id, Err: fmt.Errorf("a contract address is required")}
		}
		address, err = domain.NormalizeAddress(args[0])
		if err != nil {
			return nil, &domain.ValidationError{Command: id, Err: err}
		}
	}

	artifact, err := f.deps.Loader.Load(f.cfg.ContractID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract %s: %w", f.cfg.ContractID, err)
	}

	ec := &ExecutionContext{
		Category:        f.cfg.Category,
		Action:          f.cfg.Action,
		ID:              id,
		ContractAddress: address,
		Wallet:          wallet,
		Provider:        provider,
		Flags:           flags,
		Contract:        NewContractHandle(address, artifact, provider),
		Env:             env,
		Logger:          logger,
	}

	input, err := buildInput(ctx, ec, args, f.cfg.MakeUserInput, f.cfg.Validations, f.cfg.MakeContractInput)
	if err != nil {
		return nil, err
	}

	cmd := &executeCommand[UI]{
		cfg:   f.cfg,
		deps:  f.deps,
		ec:    ec,
		input: input,
	}
	if isDeploy {
		if cmd.salt, err = deploySalt(input.User, flags); err != nil {
			return nil, &domain.ValidationError{Command: id, Err: err}
		}
	}

	hookDeps := HookDeps{Logger: logger, Progress: f.deps.Progress, Prompt: f.deps.Prompt}
	before, after := f.cfg.BeforeExecute, f.cfg.AfterExecute
	if before == nil {
		before = defaultBeforeExecute[UI]
	}
	if after == nil {
		after = defaultAfterExecute[UI]
	}
	cmd.beforeExecute = before(ec, input, hookDeps)
	cmd.afterExecute = after(ec, input, hookDeps)

	logger.Debug("command created", "contract", address.Hex(), "input", input.Contract)
	return cmd, nil
}

type executeCommand[UI any] struct {
	cfg   ExecuteCommandConfig[UI]
	deps  Dependencies
	ec    *ExecutionContext
	input Input[UI]
	salt  *common.Hash

	beforeExecute func(ctx context.Context) error
	afterExecute  func(ctx context.Context, result *models.Result) (map[string]any, error)
}

func (c *executeCommand[UI]) ID() string {
	return c.ec.ID
}

func (c *executeCommand[UI]) ExecutionContext() *ExecutionContext {
	return c.ec
}

// Input returns the resolved input of the instance
func (c *executeCommand[UI]) Input() Input[UI] {
	return c.input
}

// MakeMessage projects the contract input onto the target method. No network access.
func (c *executeCommand[UI]) MakeMessage(ctx context.Context) (domain.Call, error) {
	method := c.cfg.InternalFunction
	if method == "" {
		method = c.cfg.Action
	}
	return c.ec.Contract.Populate(method, c.input.Contract...)
}

func (c *executeCommand[UI]) BeforeExecute(ctx context.Context) error {
	return c.beforeExecute(ctx)
}

func (c *executeCommand[UI]) AfterExecute(ctx context.Context, result *models.Result) (map[string]any, error) {
	return c.afterExecute(ctx, result)
}

// Execute runs before-hook, submission, inclusion wait and after-hook.
// Submission failures are reported on the transaction, not as an error.
func (c *executeCommand[UI]) Execute(ctx context.Context) (*models.Result, error) {
	if err := c.BeforeExecute(ctx); err != nil {
		return nil, err
	}

	var (
		tx  *models.TransactionResponse
		err error
	)
	switch {
	case c.cfg.Action == domain.ActionDeploy:
		tx, err = c.deploy(ctx)
	case c.ec.Wallet == nil:
		tx, err = c.executeWithoutWallet(ctx)
	default:
		tx, err = c.executeWithSigner(ctx)
	}
	if err != nil {
		return nil, err
	}

	contract := c.ec.ContractAddress.Hex()
	if tx.Address != nil {
		contract = tx.Address.Hex()
	}
	result := &models.Result{Responses: []models.Response{{Tx: tx, Contract: contract}}}

	data, err := c.AfterExecute(ctx, result)
	if err != nil {
		return result, err
	}
	result.Merge(data)
	return result, nil
}

func (c *executeCommand[UI]) deploy(ctx context.Context) (*models.TransactionResponse, error) {
	artifact := c.ec.Contract.Artifact
	if !artifact.HasBytecode() {
		return nil, fmt.Errorf("no bytecode available for %s, build the contract artifacts first", artifact.Name)
	}
	if c.ec.Wallet == nil {
		return nil, fmt.Errorf("deploying %s requires a wallet", artifact.Name)
	}

	c.deps.Progress.Info(fmt.Sprintf("Deploying %s from %s", artifact.Name, c.ec.Wallet.Address().Hex()))
	if c.salt != nil {
		c.deps.Progress.Info(fmt.Sprintf("Using salt %s", c.salt.Hex()))
	}
	if err := c.deps.Prompt.Confirm(ctx, "Continue?"); err != nil {
		return nil, err
	}

	c.deps.Progress.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: "Sending deployment", Spinner: true})
	tx, err := c.ec.Provider.Deploy(ctx, c.ec.Wallet, DeployRequest{
		Artifact:        artifact,
		ConstructorArgs: c.input.Contract,
		Salt:            c.salt,
	})
	if err != nil {
		c.ec.Logger.Debug("deployment submission failed", "error", err)
		return awaitTransaction(ctx, c.deps.Progress, models.RejectedTransaction(err)), nil
	}
	return awaitTransaction(ctx, c.deps.Progress, tx), nil
}

func (c *executeCommand[UI]) executeWithSigner(ctx context.Context) (*models.TransactionResponse, error) {
	c.deps.Progress.Info(fmt.Sprintf("Using wallet %s (public key %s)", c.ec.Wallet.Address().Hex(), shorten(c.ec.Wallet.PublicKey())))

	msg, err := c.MakeMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build message: %w", err)
	}
	if err := c.deps.Prompt.Confirm(ctx, "Continue?"); err != nil {
		return nil, err
	}
	return submit(ctx, c.ec, c.deps.Progress, msg), nil
}

func (c *executeCommand[UI]) executeWithoutWallet(ctx context.Context) (*models.TransactionResponse, error) {
	c.deps.Progress.Info(fmt.Sprintf("Sending from node account %s", c.ec.Env.Account))

	msg, err := c.MakeMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build message: %w", err)
	}
	if err := c.deps.Prompt.Confirm(ctx, "Continue?"); err != nil {
		return nil, err
	}
	return submit(ctx, c.ec, c.deps.Progress, msg), nil
}

// submit sends call from the context's wallet, or its node-managed account when
// there is no wallet, and waits for the transaction to become final.
func submit(ctx context.Context, ec *ExecutionContext, progress ProgressSink, call domain.Call) *models.TransactionResponse {
	progress.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: "Sending transaction", Spinner: true})

	var (
		tx  *models.TransactionResponse
		err error
	)
	if ec.Wallet != nil {
		tx, err = ec.Provider.SignAndSend(ctx, ec.Wallet, call)
	} else {
		tx, err = ec.Provider.SendUnsigned(ctx, common.HexToAddress(ec.Env.Account), call)
	}
	if err != nil {
		ec.Logger.Debug("submission failed", "error", err)
		tx = models.RejectedTransaction(err)
	}
	return awaitTransaction(ctx, progress, tx)
}

func awaitTransaction(ctx context.Context, progress ProgressSink, tx *models.TransactionResponse) *models.TransactionResponse {
	if tx.Status == models.TransactionStatusPending {
		progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageWaiting,
			Message: fmt.Sprintf("Waiting for transaction %s", tx.Hash.Hex()),
			Spinner: true,
		})
		tx.Wait(ctx)
	}
	progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	if tx.Accepted() {
		progress.Success(fmt.Sprintf("Transaction %s accepted", tx.Hash.Hex()))
	} else {
		progress.Error(fmt.Sprintf("Transaction rejected: %s", tx.ErrorMessage))
	}
	return tx
}

func defaultBeforeExecute[UI any](ec *ExecutionContext, input Input[UI], deps HookDeps) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if ec.Action == domain.ActionDeploy {
			deps.Progress.Info(fmt.Sprintf("Executing %s", ec.ID))
		} else {
			deps.Progress.Info(fmt.Sprintf("Executing %s from contract %s", ec.ID, ec.ContractAddress.Hex()))
		}
		if len(input.Contract) > 0 {
			deps.Progress.Info(fmt.Sprintf("Contract input: %s", formatArgs(input.Contract)))
		}
		return nil
	}
}

func defaultAfterExecute[UI any](ec *ExecutionContext, input Input[UI], deps HookDeps) func(ctx context.Context, result *models.Result) (map[string]any, error) {
	return func(ctx context.Context, result *models.Result) (map[string]any, error) {
		if tx := result.Tx(); tx != nil {
			deps.Logger.Info("transaction final", "hash", tx.Hash.Hex(), "status", tx.Status)
		}
		return nil, nil
	}
}

// deploySalt reads the salt from the user input or the --salt flag.
// Values are hex (0x-prefixed) or decimal.
func deploySalt(user any, flags Flags) (*common.Hash, error) {
	raw := flags.String(FlagSalt)
	if s, ok := user.(Salter); ok && s.DeploySalt() != "" {
		raw = s.DeploySalt()
	}
	if raw == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(strings.TrimSpace(raw), 0)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, fmt.Errorf("invalid salt %q", raw)
	}
	salt := common.BigToHash(v)
	return &salt, nil
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func shorten(s string) string {
	if len(s) <= 18 {
		return s
	}
	return s[:10] + "…" + s[len(s)-6:]
}
