package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/domain/models"
)

var multisigFlags = []FlagSpec{
	{Name: FlagMultisig, Usage: "Multisig address (defaults to MULTISIG)"},
	{Name: FlagMultisigProposal, Usage: "ID of the multisig proposal to approve or execute"},
	{Name: FlagProposalID, Usage: "Alias of --multisigProposal"},
}

// WrapCommand turns a single-signer command into a propose / approve / execute
// workflow against a multisig contract.
func WrapCommand(inner CommandBuilder) CommandBuilder {
	return &multisigBuilder{inner: inner}
}

type multisigBuilder struct {
	inner CommandBuilder
}

func (b *multisigBuilder) Spec() CommandSpec {
	spec := b.inner.Spec()
	spec.Descriptor = spec.Descriptor.WithSuffix(domain.SuffixMultisig)
	spec.Description = spec.Description + " (through a multisig proposal)"
	spec.Flags = append(append([]FlagSpec{}, spec.Flags...), multisigFlags...)
	spec.Examples = []string{
		fmt.Sprintf("opctl %s --multisig=<MULTISIG_ADDRESS> <CONTRACT_ADDRESS>", spec.ID()),
		fmt.Sprintf("opctl %s --multisigProposal=<ID> <CONTRACT_ADDRESS>", spec.ID()),
	}
	return spec
}

func (b *multisigBuilder) Build(deps Dependencies) CommandFactory {
	return &multisigFactory{
		inner: b.inner.Build(deps),
		spec:  b.Spec(),
		deps:  deps.withDefaults(),
	}
}

type multisigFactory struct {
	inner CommandFactory
	spec  CommandSpec
	deps  Dependencies
}

func (f *multisigFactory) Spec() CommandSpec {
	return f.spec
}

// Create builds the inner command and reads the current multisig state.
func (f *multisigFactory) Create(ctx context.Context, flags Flags, args []string) (Command, error) {
	id := f.spec.ID()
	if flags == nil {
		flags = Flags{}
	}

	env, err := f.deps.MakeEnv(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve environment: %w", err)
	}
	raw := flags.String(FlagMultisig)
	if raw == "" {
		raw = env.Multisig
	}
	if raw == "" {
		return nil, &domain.ValidationError{Command: id, Err: fmt.Errorf("a multisig address is required (--%s or MULTISIG)", FlagMultisig)}
	}
	multisigAddress, err := domain.NormalizeAddress(raw)
	if err != nil {
		return nil, &domain.ValidationError{Command: id, Err: err}
	}

	proposalID, err := proposalIDFromFlags(flags)
	if err != nil {
		return nil, &domain.ValidationError{Command: id, Err: err}
	}

	innerCmd, err := f.inner.Create(ctx, flags, args)
	if err != nil {
		return nil, err
	}
	inner, ok := innerCmd.(ExecuteCommand)
	if !ok {
		return nil, fmt.Errorf("command %s cannot be wrapped in a multisig proposal", innerCmd.ID())
	}
	ec := inner.ExecutionContext()

	fetcher := NewMultisigStateFetcher(ec.Provider, multisigAddress)
	state, err := fetcher.Fetch(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	return &multisigCommand{
		id:           id,
		inner:        inner,
		deps:         f.deps,
		fetcher:      fetcher,
		proposalID:   proposalID,
		initialState: state,
	}, nil
}

type multisigCommand struct {
	id           string
	inner        ExecuteCommand
	deps         Dependencies
	fetcher      *MultisigStateFetcher
	proposalID   *uint64
	initialState *domain.MultisigState

	// assignedID is the nonce used when creating a proposal
	assignedID *uint64
}

func (c *multisigCommand) ID() string {
	return c.id
}

func (c *multisigCommand) ExecutionContext() *ExecutionContext {
	return c.inner.ExecutionContext()
}

// State returns the multisig state read at creation time
func (c *multisigCommand) State() *domain.MultisigState {
	return c.initialState
}

// MakeMessage reconciles the inner call with the multisig state and returns the
// multisig call to submit. Every logical failure is returned before submission.
func (c *multisigCommand) MakeMessage(ctx context.Context) (domain.Call, error) {
	state := c.initialState
	if err := domain.ValidateThreshold(state.Multisig.Threshold, len(state.Multisig.Signers)); err != nil {
		return domain.Call{}, &domain.ReconciliationError{ProposalID: c.proposalID, Err: err}
	}

	message, err := c.inner.MakeMessage(ctx)
	if err != nil {
		return domain.Call{}, fmt.Errorf("failed to build message: %w", err)
	}

	if state.Proposal == nil {
		nonce, err := c.fetcher.NextProposalID(ctx)
		if err != nil {
			return domain.Call{}, err
		}
		c.assignedID = &nonce
		return c.fetcher.ProposeCall(message, nonce)
	}

	proposal := state.Proposal
	if !domain.IsSameProposal(message, proposal.Data) {
		c.deps.Progress.Error(fmt.Sprintf("Generated call %s differs from proposal %d: %s", message, proposal.ID, proposal.Data))
		return domain.Call{}, &domain.ReconciliationError{ProposalID: &proposal.ID, Err: domain.ErrProposalMismatch}
	}
	c.deps.Progress.Success("Generated proposal matches with the one provided")

	switch proposal.NextAction {
	case domain.ActionApprove:
		if err := c.checkReapproval(ctx, proposal.ID); err != nil {
			return domain.Call{}, err
		}
		return c.fetcher.ConfirmCall(proposal.ID)
	case domain.ActionExecute:
		return c.fetcher.ExecuteCall(proposal.ID)
	default:
		return domain.Call{}, &domain.ReconciliationError{ProposalID: &proposal.ID, Err: domain.ErrNoActionNeeded}
	}
}

func (c *multisigCommand) checkReapproval(ctx context.Context, id uint64) error {
	if c.deps.Reapproval != config.ReapprovalReject {
		return nil
	}
	signer, ok := c.ExecutionContext().Sender()
	if !ok {
		return nil
	}
	confirmed, err := c.fetcher.IsConfirmedBy(ctx, id, signer)
	if err != nil {
		return err
	}
	if confirmed {
		return &domain.ReconciliationError{ProposalID: &id, Err: fmt.Errorf("%w: %s", domain.ErrAlreadyConfirmed, signer.Hex())}
	}
	return nil
}

// BeforeExecute announces the multisig action and asks for confirmation
func (c *multisigCommand) BeforeExecute(ctx context.Context) error {
	if p := c.initialState.Proposal; p != nil {
		c.deps.Progress.Info(fmt.Sprintf("About to %s the multisig proposal with ID %d", p.NextAction, p.ID))
	} else {
		c.deps.Progress.Info("About to CREATE a new multisig proposal")
	}
	return c.deps.Prompt.Confirm(ctx, "Continue?")
}

// Execute runs the reconciliation, submits the multisig call and reports the
// proposal state once the transaction is final.
func (c *multisigCommand) Execute(ctx context.Context) (*models.Result, error) {
	c.describeState(c.initialState)

	msg, err := c.MakeMessage(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.inner.BeforeExecute(ctx); err != nil {
		return nil, err
	}
	if err := c.BeforeExecute(ctx); err != nil {
		return nil, err
	}

	tx := submit(ctx, c.ExecutionContext(), c.deps.Progress, msg)
	result := &models.Result{Responses: []models.Response{{Tx: tx, Contract: c.fetcher.Address().Hex()}}}

	id := c.resolveProposalID(tx)
	if !tx.Accepted() {
		if id != nil {
			result.Merge(map[string]any{"proposalId": *id})
		}
		return result, nil
	}
	c.proposalID = id

	data, err := c.AfterExecute(ctx, result)
	if err != nil {
		return result, err
	}
	result.Merge(data)
	return result, nil
}

// AfterExecute re-reads the proposal and tells the operator what comes next
func (c *multisigCommand) AfterExecute(ctx context.Context, result *models.Result) (map[string]any, error) {
	if c.proposalID == nil {
		return nil, nil
	}
	id := *c.proposalID

	state, err := c.fetcher.Fetch(ctx, &id)
	if err != nil {
		return map[string]any{"proposalId": id}, fmt.Errorf("failed to refresh multisig state: %w", err)
	}
	c.describeState(state)

	action := state.Proposal.NextAction
	switch action {
	case domain.ActionExecute:
		c.deps.Progress.Success(fmt.Sprintf("The multisig proposal reached the threshold and can be executed. Run the same command with the flag --%s=%d", FlagMultisigProposal, id))
	case domain.ActionApprove:
		c.deps.Progress.Info(fmt.Sprintf("The multisig proposal needs %d more approvals. Run the same command with the flag --%s=%d", state.ApprovalsLeft(), FlagMultisigProposal, id))
	case domain.ActionNone:
		c.deps.Progress.Success("The multisig proposal has been executed. No more actions needed")
	}

	return map[string]any{
		"proposalId":    id,
		"nextAction":    action,
		"approvalsLeft": state.ApprovalsLeft(),
		"stage":         state.Stage(),
		"multisigState": state,
	}, nil
}

// resolveProposalID prefers the id announced by the multisig over the nonce we assigned
func (c *multisigCommand) resolveProposalID(tx *models.TransactionResponse) *uint64 {
	if c.initialState.Proposal != nil {
		id := c.initialState.Proposal.ID
		return &id
	}
	if id, ok := c.fetcher.SubmittedProposalID(tx.Receipt); ok {
		if c.assignedID != nil && *c.assignedID != id {
			c.deps.Logger.Warn("multisig assigned a different proposal id", "expected", *c.assignedID, "actual", id)
		}
		return &id
	}
	if tx.Accepted() {
		c.deps.Logger.Warn("no TransactionSubmitted event in receipt, using assigned nonce", "nonce", c.assignedID)
	}
	return c.assignedID
}

func (c *multisigCommand) describeState(state *domain.MultisigState) {
	c.deps.Progress.Info(fmt.Sprintf("Multisig %s: threshold %d of %d signers",
		state.Multisig.Address.Hex(), state.Multisig.Threshold, len(state.Multisig.Signers)))
	if p := state.Proposal; p != nil {
		c.deps.Progress.Info(fmt.Sprintf("Proposal %d: %d confirmations, executed=%t, next action %s",
			p.ID, p.Confirmations, p.Executed, p.NextAction))
	}
}

// proposalIDFromFlags reads --multisigProposal, --proposalId, or the same keys of the --input payload
func proposalIDFromFlags(flags Flags) (*uint64, error) {
	id, err := proposalIDFrom(flags)
	if err != nil || id != nil || !flags.Has(FlagInput) {
		return id, err
	}

	// the payload also carries the inner command's keys, only the proposal keys are read here
	payload, err := DecodeInput[map[string]any](flags[FlagInput])
	if err != nil {
		return nil, err
	}
	id, err = proposalIDFrom(Flags(payload))
	if err != nil {
		return nil, fmt.Errorf("input payload: %w", err)
	}
	return id, nil
}

func proposalIDFrom(flags Flags) (*uint64, error) {
	for _, name := range []string{FlagMultisigProposal, FlagProposalID} {
		v, ok, err := flags.Uint64(name)
		if err != nil {
			return nil, err
		}
		if ok {
			return &v, nil
		}
	}
	return nil, nil
}
