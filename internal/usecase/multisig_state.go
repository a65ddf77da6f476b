package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"golang.org/x/sync/errgroup"
)

// MultisigStateFetcher reads signers, threshold and proposals of one multisig.
// It never caches: every call reflects the chain at the time of the call.
type MultisigStateFetcher struct {
	provider Provider
	address  common.Address
	multisig *bindings.Multisig
}

// NewMultisigStateFetcher creates a fetcher for the multisig at address
func NewMultisigStateFetcher(provider Provider, address common.Address) *MultisigStateFetcher {
	return &MultisigStateFetcher{
		provider: provider,
		address:  address,
		multisig: bindings.NewMultisig(),
	}
}

// Address returns the multisig address
func (f *MultisigStateFetcher) Address() common.Address {
	return f.address
}

// Fetch reads the signer set and threshold, and the proposal when proposalID is set.
func (f *MultisigStateFetcher) Fetch(ctx context.Context, proposalID *uint64) (*domain.MultisigState, error) {
	var (
		signers   []common.Address
		threshold *big.Int
		tx        bindings.GetTransactionOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := f.provider.Read(gctx, f.address, f.multisig.PackGetSigners())
		if err != nil {
			return fmt.Errorf("failed to read multisig signers: %w", err)
		}
		signers, err = f.multisig.UnpackGetSigners(out)
		return err
	})
	g.Go(func() error {
		out, err := f.provider.Read(gctx, f.address, f.multisig.PackGetThreshold())
		if err != nil {
			return fmt.Errorf("failed to read multisig threshold: %w", err)
		}
		threshold, err = f.multisig.UnpackGetThreshold(out)
		return err
	})
	if proposalID != nil {
		g.Go(func() error {
			out, err := f.provider.Read(gctx, f.address, f.multisig.PackGetTransaction(new(big.Int).SetUint64(*proposalID)))
			if err != nil {
				return fmt.Errorf("failed to read multisig proposal %d: %w", *proposalID, err)
			}
			tx, err = f.multisig.UnpackGetTransaction(out)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !threshold.IsUint64() {
		return nil, fmt.Errorf("multisig threshold %s out of range", threshold)
	}
	state := &domain.MultisigState{
		Multisig: domain.MultisigInfo{
			Address:   f.address,
			Threshold: threshold.Uint64(),
			Signers:   signers,
		},
	}
	if proposalID == nil {
		return state, nil
	}

	if !tx.Confirmations.IsUint64() {
		return nil, fmt.Errorf("proposal %d confirmations %s out of range", *proposalID, tx.Confirmations)
	}
	confirmations := tx.Confirmations.Uint64()
	state.Proposal = &domain.Proposal{
		ID:            *proposalID,
		Confirmations: confirmations,
		Executed:      tx.Executed,
		Data: domain.Call{
			ContractAddress: tx.To.Hex(),
			Entrypoint:      hexutil.Encode(tx.FunctionSelector[:]),
			Calldata:        tx.TxCalldata,
		},
		NextAction: domain.ResolveAction(confirmations, state.Multisig.Threshold, tx.Executed),
	}
	return state, nil
}

// NextProposalID returns the id the next submitted proposal will get
func (f *MultisigStateFetcher) NextProposalID(ctx context.Context) (uint64, error) {
	out, err := f.provider.Read(ctx, f.address, f.multisig.PackGetTransactionsLen())
	if err != nil {
		return 0, fmt.Errorf("failed to read multisig proposal count: %w", err)
	}
	n, err := f.multisig.UnpackGetTransactionsLen(out)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("multisig proposal count %s out of range", n)
	}
	return n.Uint64(), nil
}

// IsConfirmedBy reports whether signer already approved proposal id
func (f *MultisigStateFetcher) IsConfirmedBy(ctx context.Context, id uint64, signer common.Address) (bool, error) {
	out, err := f.provider.Read(ctx, f.address, f.multisig.PackIsConfirmed(new(big.Int).SetUint64(id), signer))
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation of %s: %w", signer.Hex(), err)
	}
	return f.multisig.UnpackIsConfirmed(out)
}

// ProposeCall wraps call into a submitTransaction call with the given nonce
func (f *MultisigStateFetcher) ProposeCall(call domain.Call, nonce uint64) (domain.Call, error) {
	to, err := call.Target()
	if err != nil {
		return domain.Call{}, err
	}
	selector, err := call.Selector()
	if err != nil {
		return domain.Call{}, err
	}
	data := f.multisig.PackSubmitTransaction(to, selector, call.Calldata, new(big.Int).SetUint64(nonce))
	return domain.NewCallFromData(f.address, data)
}

// ConfirmCall approves proposal id
func (f *MultisigStateFetcher) ConfirmCall(id uint64) (domain.Call, error) {
	return domain.NewCallFromData(f.address, f.multisig.PackConfirmTransaction(new(big.Int).SetUint64(id)))
}

// ExecuteCall executes proposal id
func (f *MultisigStateFetcher) ExecuteCall(id uint64) (domain.Call, error) {
	return domain.NewCallFromData(f.address, f.multisig.PackExecuteTransaction(new(big.Int).SetUint64(id)))
}

// SubmittedProposalID extracts the proposal id from a submitTransaction receipt
func (f *MultisigStateFetcher) SubmittedProposalID(receipt *types.Receipt) (uint64, bool) {
	if receipt == nil {
		return 0, false
	}
	events := f.multisig.FindTransactionSubmitted(receipt.Logs, f.address)
	if len(events) == 0 || !events[0].Nonce.IsUint64() {
		return 0, false
	}
	return events[0].Nonce.Uint64(), true
}
