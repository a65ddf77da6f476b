package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/testutil/fakechain"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

func TestMultisigStateFetcher(t *testing.T) {
	ctx := context.Background()
	signers := []*fakechain.Wallet{fakechain.NewWallet("s1"), fakechain.NewWallet("s2"), fakechain.NewWallet("s3")}
	addrs := []common.Address{signers[0].Address(), signers[1].Address(), signers[2].Address()}

	t.Run("reads signers and threshold", func(t *testing.T) {
		chain := fakechain.New()
		ms := chain.DeployMultisig(addrs, 2)
		fetcher := usecase.NewMultisigStateFetcher(chain, ms)

		state, err := fetcher.Fetch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, ms, state.Multisig.Address)
		assert.Equal(t, uint64(2), state.Multisig.Threshold)
		assert.Equal(t, addrs, state.Multisig.Signers)
		assert.Nil(t, state.Proposal)
		assert.Equal(t, domain.StageNoProposal, state.Stage())

		next, err := fetcher.NextProposalID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), next)
	})

	t.Run("reads a proposal and resolves its next action", func(t *testing.T) {
		chain := fakechain.New()
		ms := chain.DeployMultisig(addrs, 2)
		fetcher := usecase.NewMultisigStateFetcher(chain, ms)
		target := common.HexToAddress("0x00000000000000000000000000000000000000c0")

		call, err := fetcher.ProposeCall(domain.Call{
			ContractAddress: target.Hex(),
			Entrypoint:      "increaseBalance(uint256)",
			Calldata:        []*big.Int{big.NewInt(4)},
		}, 0)
		require.NoError(t, err)
		tx, err := chain.SignAndSend(ctx, signers[0], call)
		require.NoError(t, err)
		require.True(t, tx.Wait(ctx))

		id, ok := fetcher.SubmittedProposalID(tx.Receipt)
		require.True(t, ok)
		assert.Equal(t, uint64(0), id)

		state, err := fetcher.Fetch(ctx, &id)
		require.NoError(t, err)
		require.NotNil(t, state.Proposal)
		assert.Equal(t, uint64(1), state.Proposal.Confirmations)
		assert.False(t, state.Proposal.Executed)
		assert.Equal(t, domain.ActionApprove, state.Proposal.NextAction)
		assert.Equal(t, "0x3e4ccb40", state.Proposal.Data.Entrypoint)
		assert.Equal(t, target.Hex(), state.Proposal.Data.ContractAddress)
		assert.Equal(t, uint64(1), state.ApprovalsLeft())
		assert.Equal(t, domain.StageProposed, state.Stage())

		confirmed, err := fetcher.IsConfirmedBy(ctx, id, addrs[0])
		require.NoError(t, err)
		assert.True(t, confirmed)
		confirmed, err = fetcher.IsConfirmedBy(ctx, id, addrs[1])
		require.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("every fetch reads the chain again", func(t *testing.T) {
		chain := fakechain.New()
		ms := chain.DeployMultisig(addrs, 2)
		fetcher := usecase.NewMultisigStateFetcher(chain, ms)

		first, err := fetcher.Fetch(ctx, nil)
		require.NoError(t, err)
		reads := chain.Reads()

		second, err := fetcher.Fetch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 2*reads, chain.Reads())

		chain.Multisig(ms).Threshold = 3
		third, err := fetcher.Fetch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), third.Multisig.Threshold)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		chain := fakechain.New()
		ms := chain.DeployMultisig(addrs, 2)
		id := uint64(7)

		_, err := usecase.NewMultisigStateFetcher(chain, ms).Fetch(ctx, &id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "proposal 7")
	})

	t.Run("receipt without submission event", func(t *testing.T) {
		fetcher := usecase.NewMultisigStateFetcher(fakechain.New(), addrs[0])
		_, ok := fetcher.SubmittedProposalID(nil)
		assert.False(t, ok)
	})
}
