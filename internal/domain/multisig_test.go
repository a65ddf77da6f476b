package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestResolveAction(t *testing.T) {
	tests := []struct {
		name          string
		confirmations uint64
		threshold     uint64
		executed      bool
		want          Action
	}{
		{"below threshold", 1, 2, false, ActionApprove},
		{"no confirmations", 0, 1, false, ActionApprove},
		{"at threshold", 2, 2, false, ActionExecute},
		{"above threshold", 3, 2, false, ActionExecute},
		{"executed at threshold", 2, 2, true, ActionNone},
		{"executed below threshold", 0, 2, true, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAction(tt.confirmations, tt.threshold, tt.executed))
		})
	}
}

func TestResolveActionBoundary(t *testing.T) {
	for threshold := uint64(1); threshold <= 5; threshold++ {
		assert.Equal(t, ActionApprove, ResolveAction(threshold-1, threshold, false))
		assert.Equal(t, ActionExecute, ResolveAction(threshold, threshold, false))
		assert.Equal(t, ActionNone, ResolveAction(threshold, threshold, true))
	}
}

func TestMultisigState(t *testing.T) {
	state := &MultisigState{Multisig: MultisigInfo{Threshold: 3}}
	assert.Equal(t, StageNoProposal, state.Stage())
	assert.Equal(t, uint64(0), state.ApprovalsLeft())

	state.Proposal = &Proposal{Confirmations: 1}
	assert.Equal(t, StageProposed, state.Stage())
	assert.Equal(t, uint64(2), state.ApprovalsLeft())

	state.Proposal.Confirmations = 2
	assert.Equal(t, StageApproving, state.Stage())

	state.Proposal.Confirmations = 3
	assert.Equal(t, StageExecutable, state.Stage())
	assert.Equal(t, uint64(0), state.ApprovalsLeft())

	state.Proposal.Executed = true
	assert.Equal(t, StageExecuted, state.Stage())
}

func TestValidateThreshold(t *testing.T) {
	assert.NoError(t, ValidateThreshold(2, 3))
	assert.NoError(t, ValidateThreshold(3, 3))
	assert.ErrorIs(t, ValidateThreshold(4, 3), ErrThresholdMisconfigured)
	assert.ErrorIs(t, ValidateThreshold(0, 3), ErrThresholdMisconfigured)
}

func TestIsSameProposal(t *testing.T) {
	target := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	base := Call{
		ContractAddress: target.Hex(),
		Entrypoint:      "setThreshold(uint256)",
		Calldata:        []*big.Int{big.NewInt(2)},
	}
	selector := SelectorFromSignature("setThreshold(uint256)")

	t.Run("identical", func(t *testing.T) {
		assert.True(t, IsSameProposal(base, base))
	})

	t.Run("padded address and selector form", func(t *testing.T) {
		onchain := Call{
			ContractAddress: "0x00000000000000000000000000000000000000000000000000000000000000AA",
			Entrypoint:      selector.Hex(),
			Calldata:        []*big.Int{big.NewInt(2)},
		}
		assert.True(t, IsSameProposal(base, onchain))
		assert.True(t, IsSameProposal(onchain, base))
	})

	t.Run("unprefixed short address", func(t *testing.T) {
		onchain := base
		onchain.ContractAddress = "aa"
		assert.True(t, IsSameProposal(base, onchain))
	})

	t.Run("different argument", func(t *testing.T) {
		onchain := base
		onchain.Calldata = []*big.Int{big.NewInt(3)}
		assert.False(t, IsSameProposal(base, onchain))
	})

	t.Run("different argument count", func(t *testing.T) {
		onchain := base
		onchain.Calldata = []*big.Int{big.NewInt(2), big.NewInt(0)}
		assert.False(t, IsSameProposal(base, onchain))
	})

	t.Run("different entrypoint", func(t *testing.T) {
		onchain := base
		onchain.Entrypoint = "setSigners(address[])"
		assert.False(t, IsSameProposal(base, onchain))
	})

	t.Run("different target", func(t *testing.T) {
		onchain := base
		onchain.ContractAddress = "0xbb"
		assert.False(t, IsSameProposal(base, onchain))
	})

	t.Run("unparseable entrypoint", func(t *testing.T) {
		onchain := base
		onchain.Entrypoint = "setThreshold"
		assert.False(t, IsSameProposal(base, onchain))
	})
}
