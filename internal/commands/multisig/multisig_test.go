package multisig_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/opctl/internal/commands/multisig"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/testutil/fakechain"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

type testEnv struct {
	chain    *fakechain.Chain
	signers  []*fakechain.Wallet
	addrs    []common.Address
	multisig common.Address
}

func newTestEnv(threshold uint64) *testEnv {
	chain := fakechain.New()
	signers := []*fakechain.Wallet{fakechain.NewWallet("signer-1"), fakechain.NewWallet("signer-2"), fakechain.NewWallet("signer-3")}
	addrs := []common.Address{signers[0].Address(), signers[1].Address(), signers[2].Address()}
	return &testEnv{
		chain:    chain,
		signers:  signers,
		addrs:    addrs,
		multisig: chain.DeployMultisig(addrs, threshold),
	}
}

func (e *testEnv) run(t *testing.T, builder usecase.CommandBuilder, signer *fakechain.Wallet, flags usecase.Flags) (*models.Result, error) {
	t.Helper()
	deps := e.chain.Dependencies(signer, fakechain.Options{Multisig: e.multisig.Hex()})
	cmd, err := builder.Build(deps).Create(context.Background(), flags, []string{e.multisig.Hex()})
	if err != nil {
		return nil, err
	}
	return cmd.Execute(context.Background())
}

func (e *testEnv) resolve(t *testing.T, id uint64) domain.Action {
	t.Helper()
	state, err := usecase.NewMultisigStateFetcher(e.chain, e.multisig).Fetch(context.Background(), &id)
	require.NoError(t, err)
	return state.Proposal.NextAction
}

func TestSetThresholdThroughMultisig(t *testing.T) {
	env := newTestEnv(2)
	setThreshold := usecase.WrapCommand(multisig.SetThreshold)

	// signer 1 proposes
	result, err := env.run(t, setThreshold, env.signers[0], usecase.Flags{"threshold": "2"})
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	proposal, ok := result.Data["proposalId"].(uint64)
	require.True(t, ok)
	assert.Equal(t, domain.ActionApprove, result.Data["nextAction"])
	assert.Equal(t, domain.ActionApprove, env.resolve(t, proposal))

	flags := usecase.Flags{"threshold": "2", usecase.FlagMultisigProposal: "0"}

	// signer 1 cannot be the second approval
	_, err = env.run(t, setThreshold, env.signers[0], flags)
	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
	assert.Equal(t, domain.ActionApprove, env.resolve(t, proposal))

	// signer 2 approves
	result, err = env.run(t, setThreshold, env.signers[1], flags)
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	assert.Equal(t, domain.ActionExecute, result.Data["nextAction"])
	assert.Equal(t, domain.ActionExecute, env.resolve(t, proposal))

	// anyone executes
	result, err = env.run(t, setThreshold, env.signers[2], flags)
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	assert.Equal(t, domain.ActionNone, result.Data["nextAction"])
	assert.Equal(t, domain.ActionNone, env.resolve(t, proposal))
	assert.Equal(t, uint64(2), env.chain.Multisig(env.multisig).Threshold)
	assert.True(t, env.chain.Multisig(env.multisig).Proposals[proposal].Executed)
}

func TestRaisingThresholdThroughMultisig(t *testing.T) {
	env := newTestEnv(2)
	setThreshold := usecase.WrapCommand(multisig.SetThreshold)

	_, err := env.run(t, setThreshold, env.signers[0], usecase.Flags{"threshold": "3"})
	require.NoError(t, err)
	flags := usecase.Flags{"threshold": "3", usecase.FlagMultisigProposal: "0"}
	_, err = env.run(t, setThreshold, env.signers[1], flags)
	require.NoError(t, err)
	_, err = env.run(t, setThreshold, env.signers[0], flags)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), env.chain.Multisig(env.multisig).Threshold)
}

func TestDivergentProposalIsNeverSubmitted(t *testing.T) {
	env := newTestEnv(2)
	setThreshold := usecase.WrapCommand(multisig.SetThreshold)

	// pending proposal targets a threshold of 3
	_, err := env.run(t, setThreshold, env.signers[0], usecase.Flags{"threshold": "3"})
	require.NoError(t, err)
	sent := len(env.chain.Sent())

	// the operator regenerates "set threshold to 2" against it
	_, err = env.run(t, setThreshold, env.signers[1], usecase.Flags{"threshold": "2", usecase.FlagMultisigProposal: "0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProposalMismatch)
	assert.Equal(t, "the transaction generated is different from the proposal provided", domain.ErrProposalMismatch.Error())
	assert.Len(t, env.chain.Sent(), sent)
	assert.Equal(t, domain.ActionApprove, env.resolve(t, 0))
}

func TestInputPayloadOverridesFlags(t *testing.T) {
	env := newTestEnv(2)
	setThreshold := usecase.WrapCommand(multisig.SetThreshold)

	flags := usecase.Flags{
		"threshold":       "3",
		usecase.FlagInput: `{"threshold": 1}`,
	}
	result, err := env.run(t, setThreshold, env.signers[0], flags)
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())

	p := env.chain.Multisig(env.multisig).Proposals[0]
	require.Len(t, p.Calldata, 1)
	assert.Equal(t, int64(1), p.Calldata[0].Int64())
}

func TestSetThresholdValidation(t *testing.T) {
	env := newTestEnv(2)
	tests := []struct {
		name      string
		threshold string
	}{
		{"above signer count", "4"},
		{"zero", "0"},
		{"not a number", "two"},
		{"missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run(t, usecase.WrapCommand(multisig.SetThreshold), env.signers[0], usecase.Flags{"threshold": tt.threshold})
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
	assert.Empty(t, env.chain.Sent())
}

func TestSetSignersThroughMultisig(t *testing.T) {
	env := newTestEnv(1)
	setSigners := usecase.WrapCommand(multisig.SetSigners)
	newSigner := fakechain.NewWallet("signer-4").Address()
	signers := env.addrs[0].Hex() + "," + newSigner.Hex()

	// threshold 1 executes right after the proposal
	result, err := env.run(t, setSigners, env.signers[0], usecase.Flags{"signers": signers})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionExecute, result.Data["nextAction"])

	result, err = env.run(t, setSigners, env.signers[0], usecase.Flags{"signers": signers, usecase.FlagMultisigProposal: "0"})
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	assert.Equal(t, []common.Address{env.addrs[0], newSigner}, env.chain.Multisig(env.multisig).Signers)

	t.Run("duplicates are rejected", func(t *testing.T) {
		_, err := env.run(t, setSigners, env.signers[0], usecase.Flags{"signers": env.addrs[0].Hex() + "," + env.addrs[0].Hex()})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("invalid addresses are rejected", func(t *testing.T) {
		_, err := env.run(t, setSigners, env.signers[0], usecase.Flags{"signers": "0x1234"})
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestSetSignersBelowThreshold(t *testing.T) {
	env := newTestEnv(2)
	setSigners := usecase.WrapCommand(multisig.SetSigners)

	_, err := env.run(t, setSigners, env.signers[0], usecase.Flags{"signers": env.addrs[0].Hex()})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.ErrorIs(t, err, domain.ErrThresholdMisconfigured)
	assert.Empty(t, env.chain.Sent())
	assert.Empty(t, env.chain.Multisig(env.multisig).Proposals)

	// keeping as many signers as the threshold is fine
	result, err := env.run(t, setSigners, env.signers[0], usecase.Flags{"signers": env.addrs[0].Hex() + "," + env.addrs[1].Hex()})
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
}

func TestDeploy(t *testing.T) {
	ctx := context.Background()
	chain := fakechain.New()
	deployer := fakechain.NewWallet("deployer")
	signers := []string{
		fakechain.NewWallet("a").Address().Hex(),
		fakechain.NewWallet("b").Address().Hex(),
	}

	t.Run("deploys with signers and threshold", func(t *testing.T) {
		cmd, err := multisig.Deploy.Build(chain.Dependencies(deployer, fakechain.Options{})).
			Create(ctx, usecase.Flags{"signers": signers[0] + "," + signers[1], "threshold": "2"}, nil)
		require.NoError(t, err)

		result, err := cmd.Execute(ctx)
		require.NoError(t, err)
		tx := result.Tx()
		require.True(t, tx.Accepted())
		assert.Equal(t, tx.Address.Hex(), result.Data["multisig"])

		deployed := chain.Multisig(*tx.Address)
		require.NotNil(t, deployed)
		assert.Equal(t, uint64(2), deployed.Threshold)
		assert.Len(t, deployed.Signers, 2)
	})

	t.Run("input payload", func(t *testing.T) {
		input := "signers:\n  - \"" + signers[0] + "\"\nthreshold: 1\nsalt: \"0x01\"\n"
		cmd, err := multisig.Deploy.Build(chain.Dependencies(deployer, fakechain.Options{})).
			Create(ctx, usecase.Flags{usecase.FlagInput: input}, nil)
		require.NoError(t, err)

		result, err := cmd.Execute(ctx)
		require.NoError(t, err)
		require.True(t, result.Tx().Accepted())
		assert.Equal(t, uint64(1), chain.Multisig(*result.Tx().Address).Threshold)
	})

	t.Run("threshold above signer count", func(t *testing.T) {
		_, err := multisig.Deploy.Build(chain.Dependencies(deployer, fakechain.Options{})).
			Create(ctx, usecase.Flags{"signers": signers[0], "threshold": "2"}, nil)
		assert.True(t, domain.IsValidationError(err))
		assert.ErrorIs(t, err, domain.ErrThresholdMisconfigured)
	})
}

func TestInspect(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(2)

	t.Run("reports signers and threshold", func(t *testing.T) {
		cmd, err := multisig.Inspect.Build(env.chain.Dependencies(nil, fakechain.Options{})).
			Create(ctx, nil, []string{env.multisig.Hex()})
		require.NoError(t, err)

		result, err := cmd.Execute(ctx)
		require.NoError(t, err)
		state, ok := result.Data["data"].(multisig.State)
		require.True(t, ok)
		assert.Equal(t, uint64(2), state.Threshold)
		assert.Equal(t, []string{env.addrs[0].Hex(), env.addrs[1].Hex(), env.addrs[2].Hex()}, state.Signers)
	})

	t.Run("compares expected values", func(t *testing.T) {
		flags := usecase.Flags{
			"threshold": "3",
			"signers":   env.addrs[0].Hex() + "," + env.addrs[1].Hex() + "," + env.addrs[2].Hex(),
		}
		cmd, err := multisig.Inspect.Build(env.chain.Dependencies(nil, fakechain.Options{})).
			Create(ctx, flags, []string{env.multisig.Hex()})
		require.NoError(t, err)

		result, err := cmd.Execute(ctx)
		require.NoError(t, err)
		inspection, ok := result.Data["inspection"].([]usecase.InspectionResult)
		require.True(t, ok)
		require.Len(t, inspection, 2)
		assert.Equal(t, usecase.InspectionSuccess, inspection[0].ResultType)
		assert.Equal(t, usecase.InspectionFailed, inspection[1].ResultType)
	})
}
