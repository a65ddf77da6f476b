package example_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/opctl/internal/commands/example"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/testutil/fakechain"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

func TestDeployAndIncreaseBalance(t *testing.T) {
	ctx := context.Background()
	chain := fakechain.New()
	owner := fakechain.NewWallet("owner")
	deps := chain.Dependencies(owner, fakechain.Options{})

	cmd, err := example.Deploy.Build(deps).Create(ctx, nil, nil)
	require.NoError(t, err)
	result, err := cmd.Execute(ctx)
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	contract := *result.Tx().Address

	for _, amount := range []string{"5", "0x10"} {
		cmd, err = example.IncreaseBalance.Build(deps).Create(ctx, usecase.Flags{"balance": amount}, []string{contract.Hex()})
		require.NoError(t, err)
		result, err = cmd.Execute(ctx)
		require.NoError(t, err)
		require.True(t, result.Tx().Accepted())
	}

	cmd, err = example.Inspect.Build(deps).Create(ctx, nil, []string{contract.Hex()})
	require.NoError(t, err)
	result, err = cmd.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, example.State{Balance: "21", Owner: owner.Address().Hex()}, result.Data["data"])
}

func TestIncreaseBalanceValidation(t *testing.T) {
	ctx := context.Background()
	chain := fakechain.New()
	owner := fakechain.NewWallet("owner")
	contract := chain.DeployExample(owner.Address())
	factory := example.IncreaseBalance.Build(chain.Dependencies(owner, fakechain.Options{}))

	for _, amount := range []string{"", "0", "-1", "lots"} {
		_, err := factory.Create(ctx, usecase.Flags{"balance": amount}, []string{contract.Hex()})
		assert.True(t, domain.IsValidationError(err), "balance %q", amount)
	}
	assert.Empty(t, chain.Sent())
}

func TestOwnershipTransfer(t *testing.T) {
	ctx := context.Background()
	chain := fakechain.New()
	owner := fakechain.NewWallet("owner")
	next := fakechain.NewWallet("next")
	contract := chain.DeployExample(owner.Address())

	t.Run("invalid new owner", func(t *testing.T) {
		_, err := example.TransferOwnership.Build(chain.Dependencies(owner, fakechain.Options{})).
			Create(ctx, usecase.Flags{"newOwner": "bob"}, []string{contract.Hex()})
		assert.True(t, domain.IsValidationError(err))
	})

	cmd, err := example.TransferOwnership.Build(chain.Dependencies(owner, fakechain.Options{})).
		Create(ctx, usecase.Flags{"newOwner": next.Address().Hex()}, []string{contract.Hex()})
	require.NoError(t, err)
	result, err := cmd.Execute(ctx)
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	assert.Equal(t, next.Address(), chain.Example(contract).PendingOwner)

	cmd, err = example.AcceptOwnership.Build(chain.Dependencies(next, fakechain.Options{})).
		Create(ctx, nil, []string{contract.Hex()})
	require.NoError(t, err)
	result, err = cmd.Execute(ctx)
	require.NoError(t, err)
	require.True(t, result.Tx().Accepted())
	assert.Equal(t, next.Address(), chain.Example(contract).Owner)
	assert.Equal(t, common.Address{}, chain.Example(contract).PendingOwner)
}

func TestOwnershipThroughMultisig(t *testing.T) {
	ctx := context.Background()
	chain := fakechain.New()
	signer := fakechain.NewWallet("signer")
	ms := chain.DeployMultisig([]common.Address{signer.Address()}, 1)
	owner := fakechain.NewWallet("owner")
	contract := chain.DeployExample(owner.Address())

	// the EOA owner hands the contract to the multisig
	cmd, err := example.TransferOwnership.Build(chain.Dependencies(owner, fakechain.Options{})).
		Create(ctx, usecase.Flags{"newOwner": ms.Hex()}, []string{contract.Hex()})
	require.NoError(t, err)
	_, err = cmd.Execute(ctx)
	require.NoError(t, err)

	accept := usecase.WrapCommand(example.AcceptOwnership).Build(chain.Dependencies(signer, fakechain.Options{Multisig: ms.Hex()}))
	for _, flags := range []usecase.Flags{{}, {usecase.FlagMultisigProposal: "0"}} {
		cmd, err = accept.Create(ctx, flags, []string{contract.Hex()})
		require.NoError(t, err)
		result, err := cmd.Execute(ctx)
		require.NoError(t, err)
		require.True(t, result.Tx().Accepted())
	}
	assert.Equal(t, ms, chain.Example(contract).Owner)
}
