// Package example holds the commands of the example balance contract.
package example

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/opctl/internal/commands/ownable"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

const (
	Category = "example"

	flagBalance = "balance"
)

// DeployInput is the user input of example:deploy
type DeployInput struct {
	Salt string `json:"salt,omitempty"`
}

func (in DeployInput) DeploySalt() string {
	return in.Salt
}

// IncreaseBalanceInput is the user input of example:increase_balance
type IncreaseBalanceInput struct {
	Balance string `json:"balance"`
}

// Deploy deploys the example contract, owned by the deployer
var Deploy = usecase.MakeExecuteCommand(usecase.ExecuteCommandConfig[DeployInput]{
	Category:    Category,
	Action:      domain.ActionDeploy,
	ContractID:  bindings.ExampleMetaData.ID,
	Description: "Deploys the example contract",
	Examples:    []string{"opctl example:deploy --network=<NETWORK>"},
	BeforeExecute: func(ec *usecase.ExecutionContext, input usecase.Input[DeployInput], deps usecase.HookDeps) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			deps.Progress.Info("About to deploy an example contract")
			return nil
		}
	},
	AfterExecute: func(ec *usecase.ExecutionContext, input usecase.Input[DeployInput], deps usecase.HookDeps) func(ctx context.Context, result *models.Result) (map[string]any, error) {
		return func(ctx context.Context, result *models.Result) (map[string]any, error) {
			tx := result.Tx()
			if tx == nil || !tx.Accepted() || tx.Address == nil {
				return nil, nil
			}
			deps.Progress.Success(fmt.Sprintf("Contract deployed with address %s at tx hash %s", tx.Address.Hex(), tx.Hash.Hex()))
			return nil, nil
		}
	},
})

// IncreaseBalance adds to the contract balance
var IncreaseBalance = usecase.MakeExecuteCommand(usecase.ExecuteCommandConfig[IncreaseBalanceInput]{
	Category:    Category,
	Action:      "increase_balance",
	ContractID:  bindings.ExampleMetaData.ID,
	Description: "Increases the balance of the example contract",
	Examples:    []string{"opctl example:increase_balance --network=<NETWORK> --balance=<AMOUNT> <CONTRACT_ADDRESS>"},
	Flags: []usecase.FlagSpec{
		{Name: flagBalance, Usage: "Amount to add"},
	},
	MakeUserInput: func(flags usecase.Flags, args []string, env usecase.Env) (IncreaseBalanceInput, error) {
		return IncreaseBalanceInput{Balance: flags.String(flagBalance)}, nil
	},
	Validations: []usecase.Validation[IncreaseBalanceInput]{
		func(ctx context.Context, in IncreaseBalanceInput, ec *usecase.ExecutionContext) error {
			_, err := parseAmount(in.Balance)
			return err
		},
	},
	MakeContractInput: func(ctx context.Context, in IncreaseBalanceInput, ec *usecase.ExecutionContext) ([]any, error) {
		amount, err := parseAmount(in.Balance)
		if err != nil {
			return nil, err
		}
		return []any{amount}, nil
	},
})

// TransferOwnership proposes a new owner of the example contract
var TransferOwnership = usecase.MakeExecuteCommand(ownable.TransferOwnershipConfig(bindings.ExampleMetaData.ID, Category))

// AcceptOwnership accepts the ownership of the example contract
var AcceptOwnership = usecase.MakeExecuteCommand(ownable.AcceptOwnershipConfig(bindings.ExampleMetaData.ID, Category))

// State is what example:inspect reports
type State struct {
	Balance      string `json:"balance"`
	Owner        string `json:"owner"`
	PendingOwner string `json:"pendingOwner,omitempty"`
}

// Inspect reads the balance and owners of the example contract
var Inspect = usecase.MakeInspectionCommand(usecase.InspectCommandConfig[struct{}, struct{}, State]{
	Category:    Category,
	ContractID:  bindings.ExampleMetaData.ID,
	Description: "Shows the balance and owner of the example contract",
	Examples:    []string{"opctl example:inspect --network=<NETWORK> <CONTRACT_ADDRESS>"},
	Queries:     []string{"getBalance", "owner", "pendingOwner"},
	MakeComparisonData: func(ctx context.Context, provider usecase.Provider, results [][]any, input struct{}, address common.Address) (struct{}, State, error) {
		balance, ok := results[0][0].(*big.Int)
		if !ok {
			return struct{}{}, State{}, fmt.Errorf("unexpected getBalance result %T", results[0][0])
		}
		owner, _ := results[1][0].(common.Address)
		pending, _ := results[2][0].(common.Address)
		state := State{Balance: balance.String(), Owner: owner.Hex()}
		if pending != (common.Address{}) {
			state.PendingOwner = pending.Hex()
		}
		return struct{}{}, state, nil
	},
})

func parseAmount(raw string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(raw), 0)
	if !ok {
		return nil, fmt.Errorf("balance is not a number: %q", raw)
	}
	if v.Sign() <= 0 {
		return nil, fmt.Errorf("balance must be positive, got %s", v)
	}
	if v.BitLen() > 256 {
		return nil, fmt.Errorf("balance %s does not fit in uint256", v)
	}
	return v, nil
}
