// Package multisig holds the commands that deploy and administer the multisig contract.
package multisig

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

const (
	Category = "multisig"

	flagSigners   = "signers"
	flagThreshold = "threshold"
)

// DeployInput is the user input of multisig:deploy
type DeployInput struct {
	Signers   []string    `json:"signers"`
	Threshold json.Number `json:"threshold"`
	Salt      string      `json:"salt,omitempty"`
}

func (in DeployInput) DeploySalt() string {
	return in.Salt
}

// Deploy deploys a new multisig
var Deploy = usecase.MakeExecuteCommand(usecase.ExecuteCommandConfig[DeployInput]{
	Category:    Category,
	Action:      domain.ActionDeploy,
	ContractID:  bindings.MultisigMetaData.ID,
	Description: "Deploys a multisig wallet",
	Examples: []string{
		"opctl multisig:deploy --network=<NETWORK> --threshold=<MIN_APPROVALS> --signers=[SIGNERS_LIST]",
	},
	Flags: []usecase.FlagSpec{
		{Name: flagSigners, Usage: "Comma separated list of signer addresses", Kind: usecase.FlagStringSlice},
		{Name: flagThreshold, Usage: "Approvals required to execute a proposal"},
	},
	MakeUserInput: func(flags usecase.Flags, args []string, env usecase.Env) (DeployInput, error) {
		return DeployInput{
			Signers:   flags.StringSlice(flagSigners),
			Threshold: json.Number(flags.String(flagThreshold)),
		}, nil
	},
	Validations: []usecase.Validation[DeployInput]{
		func(ctx context.Context, in DeployInput, ec *usecase.ExecutionContext) error {
			return validateSigners(in.Signers)
		},
		func(ctx context.Context, in DeployInput, ec *usecase.ExecutionContext) error {
			return validateThreshold(in.Threshold, len(in.Signers))
		},
	},
	MakeContractInput: func(ctx context.Context, in DeployInput, ec *usecase.ExecutionContext) ([]any, error) {
		threshold, err := thresholdArg(in.Threshold)
		if err != nil {
			return nil, err
		}
		return []any{toAddresses(in.Signers), threshold}, nil
	},
	BeforeExecute: func(ec *usecase.ExecutionContext, input usecase.Input[DeployInput], deps usecase.HookDeps) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			deps.Progress.Info(fmt.Sprintf("About to deploy a multisig contract with the following details:\n  - Signers: %s\n  - Threshold: %s",
				strings.Join(input.User.Signers, ", "), input.User.Threshold))
			return nil
		}
	},
	AfterExecute: func(ec *usecase.ExecutionContext, input usecase.Input[DeployInput], deps usecase.HookDeps) func(ctx context.Context, result *models.Result) (map[string]any, error) {
		return func(ctx context.Context, result *models.Result) (map[string]any, error) {
			tx := result.Tx()
			if tx == nil || !tx.Accepted() || tx.Address == nil {
				return nil, nil
			}
			deps.Progress.Success(fmt.Sprintf("Multisig deployed at %s", tx.Address.Hex()))
			return map[string]any{"multisig": tx.Address.Hex()}, nil
		}
	},
})
