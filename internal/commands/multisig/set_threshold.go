package multisig

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// SetThresholdInput is the user input of multisig:set_threshold
type SetThresholdInput struct {
	Threshold json.Number `json:"threshold"`
}

// SetThreshold changes the approvals a proposal needs. The multisig only
// accepts it from itself, so it is normally run through the multisig wrapper.
var SetThreshold = usecase.MakeExecuteCommand(usecase.ExecuteCommandConfig[SetThresholdInput]{
	Category:         Category,
	Action:           "set_threshold",
	InternalFunction: "setThreshold",
	ContractID:       bindings.MultisigMetaData.ID,
	Description:      "Set threshold of the multisig account",
	Examples: []string{
		"opctl multisig:set_threshold --network=<NETWORK> --threshold=<MIN_APPROVALS> <MULTISIG_ADDRESS>",
	},
	Flags: []usecase.FlagSpec{
		{Name: flagThreshold, Usage: "Approvals required to execute a proposal"},
	},
	MakeUserInput: func(flags usecase.Flags, args []string, env usecase.Env) (SetThresholdInput, error) {
		return SetThresholdInput{Threshold: json.Number(flags.String(flagThreshold))}, nil
	},
	Validations: []usecase.Validation[SetThresholdInput]{
		func(ctx context.Context, in SetThresholdInput, ec *usecase.ExecutionContext) error {
			signers, err := currentSigners(ctx, ec)
			if err != nil {
				return err
			}
			return validateThreshold(in.Threshold, len(signers))
		},
	},
	MakeContractInput: func(ctx context.Context, in SetThresholdInput, ec *usecase.ExecutionContext) ([]any, error) {
		threshold, err := thresholdArg(in.Threshold)
		if err != nil {
			return nil, err
		}
		return []any{threshold}, nil
	},
	BeforeExecute: func(ec *usecase.ExecutionContext, input usecase.Input[SetThresholdInput], deps usecase.HookDeps) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			deps.Progress.Info(fmt.Sprintf("About to set a new threshold on the multisig contract (%s):\n  - New Threshold: %s",
				ec.ContractAddress.Hex(), input.User.Threshold))
			return nil
		}
	},
})
