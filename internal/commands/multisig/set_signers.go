package multisig

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// SetSignersInput is the user input of multisig:set_signers
type SetSignersInput struct {
	Signers []string `json:"signers"`
}

// SetSigners replaces the signer set of the multisig
var SetSigners = usecase.MakeExecuteCommand(usecase.ExecuteCommandConfig[SetSignersInput]{
	Category:         Category,
	Action:           "set_signers",
	InternalFunction: "setSigners",
	ContractID:       bindings.MultisigMetaData.ID,
	Description:      "Set signers of the multisig account",
	Examples: []string{
		"opctl multisig:set_signers --network=<NETWORK> --signers=[SIGNERS_LIST] <MULTISIG_ADDRESS>",
	},
	Flags: []usecase.FlagSpec{
		{Name: flagSigners, Usage: "Comma separated list of signer addresses", Kind: usecase.FlagStringSlice},
	},
	MakeUserInput: func(flags usecase.Flags, args []string, env usecase.Env) (SetSignersInput, error) {
		return SetSignersInput{Signers: flags.StringSlice(flagSigners)}, nil
	},
	Validations: []usecase.Validation[SetSignersInput]{
		func(ctx context.Context, in SetSignersInput, ec *usecase.ExecutionContext) error {
			return validateSigners(in.Signers)
		},
		func(ctx context.Context, in SetSignersInput, ec *usecase.ExecutionContext) error {
			threshold, err := currentThreshold(ctx, ec)
			if err != nil {
				return err
			}
			return domain.ValidateThreshold(threshold, len(in.Signers))
		},
	},
	MakeContractInput: func(ctx context.Context, in SetSignersInput, ec *usecase.ExecutionContext) ([]any, error) {
		return []any{toAddresses(in.Signers)}, nil
	},
	BeforeExecute: func(ec *usecase.ExecutionContext, input usecase.Input[SetSignersInput], deps usecase.HookDeps) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			deps.Progress.Info(fmt.Sprintf("About to set signers on the multisig contract (%s):\n  - New Signers: %s",
				ec.ContractAddress.Hex(), strings.Join(input.User.Signers, ", ")))
			return nil
		}
	},
})
