// Package ownable provides the two-step ownership transfer commands shared by
// every contract exposing transferOwnership / acceptOwnership.
package ownable

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

const flagNewOwner = "newOwner"

// TransferOwnershipInput is the user input of <category>:transfer_ownership
type TransferOwnershipInput struct {
	NewOwner string `json:"newOwner"`
}

// AcceptOwnershipInput is empty: acceptOwnership takes no arguments
type AcceptOwnershipInput struct{}

// TransferOwnershipConfig starts a two-step ownership transfer by proposing a pending owner
func TransferOwnershipConfig(contractID, category string) usecase.ExecuteCommandConfig[TransferOwnershipInput] {
	return usecase.ExecuteCommandConfig[TransferOwnershipInput]{
		Category:         category,
		Action:           "transfer_ownership",
		InternalFunction: "transferOwnership",
		ContractID:       contractID,
		Description:      "Begin two-step ownership transfer process by proposing pending owner",
		Examples: []string{
			fmt.Sprintf("opctl %s:transfer_ownership --network=<NETWORK> --newOwner=<NEW_OWNER_ADDRESS> <CONTRACT_ADDRESS>", category),
		},
		Flags: []usecase.FlagSpec{
			{Name: flagNewOwner, Usage: "Address of the proposed owner"},
		},
		MakeUserInput: func(flags usecase.Flags, args []string, env usecase.Env) (TransferOwnershipInput, error) {
			return TransferOwnershipInput{NewOwner: flags.String(flagNewOwner)}, nil
		},
		Validations: []usecase.Validation[TransferOwnershipInput]{validateNewOwner},
		MakeContractInput: func(ctx context.Context, in TransferOwnershipInput, ec *usecase.ExecutionContext) ([]any, error) {
			return []any{common.HexToAddress(in.NewOwner)}, nil
		},
	}
}

// AcceptOwnershipConfig completes a two-step ownership transfer
func AcceptOwnershipConfig(contractID, category string) usecase.ExecuteCommandConfig[AcceptOwnershipInput] {
	return usecase.ExecuteCommandConfig[AcceptOwnershipInput]{
		Category:         category,
		Action:           "accept_ownership",
		InternalFunction: "acceptOwnership",
		ContractID:       contractID,
		Description:      "End two-step ownership transfer process by accepting ownership",
		Examples: []string{
			fmt.Sprintf("opctl %s:accept_ownership --network=<NETWORK> <CONTRACT_ADDRESS>", category),
		},
	}
}

func validateNewOwner(ctx context.Context, in TransferOwnershipInput, ec *usecase.ExecutionContext) error {
	if !domain.IsAddress(in.NewOwner) {
		return fmt.Errorf("invalid new owner address: %q", in.NewOwner)
	}
	return nil
}
