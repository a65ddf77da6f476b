package multisig

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// Expected holds the values multisig:inspect compares against
type Expected struct {
	Signers   []string    `json:"signers,omitempty"`
	Threshold json.Number `json:"threshold,omitempty"`
}

// State is what multisig:inspect reports
type State struct {
	Signers   []string `json:"signers"`
	Threshold uint64   `json:"threshold"`
}

// Inspect reads the signers and threshold of a multisig
var Inspect = usecase.MakeInspectionCommand(usecase.InspectCommandConfig[struct{}, Expected, State]{
	Category:    Category,
	ContractID:  bindings.MultisigMetaData.ID,
	Description: "Shows the signers and threshold of a multisig",
	Examples: []string{
		"opctl multisig:inspect --network=<NETWORK> <MULTISIG_ADDRESS>",
		"opctl multisig:inspect --threshold=2 --signers=<A>,<B>,<C> <MULTISIG_ADDRESS>",
	},
	Flags: []usecase.FlagSpec{
		{Name: flagSigners, Usage: "Expected signers", Kind: usecase.FlagStringSlice},
		{Name: flagThreshold, Usage: "Expected threshold"},
	},
	Queries: []string{"getSigners", "getThreshold"},
	MakeUserInput: func(flags usecase.Flags, args []string) (usecase.InspectUserInput[struct{}, Expected], error) {
		var in usecase.InspectUserInput[struct{}, Expected]
		if !flags.Has(flagSigners) && !flags.Has(flagThreshold) {
			return in, nil
		}
		in.ToCompare = &Expected{
			Signers:   flags.StringSlice(flagSigners),
			Threshold: json.Number(flags.String(flagThreshold)),
		}
		return in, nil
	},
	MakeComparisonData: func(ctx context.Context, provider usecase.Provider, results [][]any, input struct{}, address common.Address) (Expected, State, error) {
		signers, ok := results[0][0].([]common.Address)
		if !ok {
			return Expected{}, State{}, fmt.Errorf("unexpected getSigners result %T", results[0][0])
		}
		threshold, ok := results[1][0].(*big.Int)
		if !ok || !threshold.IsUint64() {
			return Expected{}, State{}, fmt.Errorf("unexpected getThreshold result %v", results[1][0])
		}
		state := State{
			Signers:   lo.Map(signers, func(a common.Address, _ int) string { return a.Hex() }),
			Threshold: threshold.Uint64(),
		}
		actual := Expected{
			Signers:   state.Signers,
			Threshold: json.Number(threshold.String()),
		}
		return actual, state, nil
	},
	Inspect: func(expected usecase.InspectUserInput[struct{}, Expected], actual Expected) []usecase.InspectionResult {
		if expected.ToCompare == nil {
			return nil
		}
		var results []usecase.InspectionResult
		want := expected.ToCompare
		if len(want.Signers) > 0 {
			normalized := lo.Map(toAddresses(want.Signers), func(a common.Address, _ int) string { return a.Hex() })
			results = append(results, usecase.Expect("signers", normalized, actual.Signers))
		}
		if want.Threshold != "" {
			if v, err := parseThreshold(want.Threshold); err == nil {
				results = append(results, usecase.Expect("threshold", json.Number(strconv.FormatUint(v, 10)), actual.Threshold))
			} else {
				results = append(results, usecase.Expect("threshold", want.Threshold, actual.Threshold))
			}
		}
		return results
	},
})
