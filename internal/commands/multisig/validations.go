package multisig

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// validateSigners checks every signer is an address and that none repeats
func validateSigners(signers []string) error {
	if len(signers) == 0 {
		return fmt.Errorf("at least one signer is required")
	}
	invalid := lo.Filter(signers, func(s string, _ int) bool {
		return !domain.IsAddress(s)
	})
	if len(invalid) > 0 {
		return fmt.Errorf("signers are not valid accounts: %s", strings.Join(invalid, ", "))
	}
	normalized := lo.Map(signers, func(s string, _ int) common.Address {
		return common.HexToAddress(s)
	})
	if len(lo.Uniq(normalized)) != len(normalized) {
		return fmt.Errorf("signers are not unique")
	}
	return nil
}

// parseThreshold reads a threshold given as text or number
func parseThreshold(raw json.Number) (uint64, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, fmt.Errorf("threshold is required")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("threshold is not a number: %q", s)
	}
	return v, nil
}

// validateThreshold checks the threshold is reachable by the given signer count
func validateThreshold(raw json.Number, signers int) error {
	threshold, err := parseThreshold(raw)
	if err != nil {
		return err
	}
	return domain.ValidateThreshold(threshold, signers)
}

// currentSigners reads the signer set of the target multisig
func currentSigners(ctx context.Context, ec *usecase.ExecutionContext) ([]common.Address, error) {
	out, err := ec.Contract.Call(ctx, "getSigners")
	if err != nil {
		return nil, fmt.Errorf("failed to read current signers: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("getSigners returned no values")
	}
	signers, ok := out[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("getSigners returned %T, expected address[]", out[0])
	}
	return signers, nil
}

// currentThreshold reads the threshold of the target multisig
func currentThreshold(ctx context.Context, ec *usecase.ExecutionContext) (uint64, error) {
	out, err := ec.Contract.Call(ctx, "getThreshold")
	if err != nil {
		return 0, fmt.Errorf("failed to read current threshold: %w", err)
	}
	if len(out) == 0 {
		return 0, fmt.Errorf("getThreshold returned no values")
	}
	threshold, ok := out[0].(*big.Int)
	if !ok || !threshold.IsUint64() {
		return 0, fmt.Errorf("getThreshold returned %v, expected uint256", out[0])
	}
	return threshold.Uint64(), nil
}

func toAddresses(signers []string) []common.Address {
	return lo.Map(signers, func(s string, _ int) common.Address {
		return common.HexToAddress(s)
	})
}

func thresholdArg(raw json.Number) (*big.Int, error) {
	v, err := parseThreshold(raw)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(v), nil
}
