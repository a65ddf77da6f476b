package multisig

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// readOnlyProvider answers reads with canned return data keyed by selector
type readOnlyProvider struct {
	usecase.Provider
	returns map[string][]byte
}

func (p *readOnlyProvider) Read(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return p.returns[string(data[:4])], nil
}

func contextFor(t *testing.T, abiJSON string, returns func(parsed abi.ABI) map[string][]byte) *usecase.ExecutionContext {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	provider := &readOnlyProvider{returns: returns(parsed)}
	artifact := &models.Artifact{Name: "Multisig", ABI: &parsed}
	return &usecase.ExecutionContext{Contract: usecase.NewContractHandle(common.Address{1}, artifact, provider)}
}

func TestCurrentSignersAndThreshold(t *testing.T) {
	ctx := context.Background()

	t.Run("unexpected output types", func(t *testing.T) {
		ec := contextFor(t, `[
			{"type":"function","name":"getSigners","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
			{"type":"function","name":"getThreshold","inputs":[],"outputs":[{"name":"","type":"address[]"}],"stateMutability":"view"}
		]`, func(parsed abi.ABI) map[string][]byte {
			count, err := parsed.Methods["getSigners"].Outputs.Pack(big.NewInt(3))
			require.NoError(t, err)
			signers, err := parsed.Methods["getThreshold"].Outputs.Pack([]common.Address{{1}})
			require.NoError(t, err)
			return map[string][]byte{
				string(parsed.Methods["getSigners"].ID):   count,
				string(parsed.Methods["getThreshold"].ID): signers,
			}
		})

		_, err := currentSigners(ctx, ec)
		assert.ErrorContains(t, err, "expected address[]")
		_, err = currentThreshold(ctx, ec)
		assert.ErrorContains(t, err, "expected uint256")
	})

	t.Run("no outputs", func(t *testing.T) {
		ec := contextFor(t, `[
			{"type":"function","name":"getSigners","inputs":[],"outputs":[],"stateMutability":"view"},
			{"type":"function","name":"getThreshold","inputs":[],"outputs":[],"stateMutability":"view"}
		]`, func(abi.ABI) map[string][]byte { return nil })

		_, err := currentSigners(ctx, ec)
		assert.ErrorContains(t, err, "no values")
		_, err = currentThreshold(ctx, ec)
		assert.ErrorContains(t, err, "no values")
	})

	t.Run("well formed", func(t *testing.T) {
		ec := contextFor(t, `[
			{"type":"function","name":"getSigners","inputs":[],"outputs":[{"name":"","type":"address[]"}],"stateMutability":"view"},
			{"type":"function","name":"getThreshold","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}
		]`, func(parsed abi.ABI) map[string][]byte {
			signers, err := parsed.Methods["getSigners"].Outputs.Pack([]common.Address{{1}, {2}})
			require.NoError(t, err)
			threshold, err := parsed.Methods["getThreshold"].Outputs.Pack(big.NewInt(2))
			require.NoError(t, err)
			return map[string][]byte{
				string(parsed.Methods["getSigners"].ID):   signers,
				string(parsed.Methods["getThreshold"].ID): threshold,
			}
		})

		signers, err := currentSigners(ctx, ec)
		require.NoError(t, err)
		assert.Equal(t, []common.Address{{1}, {2}}, signers)
		threshold, err := currentThreshold(ctx, ec)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), threshold)
	})
}
