package blockchain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

var defaultReadRetryDelays = []time.Duration{500 * time.Millisecond, 2 * time.Second, 8 * time.Second}

// withRetry runs a read-only RPC call with incremental backoff.
// Reverts and missing results are final and returned immediately.
func withRetry[T any](ctx context.Context, delays []time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if len(delays) == 0 {
		delays = defaultReadRetryDelays
	}
	return retry.DoWithData(
		func() (T, error) {
			return fn(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(uint(len(delays)+1)),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return delays[min(int(n), len(delays)-1)]
		}),
		retry.RetryIf(isTransient),
		retry.LastErrorOnly(true),
	)
}

func isTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !isRevert(err) && !errors.Is(err, ethereum.NotFound)
}

// isRevert reports whether the node executed the call and it reverted
func isRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}
