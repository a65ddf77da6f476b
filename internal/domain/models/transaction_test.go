package models

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionResponseWait(t *testing.T) {
	hash := common.HexToHash("0x01")

	t.Run("accepted", func(t *testing.T) {
		deployed := common.HexToAddress("0xaa")
		calls := 0
		tx := NewTransactionResponse(hash, nil, func(ctx context.Context, h common.Hash) (*types.Receipt, error) {
			calls++
			assert.Equal(t, hash, h)
			return &types.Receipt{Status: types.ReceiptStatusSuccessful, ContractAddress: deployed}, nil
		})
		assert.Equal(t, TransactionStatusPending, tx.Status)

		assert.True(t, tx.Wait(context.Background()))
		assert.Equal(t, TransactionStatusAccepted, tx.Status)
		require.NotNil(t, tx.Address)
		assert.Equal(t, deployed, *tx.Address)

		// final status is not re-evaluated
		assert.True(t, tx.Wait(context.Background()))
		assert.Equal(t, 1, calls)
	})

	t.Run("reverted", func(t *testing.T) {
		tx := NewTransactionResponse(hash, nil, func(ctx context.Context, h common.Hash) (*types.Receipt, error) {
			return &types.Receipt{Status: types.ReceiptStatusFailed}, nil
		})
		assert.False(t, tx.Wait(context.Background()))
		assert.Equal(t, TransactionStatusRejected, tx.Status)
		assert.Contains(t, tx.ErrorMessage, "reverted")
		assert.NotNil(t, tx.Receipt)
	})

	t.Run("wait error", func(t *testing.T) {
		tx := NewTransactionResponse(hash, nil, func(ctx context.Context, h common.Hash) (*types.Receipt, error) {
			return nil, errors.New("timed out waiting for inclusion")
		})
		assert.False(t, tx.Wait(context.Background()))
		assert.Equal(t, TransactionStatusRejected, tx.Status)
		assert.Equal(t, "timed out waiting for inclusion", tx.ErrorMessage)
	})

	t.Run("rejected before submission", func(t *testing.T) {
		tx := RejectedTransaction(errors.New("insufficient funds"))
		assert.False(t, tx.Wait(context.Background()))
		assert.Equal(t, "insufficient funds", tx.ErrorMessage)
	})
}

func TestResultMerge(t *testing.T) {
	r := &Result{}
	assert.Nil(t, r.Tx())
	r.Merge(nil)
	assert.Nil(t, r.Data)
	r.Merge(map[string]any{"proposalId": uint64(1)})
	r.Merge(map[string]any{"nextAction": "APPROVE"})
	assert.Equal(t, map[string]any{"proposalId": uint64(1), "nextAction": "APPROVE"}, r.Data)
}
