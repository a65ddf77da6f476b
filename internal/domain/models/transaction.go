package models

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransactionStatus represents the status of a submitted transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusAccepted TransactionStatus = "ACCEPTED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
)

// InclusionWaiter blocks until the transaction is included or the wait fails
type InclusionWaiter func(ctx context.Context, hash common.Hash) (*types.Receipt, error)

// TransactionResponse tracks a submitted transaction until it is final.
// Status leaves PENDING exactly once.
type TransactionResponse struct {
	Hash         common.Hash       `json:"hash"`
	Address      *common.Address   `json:"address,omitempty"`
	Status       TransactionStatus `json:"status"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Receipt      *types.Receipt    `json:"-"`

	waiter InclusionWaiter
}

// NewTransactionResponse creates a pending response. address is set for deployments.
func NewTransactionResponse(hash common.Hash, address *common.Address, waiter InclusionWaiter) *TransactionResponse {
	return &TransactionResponse{
		Hash:    hash,
		Address: address,
		Status:  TransactionStatusPending,
		waiter:  waiter,
	}
}

// RejectedTransaction records a submission that never reached the network
func RejectedTransaction(err error) *TransactionResponse {
	return &TransactionResponse{
		Status:       TransactionStatusRejected,
		ErrorMessage: err.Error(),
	}
}

// Wait blocks until the transaction is final and reports whether it was accepted.
func (r *TransactionResponse) Wait(ctx context.Context) bool {
	if r.Status != TransactionStatusPending {
		return r.Status == TransactionStatusAccepted
	}
	if r.waiter == nil {
		r.reject("no inclusion waiter configured")
		return false
	}

	receipt, err := r.waiter(ctx, r.Hash)
	if err != nil {
		r.reject(err.Error())
		return false
	}
	r.Receipt = receipt
	if receipt.Status != types.ReceiptStatusSuccessful {
		r.reject(fmt.Sprintf("transaction %s reverted", r.Hash.Hex()))
		return false
	}
	if r.Address == nil && receipt.ContractAddress != (common.Address{}) {
		addr := receipt.ContractAddress
		r.Address = &addr
	}
	r.Status = TransactionStatusAccepted
	return true
}

// Accepted reports whether the transaction is final and successful
func (r *TransactionResponse) Accepted() bool {
	return r.Status == TransactionStatusAccepted
}

func (r *TransactionResponse) reject(msg string) {
	r.Status = TransactionStatusRejected
	r.ErrorMessage = msg
}

// Response pairs a transaction with the contract it concerns
type Response struct {
	Tx       *TransactionResponse `json:"tx"`
	Contract string               `json:"contract,omitempty"`
}

// Result is what every command returns
type Result struct {
	Responses []Response     `json:"responses"`
	Data      map[string]any `json:"data,omitempty"`
}

// Tx returns the first transaction of the result, if any
func (r *Result) Tx() *TransactionResponse {
	if r == nil || len(r.Responses) == 0 {
		return nil
	}
	return r.Responses[0].Tx
}

// Merge adds entries to the result data
func (r *Result) Merge(data map[string]any) {
	if len(data) == 0 {
		return
	}
	if r.Data == nil {
		r.Data = make(map[string]any, len(data))
	}
	for k, v := range data {
		r.Data[k] = v
	}
}
