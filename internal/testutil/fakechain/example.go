package fakechain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
)

// Example mirrors the example contract: a balance and two-step ownership
type Example struct {
	Balance      big.Int
	Owner        common.Address
	PendingOwner common.Address
}

func (e *Example) call(method string, args []any) ([]any, error) {
	switch method {
	case "getBalance":
		return []any{new(big.Int).Set(&e.Balance)}, nil
	case "owner":
		return []any{e.Owner}, nil
	case "pendingOwner":
		return []any{e.PendingOwner}, nil
	}
	return nil, fmt.Errorf("%s is not a view function", method)
}

func (e *Example) transact(chain *Chain, from common.Address, method string, args []any) ([]*types.Log, error) {
	parsed := bindings.NewExample().ABI()
	switch method {
	case "increaseBalance":
		amount := args[0].(*big.Int)
		if amount.Sign() == 0 {
			return nil, errors.New("amount cannot be 0")
		}
		e.Balance.Add(&e.Balance, amount)
		return []*types.Log{event(parsed, "BalanceIncreased", from, new(big.Int).Set(amount), new(big.Int).Set(&e.Balance))}, nil

	case "transferOwnership":
		if from != e.Owner {
			return nil, fmt.Errorf("caller %s is not the owner", from.Hex())
		}
		e.PendingOwner = args[0].(common.Address)
		return []*types.Log{event(parsed, "OwnershipTransferStarted", e.Owner, e.PendingOwner)}, nil

	case "acceptOwnership":
		if from != e.PendingOwner {
			return nil, fmt.Errorf("caller %s is not the pending owner", from.Hex())
		}
		previous := e.Owner
		e.Owner, e.PendingOwner = from, common.Address{}
		return []*types.Log{event(parsed, "OwnershipTransferred", previous, from)}, nil
	}
	return nil, fmt.Errorf("%s is not a state-changing function", method)
}
