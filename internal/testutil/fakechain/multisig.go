package fakechain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
)

// Proposal is a stored multisig transaction
type Proposal struct {
	To        common.Address
	Selector  [4]byte
	Calldata  []*big.Int
	Confirmed map[common.Address]bool
	Executed  bool
}

// Multisig mirrors the on-chain multisig contract
type Multisig struct {
	Address   common.Address
	Signers   []common.Address
	Threshold uint64
	Proposals []*Proposal

	abi *abi.ABI
}

func newMultisig(addr common.Address, signers []common.Address, threshold uint64) *Multisig {
	return &Multisig{
		Address:   addr,
		Signers:   append([]common.Address(nil), signers...),
		Threshold: threshold,
		abi:       bindings.NewMultisig().ABI(),
	}
}

func (m *Multisig) isSigner(addr common.Address) bool {
	return lo.Contains(m.Signers, addr)
}

func (m *Multisig) proposal(nonce *big.Int) (*Proposal, error) {
	if !nonce.IsUint64() || nonce.Uint64() >= uint64(len(m.Proposals)) {
		return nil, fmt.Errorf("transaction %s does not exist", nonce)
	}
	return m.Proposals[nonce.Uint64()], nil
}

func (m *Multisig) call(method string, args []any) ([]any, error) {
	switch method {
	case "getSigners":
		return []any{append([]common.Address{}, m.Signers...)}, nil
	case "getThreshold":
		return []any{new(big.Int).SetUint64(m.Threshold)}, nil
	case "getTransactionsLen":
		return []any{big.NewInt(int64(len(m.Proposals)))}, nil
	case "getTransaction":
		p, err := m.proposal(args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return []any{p.To, p.Selector, p.Calldata, big.NewInt(int64(len(p.Confirmed))), p.Executed}, nil
	case "isConfirmed":
		p, err := m.proposal(args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return []any{p.Confirmed[args[1].(common.Address)]}, nil
	}
	return nil, fmt.Errorf("%s is not a view function", method)
}

func (m *Multisig) transact(chain *Chain, from common.Address, method string, args []any) ([]*types.Log, error) {
	switch method {
	case "setThreshold", "setSigners":
		if from != m.Address {
			return nil, errors.New("only the multisig itself can change its configuration")
		}
		return m.configure(method, args)
	}

	if !m.isSigner(from) {
		return nil, fmt.Errorf("%s is not a signer", from.Hex())
	}

	switch method {
	case "submitTransaction":
		nonce := args[3].(*big.Int)
		if nonce.Cmp(big.NewInt(int64(len(m.Proposals)))) != 0 {
			return nil, fmt.Errorf("invalid nonce %s, expected %d", nonce, len(m.Proposals))
		}
		to := args[0].(common.Address)
		m.Proposals = append(m.Proposals, &Proposal{
			To:        to,
			Selector:  args[1].([4]byte),
			Calldata:  args[2].([]*big.Int),
			Confirmed: map[common.Address]bool{from: true},
		})
		return []*types.Log{
			event(m.abi, "TransactionSubmitted", from, new(big.Int).Set(nonce), to),
			event(m.abi, "TransactionConfirmed", from, new(big.Int).Set(nonce)),
		}, nil

	case "confirmTransaction":
		nonce := args[0].(*big.Int)
		p, err := m.proposal(nonce)
		if err != nil {
			return nil, err
		}
		if p.Executed {
			return nil, errors.New("transaction already executed")
		}
		if p.Confirmed[from] {
			return nil, errors.New("transaction already confirmed")
		}
		p.Confirmed[from] = true
		return []*types.Log{event(m.abi, "TransactionConfirmed", from, nonce)}, nil

	case "revokeConfirmation":
		nonce := args[0].(*big.Int)
		p, err := m.proposal(nonce)
		if err != nil {
			return nil, err
		}
		if p.Executed || !p.Confirmed[from] {
			return nil, errors.New("transaction not confirmed")
		}
		delete(p.Confirmed, from)
		return []*types.Log{event(m.abi, "ConfirmationRevoked", from, nonce)}, nil

	case "executeTransaction":
		nonce := args[0].(*big.Int)
		p, err := m.proposal(nonce)
		if err != nil {
			return nil, err
		}
		if p.Executed {
			return nil, errors.New("transaction already executed")
		}
		if uint64(len(p.Confirmed)) < m.Threshold {
			return nil, fmt.Errorf("transaction has %d confirmations, %d required", len(p.Confirmed), m.Threshold)
		}
		args, err := domain.BytesFromWords(p.Calldata)
		if err != nil {
			return nil, err
		}
		data := append(append([]byte{}, p.Selector[:]...), args...)
		inner, err := chain.dispatch(m.Address, p.To, data)
		if err != nil {
			return nil, fmt.Errorf("inner call failed: %w", err)
		}
		p.Executed = true
		return append(inner, event(m.abi, "TransactionExecuted", from, nonce)), nil
	}
	return nil, fmt.Errorf("%s is not a state-changing function", method)
}

func (m *Multisig) configure(method string, args []any) ([]*types.Log, error) {
	switch method {
	case "setThreshold":
		threshold := args[0].(*big.Int)
		if err := domain.ValidateThreshold(threshold.Uint64(), len(m.Signers)); err != nil || !threshold.IsUint64() {
			return nil, fmt.Errorf("invalid threshold %s", threshold)
		}
		m.Threshold = threshold.Uint64()
		return []*types.Log{event(m.abi, "ThresholdSet", threshold)}, nil
	default:
		signers := args[0].([]common.Address)
		if len(lo.Uniq(signers)) != len(signers) {
			return nil, errors.New("duplicate signers")
		}
		if err := domain.ValidateThreshold(m.Threshold, len(signers)); err != nil {
			return nil, fmt.Errorf("signer count below threshold: %w", err)
		}
		m.Signers = append([]common.Address(nil), signers...)
		return []*types.Log{event(m.abi, "SignersSet", signers)}, nil
	}
}
