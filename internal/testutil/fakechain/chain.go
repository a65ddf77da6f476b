// Package fakechain is an in-memory chain that executes the Multisig and
// Example contract semantics through their real ABI bindings. It implements
// usecase.Provider for tests.
package fakechain

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// ChainID of every fake chain
const ChainID = 31337

// ErrReverted marks a failed contract execution
var ErrReverted = errors.New("execution reverted")

// contract is the behaviour of a deployed fake contract
type contract interface {
	call(method string, args []any) ([]any, error)
	transact(chain *Chain, from common.Address, method string, args []any) ([]*types.Log, error)
}

type deployed struct {
	abi  *abi.ABI
	impl contract
}

// SentTx records one submitted transaction
type SentTx struct {
	From common.Address
	Call domain.Call
	Hash common.Hash
	OK   bool
}

// Chain is an in-memory chain
type Chain struct {
	mu        sync.Mutex
	contracts map[common.Address]*deployed
	receipts  map[common.Hash]*types.Receipt
	nonces    map[common.Address]uint64
	block     uint64

	sent  []SentTx
	reads int

	// ReadErr, when set, fails every read
	ReadErr error
}

// New creates an empty chain
func New() *Chain {
	return &Chain{
		contracts: make(map[common.Address]*deployed),
		receipts:  make(map[common.Hash]*types.Receipt),
		nonces:    make(map[common.Address]uint64),
	}
}

var _ usecase.Provider = (*Chain)(nil)

// Sent returns every submitted transaction in order
func (c *Chain) Sent() []SentTx {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]SentTx(nil), c.sent...)
}

// Reads returns the number of read calls served
func (c *Chain) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// DeployMultisig installs a multisig contract and returns its address
func (c *Chain) DeployMultisig(signers []common.Address, threshold uint64) common.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	addr := c.nextAddress(common.HexToAddress("0xdead"), nil)
	c.install(addr, bindings.NewMultisig().ABI(), newMultisig(addr, signers, threshold))
	return addr
}

// DeployExample installs an example contract owned by owner
func (c *Chain) DeployExample(owner common.Address) common.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	addr := c.nextAddress(common.HexToAddress("0xdead"), nil)
	c.install(addr, bindings.NewExample().ABI(), &Example{Owner: owner})
	return addr
}

// Multisig returns the multisig deployed at addr
func (c *Chain) Multisig(addr common.Address) *Multisig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.contracts[addr]; ok {
		if m, ok := d.impl.(*Multisig); ok {
			return m
		}
	}
	return nil
}

// Example returns the example contract deployed at addr
func (c *Chain) Example(addr common.Address) *Example {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.contracts[addr]; ok {
		if e, ok := d.impl.(*Example); ok {
			return e
		}
	}
	return nil
}

func (c *Chain) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(ChainID), nil
}

func (c *Chain) Read(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	if c.ReadErr != nil {
		return nil, c.ReadErr
	}

	d, method, args, err := c.decode(to, data)
	if err != nil {
		return nil, err
	}
	out, err := d.impl.call(method.Name, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReverted, err)
	}
	return method.Outputs.Pack(out...)
}

func (c *Chain) SignAndSend(ctx context.Context, wallet usecase.Wallet, call domain.Call) (*models.TransactionResponse, error) {
	return c.send(wallet.Address(), call)
}

func (c *Chain) SendUnsigned(ctx context.Context, from common.Address, call domain.Call) (*models.TransactionResponse, error) {
	return c.send(from, call)
}

func (c *Chain) Deploy(ctx context.Context, wallet usecase.Wallet, req usecase.DeployRequest) (*models.TransactionResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := wallet.Address()
	addr := c.nextAddress(from, req.Salt)
	if _, exists := c.contracts[addr]; exists {
		return nil, fmt.Errorf("contract already deployed at %s", addr.Hex())
	}

	switch req.Artifact.Name {
	case bindings.MultisigMetaData.ID:
		if len(req.ConstructorArgs) != 2 {
			return nil, fmt.Errorf("multisig constructor takes 2 arguments, got %d", len(req.ConstructorArgs))
		}
		signers, ok := req.ConstructorArgs[0].([]common.Address)
		threshold, ok2 := req.ConstructorArgs[1].(*big.Int)
		if !ok || !ok2 {
			return nil, fmt.Errorf("invalid multisig constructor arguments")
		}
		c.install(addr, bindings.NewMultisig().ABI(), newMultisig(addr, signers, threshold.Uint64()))
	case bindings.ExampleMetaData.ID:
		c.install(addr, bindings.NewExample().ABI(), &Example{Owner: from})
	default:
		return nil, fmt.Errorf("fake chain cannot deploy %s", req.Artifact.Name)
	}

	hash := c.record(from, domain.Call{ContractAddress: addr.Hex(), Entrypoint: "constructor()"}, true, nil)
	c.receipts[hash].ContractAddress = addr
	return models.NewTransactionResponse(hash, &addr, c.waitReceipt), nil
}

func (c *Chain) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.receipts[hash]
	if !ok {
		return nil, fmt.Errorf("receipt %s: %w", hash.Hex(), domain.ErrNotFound)
	}
	return r, nil
}

func (c *Chain) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return c.TransactionReceipt(ctx, hash)
}

func (c *Chain) send(from common.Address, call domain.Call) (*models.TransactionResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	to, err := call.Target()
	if err != nil {
		return nil, err
	}
	data, err := call.Data()
	if err != nil {
		return nil, err
	}
	logs, execErr := c.dispatch(from, to, data)
	hash := c.record(from, call, execErr == nil, logs)
	return models.NewTransactionResponse(hash, nil, c.waitReceipt), nil
}

// dispatch executes a state change. Callers hold the lock.
func (c *Chain) dispatch(from, to common.Address, data []byte) ([]*types.Log, error) {
	d, method, args, err := c.decode(to, data)
	if err != nil {
		return nil, err
	}
	logs, err := d.impl.transact(c, from, method.Name, args)
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		if l.Address == (common.Address{}) {
			l.Address = to
		}
	}
	return logs, nil
}

func (c *Chain) decode(to common.Address, data []byte) (*deployed, *abi.Method, []any, error) {
	d, ok := c.contracts[to]
	if !ok {
		return nil, nil, nil, fmt.Errorf("no contract at %s", to.Hex())
	}
	if len(data) < 4 {
		return nil, nil, nil, fmt.Errorf("%w: missing selector", ErrReverted)
	}
	method, err := d.abi.MethodById(data[:4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrReverted, err)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrReverted, err)
	}
	return d, method, args, nil
}

func (c *Chain) record(from common.Address, call domain.Call, ok bool, logs []*types.Log) common.Hash {
	nonce := c.nonces[from]
	c.nonces[from] = nonce + 1
	c.block++

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], nonce)
	hash := crypto.Keccak256Hash(from.Bytes(), buf[:])

	status := types.ReceiptStatusSuccessful
	if !ok {
		status = types.ReceiptStatusFailed
		logs = nil
	}
	for i, l := range logs {
		l.TxHash = hash
		l.Index = uint(i)
		l.BlockNumber = c.block
	}
	c.receipts[hash] = &types.Receipt{
		Status:      status,
		TxHash:      hash,
		Logs:        logs,
		BlockNumber: new(big.Int).SetUint64(c.block),
	}
	c.sent = append(c.sent, SentTx{From: from, Call: call, Hash: hash, OK: ok})
	return hash
}

func (c *Chain) install(addr common.Address, parsed *abi.ABI, impl contract) {
	c.contracts[addr] = &deployed{abi: parsed, impl: impl}
}

func (c *Chain) nextAddress(from common.Address, salt *common.Hash) common.Address {
	if salt != nil {
		return crypto.CreateAddress2(from, *salt, crypto.Keccak256([]byte("fakechain")))
	}
	nonce := c.nonces[from]
	c.nonces[from] = nonce + 1
	return crypto.CreateAddress(from, nonce)
}

// event builds a log for the named event of parsed
func event(parsed *abi.ABI, name string, values ...any) *types.Log {
	ev := parsed.Events[name]
	topics := []common.Hash{ev.ID}
	var data []any
	for i, input := range ev.Inputs {
		if !input.Indexed {
			data = append(data, values[i])
			continue
		}
		switch v := values[i].(type) {
		case common.Address:
			topics = append(topics, common.BytesToHash(v.Bytes()))
		case *big.Int:
			topics = append(topics, common.BigToHash(v))
		default:
			panic(fmt.Sprintf("unsupported indexed value %T", v))
		}
	}
	packed, err := ev.Inputs.NonIndexed().Pack(data...)
	if err != nil {
		panic(err)
	}
	return &types.Log{Topics: topics, Data: packed}
}
