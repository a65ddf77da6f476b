package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// DeterministicDeployer is the deterministic deployment proxy used for salted deployments
var DeterministicDeployer = common.HexToAddress("0x4e59b44847b379578588920ca78fbf26c0b4956c")

// Options tunes how the provider talks to the node
type Options struct {
	InclusionTimeout time.Duration
	PollInterval     time.Duration
	ReadRetryDelays  []time.Duration
	// ChainID, when non-zero, must match the chain id reported by the node
	ChainID uint64
}

func (o Options) withDefaults() Options {
	if o.InclusionTimeout <= 0 {
		o.InclusionTimeout = 2 * time.Minute
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 2 * time.Second
	}
	return o
}

// Provider implements usecase.Provider over a JSON-RPC node
type Provider struct {
	backend Backend
	rpc     RPCCaller
	opts    Options
	log     *slog.Logger

	mu      sync.Mutex
	chainID *big.Int
}

// NewProvider creates a provider over an existing backend
func NewProvider(backend Backend, caller RPCCaller, opts Options, log *slog.Logger) *Provider {
	return &Provider{
		backend: backend,
		rpc:     caller,
		opts:    opts.withDefaults(),
		log:     log,
	}
}

// Dial connects to the node at url and verifies the chain id
func Dial(ctx context.Context, url string, opts Options, log *slog.Logger) (*Provider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", url, err)
	}
	p := NewProvider(ethclient.NewClient(client), client, opts, log.With("component", "provider", "url", url))
	if _, err := p.ChainID(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return p, nil
}

// ChainID returns the chain id of the node, fetched once
func (p *Provider) ChainID(ctx context.Context) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.chainID != nil {
		return new(big.Int).Set(p.chainID), nil
	}

	id, err := withRetry(ctx, p.opts.ReadRetryDelays, p.backend.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if p.opts.ChainID != 0 && id.Uint64() != p.opts.ChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", p.opts.ChainID, id.Uint64())
	}
	p.chainID = id
	return new(big.Int).Set(id), nil
}

func (p *Provider) Read(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return withRetry(ctx, p.opts.ReadRetryDelays, func(ctx context.Context) ([]byte, error) {
		return p.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	})
}

func (p *Provider) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return withRetry(ctx, p.opts.ReadRetryDelays, func(ctx context.Context) (*types.Receipt, error) {
		return p.backend.TransactionReceipt(ctx, hash)
	})
}

func (p *Provider) SignAndSend(ctx context.Context, wallet usecase.Wallet, call domain.Call) (*models.TransactionResponse, error) {
	to, err := call.Target()
	if err != nil {
		return nil, err
	}
	data, err := call.Data()
	if err != nil {
		return nil, err
	}
	hash, err := p.signAndSend(ctx, wallet, &to, data)
	if err != nil {
		return nil, err
	}
	return models.NewTransactionResponse(hash, nil, p.waitMined), nil
}

// SendUnsigned submits through eth_sendTransaction; the node must manage from
func (p *Provider) SendUnsigned(ctx context.Context, from common.Address, call domain.Call) (*models.TransactionResponse, error) {
	if p.rpc == nil {
		return nil, fmt.Errorf("unsigned transactions need a raw RPC connection")
	}
	to, err := call.Target()
	if err != nil {
		return nil, err
	}
	data, err := call.Data()
	if err != nil {
		return nil, err
	}

	var hash common.Hash
	args := sendTxArgs{From: from, To: &to, Data: data}
	if err := p.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return nil, fmt.Errorf("eth_sendTransaction failed: %w", err)
	}
	p.log.Debug("sent unsigned transaction", "hash", hash.Hex(), "from", from.Hex(), "to", to.Hex())
	return models.NewTransactionResponse(hash, nil, p.waitMined), nil
}

type sendTxArgs struct {
	From common.Address  `json:"from"`
	To   *common.Address `json:"to"`
	Data hexutil.Bytes   `json:"data"`
}

// Deploy creates a contract. With a salt the deployment goes through the
// deterministic deployment proxy and the address is known up front.
func (p *Provider) Deploy(ctx context.Context, wallet usecase.Wallet, req usecase.DeployRequest) (*models.TransactionResponse, error) {
	if req.Artifact == nil || !req.Artifact.HasBytecode() {
		return nil, fmt.Errorf("artifact has no bytecode to deploy")
	}
	ctorArgs, err := req.Artifact.ABI.Pack("", req.ConstructorArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor of %s: %w", req.Artifact.Name, err)
	}
	initCode := append(append([]byte{}, req.Artifact.Bytecode...), ctorArgs...)

	if req.Salt == nil {
		hash, err := p.signAndSend(ctx, wallet, nil, initCode)
		if err != nil {
			return nil, err
		}
		return models.NewTransactionResponse(hash, nil, p.waitMined), nil
	}

	addr := crypto.CreateAddress2(DeterministicDeployer, *req.Salt, crypto.Keccak256(initCode))
	code, err := withRetry(ctx, p.opts.ReadRetryDelays, func(ctx context.Context) ([]byte, error) {
		return p.backend.CodeAt(ctx, addr, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check code at %s: %w", addr.Hex(), err)
	}
	if len(code) > 0 {
		return nil, fmt.Errorf("contract already deployed at %s: %w", addr.Hex(), domain.ErrAlreadyExists)
	}

	deployer := DeterministicDeployer
	hash, err := p.signAndSend(ctx, wallet, &deployer, append(req.Salt.Bytes(), initCode...))
	if err != nil {
		return nil, err
	}
	return models.NewTransactionResponse(hash, &addr, p.waitMined), nil
}

// signAndSend builds an EIP-1559 transaction, signs it and submits it.
// Submissions are never retried.
func (p *Provider) signAndSend(ctx context.Context, wallet usecase.Wallet, to *common.Address, data []byte) (common.Hash, error) {
	chainID, err := p.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	from := wallet.Address()

	nonce, err := p.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}
	tip, feeCap, err := p.suggestFees(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	gas, err := p.backend.EstimateGas(ctx, ethereum.CallMsg{From: from, To: to, Data: data})
	if err != nil {
		return common.Hash{}, fmt.Errorf("gas estimation failed: %w", err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        to,
		Data:      data,
	})
	signed, err := wallet.SignTx(chainID, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := p.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	p.log.Debug("sent transaction", "hash", signed.Hash().Hex(), "from", from.Hex(), "nonce", nonce, "gas", gas)
	return signed.Hash(), nil
}

// suggestFees returns the tip and a fee cap of twice the base fee plus the tip
func (p *Provider) suggestFees(ctx context.Context) (*big.Int, *big.Int, error) {
	tip, err := p.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to suggest gas tip: %w", err)
	}
	head, err := p.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}
	return tip, feeCap, nil
}

var _ usecase.Provider = (*Provider)(nil)
