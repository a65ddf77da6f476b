package fakechain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// Wallet is a deterministic test signer
type Wallet struct {
	key *ecdsa.PrivateKey
}

var _ usecase.Wallet = (*Wallet)(nil)

// NewWallet derives a key from seed
func NewWallet(seed string) *Wallet {
	key, err := crypto.ToECDSA(crypto.Keccak256([]byte(seed)))
	if err != nil {
		panic(err)
	}
	return &Wallet{key: key}
}

func (w *Wallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.key.PublicKey)
}

func (w *Wallet) PublicKey() string {
	return hexutil.Encode(crypto.FromECDSAPub(&w.key.PublicKey))
}

func (w *Wallet) SignTx(chainID *big.Int, tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
}

// Loader serves artifacts from the embedded bindings
type Loader struct{}

func (Loader) Load(name string) (*models.Artifact, error) {
	md, ok := bindings.MetaDataFor(name)
	if !ok {
		return nil, fmt.Errorf("contract %s: %w", name, domain.ErrNotFound)
	}
	parsed, err := md.ParseABI()
	if err != nil {
		return nil, err
	}
	return &models.Artifact{Name: name, ABI: parsed, Bytecode: []byte{0x60, 0x80}}, nil
}

// Options tweak the dependencies returned by Dependencies
type Options struct {
	Account  string
	Multisig string
	Progress usecase.ProgressSink
	Prompt   usecase.Prompter
}

// Dependencies wires a command set to the chain. wallet may be nil for
// read-only or node-account commands.
func (c *Chain) Dependencies(wallet usecase.Wallet, opts Options) usecase.Dependencies {
	return usecase.Dependencies{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Progress: opts.Progress,
		Prompt:   opts.Prompt,
		Loader:   Loader{},
		MakeEnv: func(usecase.Flags) (usecase.Env, error) {
			return usecase.Env{
				Network:  "fake",
				NodeURL:  "memory://fakechain",
				ChainID:  ChainID,
				Account:  opts.Account,
				Multisig: opts.Multisig,
			}, nil
		},
		MakeProvider: func(context.Context, usecase.Env) (usecase.Provider, error) {
			return c, nil
		},
		MakeWallet: func(usecase.Env) (usecase.Wallet, error) {
			if wallet == nil {
				return nil, fmt.Errorf("no wallet configured")
			}
			return wallet, nil
		},
	}
}
