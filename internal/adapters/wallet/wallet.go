package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// LocalWallet signs transactions with an in-memory secp256k1 key
type LocalWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// FromPrivateKey parses a hex encoded private key, with or without 0x prefix
func FromPrivateKey(hexKey string) (*LocalWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return fromKey(key), nil
}

// FromKeystore decrypts a go-ethereum keystore file
func FromKeystore(path, password string) (*LocalWallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}
	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore %s: %w", path, err)
	}
	return fromKey(key.PrivateKey), nil
}

// New picks the configured key source. PRIVATE_KEY wins over a keystore.
func New(cfg *config.RuntimeConfig) (*LocalWallet, error) {
	switch {
	case cfg.PrivateKey != "":
		return FromPrivateKey(cfg.PrivateKey)
	case cfg.KeystorePath != "":
		return FromKeystore(cfg.KeystorePath, cfg.KeystorePassword)
	default:
		return nil, fmt.Errorf("no wallet configured: set PRIVATE_KEY or KEYSTORE_PATH, or pass --noWallet")
	}
}

func fromKey(key *ecdsa.PrivateKey) *LocalWallet {
	return &LocalWallet{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}
}

func (w *LocalWallet) Address() common.Address {
	return w.address
}

// PublicKey returns the uncompressed public key in hex
func (w *LocalWallet) PublicKey() string {
	return hexutil.Encode(crypto.FromECDSAPub(&w.key.PublicKey))
}

func (w *LocalWallet) SignTx(chainID *big.Int, tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
}

var _ usecase.Wallet = (*LocalWallet)(nil)
