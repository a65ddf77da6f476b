package wallet

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/opctl/internal/domain/config"
)

const (
	devKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestFromPrivateKey(t *testing.T) {
	for _, key := range []string{devKey, devKey[2:], " " + devKey + "\n"} {
		w, err := FromPrivateKey(key)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(devAddress), w.Address())
	}

	_, err := FromPrivateKey("0x1234")
	assert.Error(t, err)
}

func TestPublicKey(t *testing.T) {
	w, err := FromPrivateKey(devKey)
	require.NoError(t, err)

	pub := w.PublicKey()
	assert.Len(t, pub, 2+65*2)
	assert.Equal(t, "0x04", pub[:4])
}

func TestSignTx(t *testing.T) {
	w, err := FromPrivateKey(devKey)
	require.NoError(t, err)

	to := common.HexToAddress("0x1")
	chainID := big.NewInt(31337)
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     3,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		To:        &to,
	})

	signed, err := w.SignTx(chainID, tx)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), sender)
}

func TestFromKeystore(t *testing.T) {
	pk, err := crypto.HexToECDSA(devKey[2:])
	require.NoError(t, err)
	key := &keystore.Key{Id: uuid.New(), Address: crypto.PubkeyToAddress(pk.PublicKey), PrivateKey: pk}
	data, err := keystore.EncryptKey(key, "secret", keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	w, err := FromKeystore(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(devAddress), w.Address())

	_, err = FromKeystore(path, "wrong")
	assert.Error(t, err)

	_, err = FromKeystore(filepath.Join(t.TempDir(), "missing.json"), "secret")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	w, err := New(&config.RuntimeConfig{PrivateKey: devKey, KeystorePath: "/does/not/exist"})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(devAddress), w.Address())

	_, err = New(&config.RuntimeConfig{})
	assert.ErrorContains(t, err, "no wallet configured")
}
