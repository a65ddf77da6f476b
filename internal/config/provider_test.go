package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/opctl/internal/domain/config"
)

const opctlTOML = `
[defaults]
artifacts_dir = "build/artifacts"

[networks.sepolia]
chain_id = 11155111
node_url = "${SEPOLIA_RPC_URL}"
multisig = "0x00000000000000000000000000000000000000aa"
explorer_url = "https://sepolia.etherscan.io"

[networks.anvil]
chain_id = 31337
node_url = "http://127.0.0.1:8545"
`

// unsetEnv clears keys for the duration of the test and restores them afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func clearEnv(t *testing.T) {
	unsetEnv(t,
		"NODE_URL", "PRIVATE_KEY", "KEYSTORE_PATH", "KEYSTORE_PASSWORD", "ACCOUNT", "MULTISIG", "ARTIFACTS_DIR",
		"OPCTL_NODE_URL", "OPCTL_MULTISIG", "OPCTL_NETWORK", "OPCTL_REAPPROVAL", "OPCTL_READ_RETRY_DELAYS",
		"SEPOLIA_RPC_URL",
	)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestProviderDefaults(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	cfg, err := Provider(SetupViper(root, nil))
	require.NoError(t, err)

	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, DefaultArtifactsDir, cfg.ArtifactsDir)
	assert.Equal(t, "local", cfg.Network.Name)
	assert.Equal(t, DefaultNodeURL, cfg.Network.NodeURL)
	assert.Equal(t, config.ReapprovalReject, cfg.Reapproval)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.InclusionTimeout)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 2 * time.Second, 8 * time.Second}, cfg.ReadRetryDelays)
	assert.Empty(t, cfg.ConfigFile)
}

func TestProviderNetworkFromFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), opctlTOML)
	writeFile(t, filepath.Join(root, "networks", ".env.sepolia"), "SEPOLIA_RPC_URL=https://rpc.sepolia.example\nPRIVATE_KEY=0xfromnetwork\n")
	writeFile(t, filepath.Join(root, ".env"), "PRIVATE_KEY=0xfromroot\nACCOUNT=0x00000000000000000000000000000000000000bb\n")

	v := SetupViper(root, nil)
	v.Set("network", "sepolia")
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ConfigFileName), cfg.ConfigFile)
	assert.Equal(t, "build/artifacts", cfg.ArtifactsDir)
	assert.Equal(t, "sepolia", cfg.Network.Name)
	assert.Equal(t, uint64(11155111), cfg.Network.ChainID)
	assert.Equal(t, "https://rpc.sepolia.example", cfg.Network.NodeURL)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", cfg.Multisig)
	// the network specific file is loaded first and wins
	assert.Equal(t, "0xfromnetwork", cfg.PrivateKey)
	assert.Equal(t, "0x00000000000000000000000000000000000000bb", cfg.Account)
}

func TestProviderExplicitSettingsWin(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), opctlTOML)
	t.Setenv("NODE_URL", "http://10.0.0.1:8545")
	t.Setenv("MULTISIG", "0x00000000000000000000000000000000000000cc")
	t.Setenv("OPCTL_REAPPROVAL", "submit")
	t.Setenv("OPCTL_READ_RETRY_DELAYS", "1s, 3s")

	v := SetupViper(root, nil)
	v.Set("network", "anvil")
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.1:8545", cfg.Network.NodeURL)
	assert.Equal(t, uint64(31337), cfg.Network.ChainID)
	assert.Equal(t, "0x00000000000000000000000000000000000000cc", cfg.Multisig)
	assert.Equal(t, config.ReapprovalSubmit, cfg.Reapproval)
	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second}, cfg.ReadRetryDelays)
}

func TestProviderErrors(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), opctlTOML)

	t.Run("unknown network", func(t *testing.T) {
		v := SetupViper(root, nil)
		v.Set("network", "mainnet")
		_, err := Provider(v)
		assert.ErrorContains(t, err, "available: anvil, sepolia")
	})

	t.Run("unknown network with explicit node url", func(t *testing.T) {
		t.Setenv("NODE_URL", "http://10.0.0.2:8545")
		v := SetupViper(root, nil)
		v.Set("network", "mainnet")
		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "mainnet", cfg.Network.Name)
		assert.Equal(t, "http://10.0.0.2:8545", cfg.Network.NodeURL)
	})

	t.Run("invalid reapproval policy", func(t *testing.T) {
		v := SetupViper(root, nil)
		v.Set("reapproval", "sometimes")
		_, err := Provider(v)
		assert.ErrorContains(t, err, "invalid reapproval policy")
	})

	t.Run("invalid retry delays", func(t *testing.T) {
		v := SetupViper(root, nil)
		v.Set("read_retry_delays", "soon")
		_, err := Provider(v)
		assert.ErrorContains(t, err, "read_retry_delays")
	})

	t.Run("malformed config file", func(t *testing.T) {
		broken := t.TempDir()
		writeFile(t, filepath.Join(broken, ConfigFileName), "[networks\n")
		_, err := Provider(SetupViper(broken, nil))
		assert.ErrorContains(t, err, ConfigFileName)
	})
}

func TestSetupViperBindsFlags(t *testing.T) {
	clearEnv(t)
	cmd := &cobra.Command{Use: "opctl"}
	cmd.Flags().Bool("non-interactive", false, "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().String("network", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--non-interactive", "--json"}))

	cfg, err := Provider(SetupViper(t.TempDir(), cmd))
	require.NoError(t, err)
	assert.True(t, cfg.NonInteractive)
	assert.True(t, cfg.JSON)
	assert.False(t, cfg.Debug)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	t.Chdir(nested)
	found, err := FindProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, evalSymlinks(t, root), evalSymlinks(t, found))

	elsewhere := t.TempDir()
	t.Chdir(elsewhere)
	found, err = FindProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, evalSymlinks(t, elsewhere), evalSymlinks(t, found))
}

func evalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestEnvFiles(t *testing.T) {
	assert.Equal(t, []string{
		filepath.Join("/p", "networks", ".env.sepolia"),
		filepath.Join("/p", "networks", ".env"),
		filepath.Join("/p", ".env"),
	}, EnvFiles("/p", "sepolia"))
	assert.Len(t, EnvFiles("/p", ""), 2)
}
