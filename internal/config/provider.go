package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/opctl/internal/domain/config"
)

const (
	DefaultNodeURL      = "http://127.0.0.1:8545"
	DefaultArtifactsDir = "out"
)

// envBindings maps config keys to the unprefixed variables operators already use
var envBindings = map[string]string{
	"node_url":          "NODE_URL",
	"private_key":       "PRIVATE_KEY",
	"keystore_path":     "KEYSTORE_PATH",
	"keystore_password": "KEYSTORE_PASSWORD",
	"account":           "ACCOUNT",
	"multisig":          "MULTISIG",
	"artifacts_dir":     "ARTIFACTS_DIR",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		if projectRoot, err = FindProjectRoot(); err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	file, configPath, err := LoadFile(projectRoot)
	if err != nil {
		return nil, err
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = file.Defaults.Network
	}
	if _, err := LoadEnvFiles(projectRoot, networkName); err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:      projectRoot,
		ArtifactsDir:     firstNonEmpty(v.GetString("artifacts_dir"), file.Defaults.ArtifactsDir, DefaultArtifactsDir),
		PrivateKey:       v.GetString("private_key"),
		KeystorePath:     v.GetString("keystore_path"),
		KeystorePassword: v.GetString("keystore_password"),
		Account:          v.GetString("account"),
		Debug:            v.GetBool("debug"),
		NonInteractive:   v.GetBool("non_interactive"),
		JSON:             v.GetBool("json"),
		Timeout:          v.GetDuration("timeout"),
		InclusionTimeout: v.GetDuration("inclusion_timeout"),
		PollInterval:     v.GetDuration("poll_interval"),
		Reapproval:       config.ReapprovalPolicy(firstNonEmpty(v.GetString("reapproval"), file.Defaults.Reapproval, string(config.ReapprovalReject))),
		ConfigFile:       configPath,
	}
	if !cfg.Reapproval.Valid() {
		return nil, fmt.Errorf("invalid reapproval policy %q (want %q or %q)", cfg.Reapproval, config.ReapprovalReject, config.ReapprovalSubmit)
	}
	if cfg.ReadRetryDelays, err = parseDurations(v.Get("read_retry_delays")); err != nil {
		return nil, fmt.Errorf("invalid read_retry_delays: %w", err)
	}

	network, err := resolveNetwork(v, file, networkName)
	if err != nil {
		return nil, err
	}
	cfg.Network = network
	cfg.Multisig = firstNonEmpty(v.GetString("multisig"), network.Multisig)

	return cfg, nil
}

// resolveNetwork merges the declared network with explicit NODE_URL/MULTISIG
// settings. Explicit settings win.
func resolveNetwork(v *viper.Viper, file *File, name string) (*config.Network, error) {
	network := &config.Network{Name: name}
	if name != "" {
		declared, ok := file.Network(name)
		if !ok && !v.IsSet("node_url") {
			if known := file.NetworkNames(); len(known) > 0 {
				return nil, fmt.Errorf("network %q not defined in %s (available: %s)", name, ConfigFileName, strings.Join(known, ", "))
			}
			return nil, fmt.Errorf("network %q not defined: add it to %s or set NODE_URL", name, ConfigFileName)
		}
		if ok {
			network = declared
		}
	}
	if url := v.GetString("node_url"); v.IsSet("node_url") && url != "" {
		network.NodeURL = url
	}
	if network.NodeURL == "" {
		network.NodeURL = DefaultNodeURL
	}
	if network.Name == "" {
		network.Name = "local"
	}
	return network, nil
}

// FindProjectRoot walks up from the current directory looking for opctl.toml.
// Without one the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("OPCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	for key, env := range envBindings {
		// the prefixed variable keeps precedence over the bare one
		_ = v.BindEnv(key, "OPCTL_"+strings.ToUpper(key), env)
	}

	v.SetDefault("timeout", "5m")
	v.SetDefault("inclusion_timeout", "2m")
	v.SetDefault("poll_interval", "2s")
	v.SetDefault("read_retry_delays", "500ms,2s,8s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// parseDurations accepts "500ms,2s" as well as a list
func parseDurations(raw any) ([]time.Duration, error) {
	var parts []string
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		parts = strings.Split(val, ",")
	case []string:
		parts = val
	case []any:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	default:
		return nil, fmt.Errorf("unsupported value %v", raw)
	}

	var delays []time.Duration
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := time.ParseDuration(part)
		if err != nil {
			return nil, err
		}
		delays = append(delays, d)
	}
	return delays, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
