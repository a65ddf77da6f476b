package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/opctl/internal/domain/config"
)

// ConfigFileName is the optional project file declaring networks
const ConfigFileName = "opctl.toml"

// File is the structure of opctl.toml
type File struct {
	Defaults struct {
		Network      string `toml:"network"`
		ArtifactsDir string `toml:"artifacts_dir"`
		Reapproval   string `toml:"reapproval"`
	} `toml:"defaults"`
	Networks map[string]config.Network `toml:"networks"`
}

// LoadFile parses opctl.toml in projectRoot. A missing file yields an empty config.
func LoadFile(projectRoot string) (*File, string, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, "", nil
		}
		return nil, "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return &f, path, nil
}

// Network returns the named network with environment references expanded
func (f *File) Network(name string) (*config.Network, bool) {
	n, ok := f.Networks[name]
	if !ok {
		return nil, false
	}
	n.Name = name
	n.NodeURL = os.ExpandEnv(n.NodeURL)
	n.Multisig = os.ExpandEnv(n.Multisig)
	n.ExplorerURL = os.ExpandEnv(n.ExplorerURL)
	return &n, true
}

// NetworkNames lists the declared networks in alphabetical order
func (f *File) NetworkNames() []string {
	names := make([]string, 0, len(f.Networks))
	for name := range f.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
