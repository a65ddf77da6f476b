package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/bindings"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// ArtifactLoader loads Foundry artifacts from the artifacts directory and
// falls back to the ABIs embedded in the bindings package.
type ArtifactLoader struct {
	dir string

	mu    sync.Mutex
	cache map[string]*models.Artifact
}

// NewArtifactLoader creates a loader reading from cfg.ArtifactsDir
func NewArtifactLoader(cfg *config.RuntimeConfig) *ArtifactLoader {
	dir := cfg.ArtifactsDir
	if dir != "" && !filepath.IsAbs(dir) && cfg.ProjectRoot != "" {
		dir = filepath.Join(cfg.ProjectRoot, dir)
	}
	return &ArtifactLoader{dir: dir, cache: make(map[string]*models.Artifact)}
}

// foundryArtifact is the subset of a forge build output we need
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
}

// Load resolves name to an artifact. Artifacts found on disk carry bytecode;
// embedded fallbacks are ABI-only.
func (l *ArtifactLoader) Load(name string) (*models.Artifact, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if artifact, ok := l.cache[name]; ok {
		return artifact, nil
	}

	artifact, err := l.fromDisk(name)
	if err != nil {
		return nil, err
	}
	if artifact == nil {
		artifact, err = fromBindings(name)
		if err != nil {
			return nil, err
		}
	}
	l.cache[name] = artifact
	return artifact, nil
}

func (l *ArtifactLoader) fromDisk(name string) (*models.Artifact, error) {
	if l.dir == "" {
		return nil, nil
	}
	path, err := l.find(name)
	if err != nil || path == "" {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	var raw foundryArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid ABI in %s: %w", path, err)
	}

	artifact := &models.Artifact{Name: name, Path: path, ABI: &parsed}
	if obj := raw.Bytecode.Object; obj != "" && obj != "0x" {
		if !strings.HasPrefix(obj, "0x") {
			obj = "0x" + obj
		}
		code, err := hexutil.Decode(obj)
		if err != nil {
			return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
		}
		artifact.Bytecode = code
	}
	return artifact, nil
}

// find looks for <dir>/<name>.sol/<name>.json first, then anywhere below dir
func (l *ArtifactLoader) find(name string) (string, error) {
	direct := filepath.Join(l.dir, name+".sol", name+".json")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	var found string
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == name+".json" {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to scan artifacts in %s: %w", l.dir, err)
	}
	return found, nil
}

func fromBindings(name string) (*models.Artifact, error) {
	md, ok := bindings.MetaDataFor(name)
	if !ok {
		return nil, fmt.Errorf("contract %s: %w", name, domain.ErrNotFound)
	}
	parsed, err := md.ParseABI()
	if err != nil {
		return nil, fmt.Errorf("invalid embedded ABI for %s: %w", name, err)
	}
	return &models.Artifact{Name: name, ABI: parsed}, nil
}

var _ usecase.ContractLoader = (*ArtifactLoader)(nil)
