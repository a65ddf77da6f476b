package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles returns the env files consulted for network, most specific first
func EnvFiles(projectRoot, network string) []string {
	var files []string
	if network != "" {
		files = append(files, filepath.Join(projectRoot, "networks", ".env."+network))
	}
	return append(files,
		filepath.Join(projectRoot, "networks", ".env"),
		filepath.Join(projectRoot, ".env"),
	)
}

// LoadEnvFiles loads the env files that exist. Variables already set in the
// process environment are never overridden, so earlier files win.
func LoadEnvFiles(projectRoot, network string) ([]string, error) {
	var loaded []string
	for _, file := range EnvFiles(projectRoot, network) {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}
