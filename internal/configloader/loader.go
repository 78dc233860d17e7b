// Package configloader resolves the effective configuration: defaults,
// project config file, then environment variables, in increasing precedence.
// CLI flags are applied on top by the cli package.
package configloader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdtidy/pkg/config"
)

// configFileNames are the project config file names, tried in order.
var configFileNames = []string{".mdtidy.yaml", ".mdtidy.yml"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory project config discovery starts from.
	// Defaults to the process working directory.
	WorkingDir string

	// ExplicitPath is a config file given via --config. When set, discovery
	// is skipped and a missing file is an error.
	ExplicitPath string
}

// LoadResult is the resolved configuration plus provenance.
type LoadResult struct {
	Config *config.Config

	// LoadedFrom is the config file that was applied, if any.
	LoadedFrom string
}

// Load resolves the final configuration.
func Load(opts LoadOptions) (*LoadResult, error) {
	cfg := config.Default()
	result := &LoadResult{Config: cfg}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	applyEnv(cfg)
	return result, nil
}

func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return opts.ExplicitPath, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	// Walk up towards the filesystem root.
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func applyFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables. Secrets are the usual case: they
// belong in the environment, not in a config file checked into a vault.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv("MDTIDY_SECRET_ID"); v != "" {
		cfg.Upload.SecretID = v
	}
	if v := os.Getenv("MDTIDY_SECRET_KEY"); v != "" {
		cfg.Upload.SecretKey = v
	}
}
