package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// typefuzz.toml supplies per-project campaign defaults; flags given on the
// command line always win over manifest values.

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Campaign campaignConfig `toml:"campaign"`
	Solver   solverConfig   `toml:"solver"`
}

type campaignConfig struct {
	Tests       int   `toml:"tests"`
	Constraints int   `toml:"constraints"`
	MaxDepth    int   `toml:"max_depth"`
	BoolDepth   int   `toml:"bool_depth"`
	IntMin      int64 `toml:"int_min"`
	IntMax      int64 `toml:"int_max"`
	Seed        int64 `toml:"seed"`
}

type solverConfig struct {
	Kind string   `toml:"kind"`
	Bin  string   `toml:"bin"`
	Args []string `toml:"args"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "typefuzz.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
