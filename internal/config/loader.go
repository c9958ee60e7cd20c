package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Paths helper for default/profile files.
type Paths struct {
	BaseDir string // base directory, e.g., ./config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) ProfilePath(profile string) string {
	return filepath.Join(p.BaseDir, "profiles", profile+".yaml")
}

// Loader reads YAML configs and merges default → profile.
type Loader struct {
	paths  Paths
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name, "" for default only
}

// NewLoader creates a config loader with the given base directory.
// A nil logger is replaced with a no-op one.
func NewLoader(baseDir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		paths:  Paths{BaseDir: baseDir},
		logger: logger,
		cache:  make(map[string]RawConfig),
	}
}

// LoadMerged loads default.yaml and overlays the profile file (optional).
// It returns the merged RawConfig (without validation).
func (l *Loader) LoadMerged(profile string) (RawConfig, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[profile]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if profile != "" {
		profCfg, err := readYAML(l.paths.ProfilePath(profile))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read profile %s: %w", profile, err)
		}
		merged = mergeRaw(defCfg, profCfg)
	}

	l.mu.Lock()
	l.cache[profile] = merged
	l.mu.Unlock()

	l.logger.Debug("config loaded",
		zap.String("dir", l.paths.BaseDir),
		zap.String("profile", profile),
		zap.String("version", merged.Version),
	)
	return merged, nil
}

// Invalidate clears loader's cache.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays 'b' on 'a': any field set in 'b' wins.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// generator
	switch {
	case out.Generator == nil && b.Generator != nil:
		g := *b.Generator
		out.Generator = &g
	case out.Generator != nil && b.Generator != nil:
		g := *out.Generator
		if b.Generator.Seed != nil {
			g.Seed = b.Generator.Seed
		}
		if b.Generator.A != nil {
			g.A = b.Generator.A
		}
		if b.Generator.C != nil {
			g.C = b.Generator.C
		}
		if b.Generator.M != nil {
			g.M = b.Generator.M
		}
		out.Generator = &g
	}

	// die
	if b.Die.Sides != nil {
		out.Die.Sides = b.Die.Sides
	}

	// demo
	switch {
	case out.Demo == nil && b.Demo != nil:
		d := *b.Demo
		out.Demo = &d
	case out.Demo != nil && b.Demo != nil:
		d := *out.Demo
		if b.Demo.Rolls != nil {
			d.Rolls = b.Demo.Rolls
		}
		if b.Demo.Trials != nil {
			d.Trials = b.Demo.Trials
		}
		out.Demo = &d
	}

	// log
	if b.Log != nil && b.Log.Level != "" {
		out.Log = &LogConfig{Level: b.Log.Level}
	}

	return out
}
