// Package config is the atomspace's bootstrap configuration (SPEC_FULL's
// ambient stack): which substrate backend to open, any additional types
// to register into the type hierarchy before the core runs, and the
// unifier's occurs-check toggle.
//
// Config file locations (priority order):
//  1. $ATOMSPACE_CONFIG
//  2. ./atomspace.yaml
//  3. ~/.config/atomspace/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of an atomspace deployment's bootstrap
// settings.
type Config struct {
	Version   int             `yaml:"version"`
	Substrate SubstrateConfig `yaml:"substrate"`
	Types     []TypeDecl      `yaml:"types"`
	Unify     UnifyConfig     `yaml:"unify"`
}

// SubstrateConfig selects and configures the atom.Substrate backend.
type SubstrateConfig struct {
	// Backend is "memory" (atom.MemStore, the default) or "sqlite"
	// (sqlitestore.Store).
	Backend string `yaml:"backend"`
	// Path is the sqlite database file; ignored for the memory backend.
	// Empty means sqlitestore.DefaultPath().
	Path string `yaml:"path"`
}

// TypeDecl registers one additional type into the hierarchy beyond the
// builtins atype.NewRegistry already bootstraps (§4.B).
type TypeDecl struct {
	Name    string   `yaml:"name"`
	Parents []string `yaml:"parents"`
}

// UnifyConfig tunes the unifier's opt-in behavior (§9).
type UnifyConfig struct {
	OccursCheck bool `yaml:"occurs_check"`
	// MaxPartitions bounds solution-set growth mid-recursion; 0 means
	// unbounded (§9's "guard against unbounded blowup").
	MaxPartitions int `yaml:"max_partitions"`
}

// DefaultConfig returns the in-memory substrate with no extra types and
// the occurs check off, matching the source's default semantics (§9).
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		Substrate: SubstrateConfig{Backend: "memory"},
	}
}

// FindConfigPath resolves the config file location by priority, or ""
// if none exists.
func FindConfigPath() string {
	if p := os.Getenv("ATOMSPACE_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("atomspace.yaml"); err == nil {
		return "atomspace.yaml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "atomspace", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none
// found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, path, nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Substrate.Backend == "" {
		c.Substrate.Backend = "memory"
	}
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
