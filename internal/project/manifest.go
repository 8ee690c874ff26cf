// Package project loads the alloy.toml manifest: per-package qualifier
// defaults for foreign code plus batch settings.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"alloy/internal/qualifiers"
)

// ManifestName is the file looked up from the start directory upward.
const ManifestName = "alloy.toml"

// Config is the raw TOML shape of the manifest.
type Config struct {
	Package  PackageConfig          `toml:"package"`
	Defaults map[string]DefaultRule `toml:"defaults"`
	Batch    BatchConfig            `toml:"batch"`
}

// PackageConfig names the project.
type PackageConfig struct {
	Name string `toml:"name"`
}

// DefaultRule is one per-foreign-package qualifier default.
type DefaultRule struct {
	Nullability string `toml:"nullability"`
	Mutability  string `toml:"mutability"`
}

// BatchConfig tunes the batch driver.
type BatchConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// Manifest is a loaded manifest plus its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks from startDir upward looking for alloy.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

// Load finds and parses the manifest governing startDir. The second
// return is false when no manifest exists.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// LoadConfig parses one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if _, err := cfg.QualifierDefaults(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Defaults maps foreign package prefixes to the qualifiers assumed for
// their classes when nothing explicit is supplied.
type Defaults map[string]qualifiers.Qualifiers

// QualifierDefaults validates and converts the raw default rules.
func (c Config) QualifierDefaults() (Defaults, error) {
	if len(c.Defaults) == 0 {
		return nil, nil
	}
	out := make(Defaults, len(c.Defaults))
	for prefix, rule := range c.Defaults {
		null, err := qualifiers.ParseNullability(rule.Nullability)
		if err != nil {
			return nil, fmt.Errorf("defaults[%q]: %w", prefix, err)
		}
		mut, err := qualifiers.ParseMutability(rule.Mutability)
		if err != nil {
			return nil, fmt.Errorf("defaults[%q]: %w", prefix, err)
		}
		out[prefix] = qualifiers.Qualifiers{Nullability: null, Mutability: mut}
	}
	return out, nil
}

// For returns the default qualifiers of a foreign class by longest
// matching package prefix.
func (d Defaults) For(foreignClass string) (qualifiers.Qualifiers, bool) {
	if len(d) == 0 {
		return qualifiers.Qualifiers{}, false
	}
	prefixes := make([]string, 0, len(d))
	for p := range d {
		prefixes = append(prefixes, p)
	}
	// Longest prefix first for specificity.
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	for _, p := range prefixes {
		if foreignClass == p || strings.HasPrefix(foreignClass, p+".") {
			return d[p], true
		}
	}
	return qualifiers.Qualifiers{}, false
}
