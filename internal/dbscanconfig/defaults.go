// Package dbscanconfig loads the tunable defaults for the clustering
// engine from a JSON file, following the pointer-field "omit means
// default" convention so partial config files are safe.
package dbscanconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the canonical location of the clustering
// engine's default parameters.
const DefaultConfigPath = "config/dbscan.defaults.json"

// DefaultsConfig holds the clustering parameters, plus the
// visualization defaults, that a CLI or service falls back to when a
// run doesn't override them explicitly.
type DefaultsConfig struct {
	Epsilon       *float64 `json:"epsilon,omitempty"`
	Rho           *float64 `json:"rho,omitempty"`
	MinPts        *int     `json:"min_pts,omitempty"`
	PaletteSize   *int     `json:"palette_size,omitempty"`
	BitmapPadding *int     `json:"bitmap_padding,omitempty"`
}

// EmptyDefaultsConfig returns a DefaultsConfig with all fields nil.
func EmptyDefaultsConfig() *DefaultsConfig {
	return &DefaultsConfig{}
}

// Load reads a DefaultsConfig from a JSON file. The path must have a
// .json extension and the file must be under 1MB.
func Load(path string) (*DefaultsConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyDefaultsConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaults loads DefaultConfigPath, searching the current
// directory and a handful of parent directories so it works whether
// the caller runs from the repository root or from a nested package's
// test directory. Panics if no candidate loads; intended for test
// setup and CLI startup, not for library callers.
func MustLoadDefaults() *DefaultsConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,
		"../../../" + DefaultConfigPath,
		"../../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run from the repository root")
}

// Validate checks that set fields fall within the engine's parameter
// contract.
func (c *DefaultsConfig) Validate() error {
	if c.Epsilon != nil && *c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", *c.Epsilon)
	}
	if c.Rho != nil && (*c.Rho <= 0 || *c.Rho > 1) {
		return fmt.Errorf("rho must be in (0, 1], got %g", *c.Rho)
	}
	if c.MinPts != nil && *c.MinPts < 1 {
		return fmt.Errorf("min_pts must be at least 1, got %d", *c.MinPts)
	}
	if c.PaletteSize != nil && *c.PaletteSize < 1 {
		return fmt.Errorf("palette_size must be at least 1, got %d", *c.PaletteSize)
	}
	if c.BitmapPadding != nil && *c.BitmapPadding < 0 {
		return fmt.Errorf("bitmap_padding must be non-negative, got %d", *c.BitmapPadding)
	}
	return nil
}

// GetEpsilon returns the configured epsilon or a conservative default.
func (c *DefaultsConfig) GetEpsilon() float64 {
	if c.Epsilon == nil {
		return 0.5
	}
	return *c.Epsilon
}

// GetRho returns the configured rho or a conservative default.
func (c *DefaultsConfig) GetRho() float64 {
	if c.Rho == nil {
		return 0.1
	}
	return *c.Rho
}

// GetMinPts returns the configured minPts or a conservative default.
func (c *DefaultsConfig) GetMinPts() int {
	if c.MinPts == nil {
		return 5
	}
	return *c.MinPts
}

// GetPaletteSize returns the configured number of distinct non-noise
// bitmap colors, or a default of 64.
func (c *DefaultsConfig) GetPaletteSize() int {
	if c.PaletteSize == nil {
		return 64
	}
	return *c.PaletteSize
}

// GetBitmapPadding returns the configured bitmap canvas padding in
// pixels, or a default of 10.
func (c *DefaultsConfig) GetBitmapPadding() int {
	if c.BitmapPadding == nil {
		return 10
	}
	return *c.BitmapPadding
}
