package runner

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/maisem/gridsearch"
)

// Config holds the knobs that puzzles would otherwise hard-code.
type Config struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	// Workers bounds parallel searches. Zero means GOMAXPROCS.
	Workers int `hcl:"workers,optional"`

	Crucibles []*CrucibleConfig `hcl:"crucible,block"`
	Garden    *GardenConfig     `hcl:"garden,block"`
	Galaxies  *GalaxiesConfig   `hcl:"galaxies,block"`
}

// CrucibleConfig names a pair of run-length bounds.
type CrucibleConfig struct {
	Name   string `hcl:"name,label"`
	MinRun int    `hcl:"min_run"`
	MaxRun int    `hcl:"max_run"`
}

type GardenConfig struct {
	Steps       int `hcl:"steps"`
	SampleSteps int `hcl:"sample_steps"`
}

type GalaxiesConfig struct {
	Expansion            int `hcl:"expansion"`
	LargeExpansion       int `hcl:"large_expansion"`
	SampleLargeExpansion int `hcl:"sample_large_expansion"`
}

var errConfig = errors.New("runner: invalid config")

// ParseConfig decodes an HCL config. filename is only used in
// diagnostics.
func ParseConfig(src []byte, filename string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	var cfg Config
	if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// LoadConfig reads and decodes the HCL config at path.
func LoadConfig(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(src, path)
}

func (c *Config) validate() error {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be text or json, got %q", errConfig, c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", errConfig, c.Workers)
	}
	seen := make(map[string]bool)
	for _, cc := range c.Crucibles {
		if seen[cc.Name] {
			return fmt.Errorf("%w: duplicate crucible %q", errConfig, cc.Name)
		}
		seen[cc.Name] = true
		if err := cc.Limits().Validate(); err != nil {
			return fmt.Errorf("crucible %q: %w", cc.Name, err)
		}
	}
	if g := c.Garden; g != nil && (g.Steps < 0 || g.SampleSteps < 0) {
		return fmt.Errorf("%w: garden steps must be >= 0", errConfig)
	}
	if g := c.Galaxies; g != nil && (g.Expansion < 1 || g.LargeExpansion < 1 || g.SampleLargeExpansion < 1) {
		return fmt.Errorf("%w: galaxy expansion factors must be >= 1", errConfig)
	}
	return nil
}

// Limits converts the block to run limits.
func (cc *CrucibleConfig) Limits() gridsearch.RunLimits {
	return gridsearch.RunLimits{Min: cc.MinRun, Max: cc.MaxRun}
}

// Crucible returns the run limits configured under name.
func (c *Config) Crucible(name string) (gridsearch.RunLimits, error) {
	for _, cc := range c.Crucibles {
		if cc.Name == name {
			return cc.Limits(), nil
		}
	}
	return gridsearch.RunLimits{}, fmt.Errorf("%w: no crucible %q", errConfig, name)
}

// GardenSteps returns the step budget for the sample or the real input.
func (c *Config) GardenSteps(sample bool) (int, error) {
	if c.Garden == nil {
		return 0, fmt.Errorf("%w: no garden block", errConfig)
	}
	if sample {
		return c.Garden.SampleSteps, nil
	}
	return c.Garden.Steps, nil
}

// GalaxyExpansion returns the small and large expansion factors. The
// sample uses its own large factor.
func (c *Config) GalaxyExpansion(sample bool) (small, large gridsearch.Cost, err error) {
	g := c.Galaxies
	if g == nil {
		return 0, 0, fmt.Errorf("%w: no galaxies block", errConfig)
	}
	large = gridsearch.Cost(g.LargeExpansion)
	if sample {
		large = gridsearch.Cost(g.SampleLargeExpansion)
	}
	return gridsearch.Cost(g.Expansion), large, nil
}
