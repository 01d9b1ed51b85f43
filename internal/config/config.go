package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"rig/pkg/engine"
)

// Backoff strategy names accepted in [general].
const (
	BackoffLinear = "linear"
	BackoffFixed  = "fixed"
)

// Config represents the complete rig manifest.
type Config struct {
	General  GeneralConfig     `toml:"general"`
	Output   OutputConfig      `toml:"output"`
	Packages PackagesConfig    `toml:"packages"`
	Aliases  map[string]string `toml:"aliases"`
}

// GeneralConfig contains engine and behavior settings.
type GeneralConfig struct {
	// MaxAttempts is the number of install attempts per package.
	MaxAttempts int `toml:"max_attempts"`

	// Backoff selects the delay strategy between attempts: "linear"
	// (base, 2*base, ...) or "fixed".
	Backoff string `toml:"backoff"`

	// BackoffBaseSecs is the base delay in seconds.
	BackoffBaseSecs int `toml:"backoff_base_secs"`

	// Concurrency bounds how many packages install at once.
	Concurrency int `toml:"concurrency"`

	// AutoConfirm skips confirmation prompts when true (like -y).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// PackagesConfig lists the install targets per ecosystem. Go tools
// map a binary name to its module path; everything else is a plain
// name list.
type PackagesConfig struct {
	Brew   []string          `toml:"brew"`
	Cask   []string          `toml:"cask"`
	Npm    []string          `toml:"npm"`
	Pip    []string          `toml:"pip"`
	Gem    []string          `toml:"gem"`
	Go     map[string]string `toml:"go"`
	VSCode []string          `toml:"vscode"`
}

// EcosystemBatch pairs an ecosystem name with its resolved batch.
type EcosystemBatch struct {
	Ecosystem string
	Batch     engine.Batch
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			MaxAttempts:     engine.DefaultMaxAttempts,
			Backoff:         BackoffLinear,
			BackoffBaseSecs: 1,
			Concurrency:     engine.DefaultConcurrency,
			AutoConfirm:     false,
			DryRun:          false,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		Aliases: map[string]string{},
	}
}

// Load loads the configuration from the default path.
// If the manifest doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the manifest doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// Validate checks the manifest for values the engine would reject.
func (c *Config) Validate() error {
	if c.General.MaxAttempts < 1 {
		return fmt.Errorf("general.max_attempts must be at least 1, got %d", c.General.MaxAttempts)
	}
	if c.General.Concurrency < 1 {
		return fmt.Errorf("general.concurrency must be at least 1, got %d", c.General.Concurrency)
	}
	switch c.General.Backoff {
	case BackoffLinear, BackoffFixed:
	default:
		return fmt.Errorf("general.backoff must be %q or %q, got %q", BackoffLinear, BackoffFixed, c.General.Backoff)
	}
	if c.General.BackoffBaseSecs < 0 {
		return fmt.Errorf("general.backoff_base_secs must not be negative, got %d", c.General.BackoffBaseSecs)
	}
	return nil
}

// Policy builds the engine attempt policy from the manifest.
func (c *Config) Policy() engine.AttemptPolicy {
	base := time.Duration(c.General.BackoffBaseSecs) * time.Second
	backoff := engine.LinearBackoff(base)
	if c.General.Backoff == BackoffFixed {
		backoff = engine.FixedBackoff(base)
	}
	return engine.AttemptPolicy{
		MaxAttempts: c.General.MaxAttempts,
		Backoff:     backoff,
		IsRetryable: engine.RetryAll,
	}
}

// Batches resolves the package lists into per-ecosystem batches, in
// the order ecosystems are provisioned: system packages first, then
// language tools, then editor extensions. Aliases are applied and
// empty ecosystems skipped.
func (c *Config) Batches() []EcosystemBatch {
	var batches []EcosystemBatch

	add := func(ecosystem string, names []string) {
		if len(names) == 0 {
			return
		}
		batch := make(engine.Batch, 0, len(names))
		for _, name := range names {
			batch = append(batch, engine.Target{Name: c.ResolveAlias(name)})
		}
		batches = append(batches, EcosystemBatch{Ecosystem: ecosystem, Batch: batch})
	}

	add("brew", c.Packages.Brew)
	add("cask", c.Packages.Cask)
	add("npm", c.Packages.Npm)
	add("pip", c.Packages.Pip)
	add("gem", c.Packages.Gem)

	if len(c.Packages.Go) > 0 {
		names := make([]string, 0, len(c.Packages.Go))
		for name := range c.Packages.Go {
			names = append(names, name)
		}
		sort.Strings(names)

		batch := make(engine.Batch, 0, len(names))
		for _, name := range names {
			batch = append(batch, engine.Target{Name: name, Source: c.Packages.Go[name]})
		}
		batches = append(batches, EcosystemBatch{Ecosystem: "go", Batch: batch})
	}

	add("vscode", c.Packages.VSCode)
	return batches
}

// ResolveAlias returns the actual package name for an alias, or the
// original name if no alias exists.
func (c *Config) ResolveAlias(pkg string) string {
	if alias, ok := c.Aliases[pkg]; ok {
		return alias
	}
	return pkg
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
