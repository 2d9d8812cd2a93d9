// Package config holds the root-finding parameters used by the IRR
// solver. The defaults reproduce the classic bracket-and-bisect
// constants; they can be overridden programmatically or from a TOML file.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds solver parameters for IRR bracket search and bisection.
type Config struct {
	// Accuracy is the absolute convergence tolerance, applied to both
	// the midpoint PV and the bisection step size.
	Accuracy float64 `toml:"accuracy"`

	// MaxIterations bounds the bracket-expansion loop and the bisection
	// loop independently. It doubles as the de facto timeout: no other
	// cancellation mechanism exists.
	MaxIterations int `toml:"max_iterations"`

	// BracketGrowth is the factor by which the bracket endpoint with the
	// smaller-magnitude PV is pushed away from the other endpoint.
	BracketGrowth float64 `toml:"bracket_growth"`

	// BracketLow and BracketHigh form the initial rate bracket.
	BracketLow  float64 `toml:"bracket_low"`
	BracketHigh float64 `toml:"bracket_high"`
}

// DefaultConfig provides the standard solver constants.
var DefaultConfig = Config{
	Accuracy:      1e-5,
	MaxIterations: 50,
	BracketGrowth: 1.6,
	BracketLow:    0.0,
	BracketHigh:   0.2,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}

// Validate rejects parameter sets the solver cannot run with.
func (c Config) Validate() error {
	if c.Accuracy <= 0 {
		return fmt.Errorf("config: accuracy must be positive, got %g", c.Accuracy)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("config: max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.BracketGrowth <= 1 {
		return fmt.Errorf("config: bracket_growth must exceed 1, got %g", c.BracketGrowth)
	}
	if c.BracketLow == c.BracketHigh {
		return fmt.Errorf("config: initial bracket is degenerate at %g", c.BracketLow)
	}
	return nil
}

// LoadFile reads a TOML solver configuration. Keys absent from the file
// keep their DefaultConfig values.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c := DefaultConfig
	if err := toml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
