package impl

import (
	"fmt"
	"math"
	"strings"

	"github.com/textileio/go-autostaker/pkg/gas"
)

// Config contains configuration attributes for the coordinator.
type Config struct {
	// FreshGasMultiplier is applied to the network gas price of a new stake.
	FreshGasMultiplier float64
	// ReplacementGasMultiplier is applied to the stuck transaction gas price.
	ReplacementGasMultiplier float64
	// ExplorerURL is the block explorer base used in notifications.
	ExplorerURL string
	// TokenSymbol names the staked asset in notifications.
	TokenSymbol string
	// TokenDecimals is the staked asset precision.
	TokenDecimals uint8
	// NotifyFailures enables failure notifications.
	NotifyFailures bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FreshGasMultiplier:       gas.FreshMultiplier,
		ReplacementGasMultiplier: gas.ReplacementMultiplier,
		ExplorerURL:              "https://etherscan.io",
		TokenSymbol:              "LINK",
		TokenDecimals:            18,
		NotifyFailures:           true,
	}
}

// Option modifies a configuration attribute.
type Option func(*Config) error

func validMultiplier(m float64) bool {
	return m > 0 && !math.IsInf(m, 0) && !math.IsNaN(m)
}

// WithGasMultipliers sets the fresh and replacement gas multipliers.
func WithGasMultipliers(fresh, replacement float64) Option {
	return func(c *Config) error {
		if !validMultiplier(fresh) || !validMultiplier(replacement) {
			return fmt.Errorf("gas multipliers must be positive, got %v and %v", fresh, replacement)
		}
		c.FreshGasMultiplier = fresh
		c.ReplacementGasMultiplier = replacement
		return nil
	}
}

// WithExplorerURL sets the block explorer base URL.
func WithExplorerURL(url string) Option {
	return func(c *Config) error {
		if url == "" {
			return fmt.Errorf("explorer url is empty")
		}
		c.ExplorerURL = strings.TrimSuffix(url, "/")
		return nil
	}
}

// WithToken sets the staked asset symbol and decimals.
func WithToken(symbol string, decimals uint8) Option {
	return func(c *Config) error {
		if symbol == "" {
			return fmt.Errorf("token symbol is empty")
		}
		c.TokenSymbol = symbol
		c.TokenDecimals = decimals
		return nil
	}
}

// WithNotifyFailures enables or disables failure notifications.
func WithNotifyFailures(enabled bool) Option {
	return func(c *Config) error {
		c.NotifyFailures = enabled
		return nil
	}
}
