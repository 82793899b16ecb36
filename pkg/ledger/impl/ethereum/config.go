package ethereum

import (
	"fmt"
	"time"
)

// Config contains configuration attributes for the ethereum ledger client.
type Config struct {
	// StakeGasLimit is the gas limit of transferAndCall transactions.
	StakeGasLimit uint64
	// StakeData is the data field attached to transferAndCall.
	StakeData []byte
	// ConfirmationTimeout bounds WaitMined.
	ConfirmationTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		StakeGasLimit:       600_000,
		StakeData:           DefaultStakeData,
		ConfirmationTimeout: 750 * time.Second,
	}
}

// Option modifies a configuration attribute.
type Option func(*Config) error

// WithStakeGasLimit sets the gas limit used for stake transactions.
func WithStakeGasLimit(gasLimit uint64) Option {
	return func(c *Config) error {
		if gasLimit < 21_000 {
			return fmt.Errorf("gas limit %d is below the intrinsic gas of a transfer", gasLimit)
		}
		c.StakeGasLimit = gasLimit
		return nil
	}
}

// WithStakeData sets the data field attached to transferAndCall.
func WithStakeData(data []byte) Option {
	return func(c *Config) error {
		c.StakeData = data
		return nil
	}
}

// WithConfirmationTimeout sets how long WaitMined waits for a receipt.
func WithConfirmationTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return fmt.Errorf("confirmation timeout must be positive")
		}
		c.ConfirmationTimeout = timeout
		return nil
	}
}
