package watcher

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/textileio/go-autostaker/pkg/ledger"
)

// ErrSubscription indicates that the event subscription couldn't be set up or broke.
var ErrSubscription = errors.New("event subscription")

// Watcher turns staking pool events into stake attempts.
type Watcher interface {
	// Run blocks until ctx is cancelled, resubscribing whenever the stream fails.
	Run(context.Context) error
}

// ChainClient provides the chain api a Watcher needs.
type ChainClient interface {
	Address() common.Address
	TokenBalance(ctx context.Context, account common.Address) (*big.Int, error)
	SubscribeUnstaked(ctx context.Context) (ledger.Subscription, error)
}

// Config contains configuration attributes for a Watcher.
type Config struct {
	// ResubscribeDelay is the fixed wait between a subscription failure and the next try.
	ResubscribeDelay time.Duration
	// TokenDecimals is used to log event amounts in whole units.
	TokenDecimals uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ResubscribeDelay: 5 * time.Second,
		TokenDecimals:    18,
	}
}

// Option modifies a configuration attribute.
type Option func(*Config) error

// WithResubscribeDelay sets the wait before resubscribing.
func WithResubscribeDelay(delay time.Duration) Option {
	return func(c *Config) error {
		if delay <= 0 {
			return fmt.Errorf("resubscribe delay must be positive")
		}
		c.ResubscribeDelay = delay
		return nil
	}
}

// WithTokenDecimals sets the decimals used to log event amounts.
func WithTokenDecimals(decimals uint8) Option {
	return func(c *Config) error {
		c.TokenDecimals = decimals
		return nil
	}
}
