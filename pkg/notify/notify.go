package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/sethvargo/go-limiter"
	"github.com/sethvargo/go-limiter/memorystore"
)

// Notifier delivers a human readable message to an operator channel.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Noop is the Notifier used when no notification credentials are configured.
type Noop struct{}

var _ Notifier = Noop{}

// Notify does nothing.
func (Noop) Notify(context.Context, string) error { return nil }

// Config contains configuration attributes for a Sink.
type Config struct {
	// Timeout bounds a single delivery.
	Timeout time.Duration
	// ThrottleTokens is how many throttled messages per key are delivered per ThrottleInterval.
	ThrottleTokens uint64
	// ThrottleInterval is the window ThrottleTokens applies to.
	ThrottleInterval time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout:          5 * time.Second,
		ThrottleTokens:   1,
		ThrottleInterval: time.Minute,
	}
}

// Option modifies a configuration attribute.
type Option func(*Config) error

// WithTimeout sets the delivery timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithThrottle sets how many throttled messages per key are delivered per interval.
func WithThrottle(tokens uint64, interval time.Duration) Option {
	return func(c *Config) error {
		if tokens == 0 || interval <= 0 {
			return fmt.Errorf("throttle needs at least one token per positive interval")
		}
		c.ThrottleTokens = tokens
		c.ThrottleInterval = interval
		return nil
	}
}

// Sink is the best-effort front of a Notifier. Delivery errors are logged and
// never returned to the caller.
type Sink struct {
	log      zerolog.Logger
	notifier Notifier
	config   *Config
	throttle limiter.Store
}

// NewSink returns a Sink delivering through n.
func NewSink(n Notifier, opts ...Option) (*Sink, error) {
	config := DefaultConfig()
	for _, o := range opts {
		if err := o(config); err != nil {
			return nil, fmt.Errorf("applying provided option: %s", err)
		}
	}

	store, err := memorystore.New(&memorystore.Config{
		Tokens:   config.ThrottleTokens,
		Interval: config.ThrottleInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("creating throttle store: %s", err)
	}

	return &Sink{
		log:      logger.With().Str("component", "notify").Logger(),
		notifier: n,
		config:   config,
		throttle: store,
	}, nil
}

// Send delivers text.
func (s *Sink) Send(ctx context.Context, text string) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, text); err != nil {
		s.log.Error().Err(err).Msg("sending notification")
		return
	}
	s.log.Debug().Str("text", text).Msg("notification sent")
}

// SendThrottled delivers text unless the throttle budget of key is exhausted.
// It reports whether the message went out to the notifier.
func (s *Sink) SendThrottled(ctx context.Context, key string, text string) bool {
	_, _, _, ok, err := s.throttle.Take(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("taking throttle token")
		return false
	}
	if !ok {
		s.log.Debug().Str("key", key).Msg("notification throttled")
		return false
	}
	s.Send(ctx, text)
	return true
}

// Close releases the throttle store.
func (s *Sink) Close(ctx context.Context) error {
	if err := s.throttle.Close(ctx); err != nil {
		return fmt.Errorf("closing throttle store: %s", err)
	}
	return nil
}
