package impl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/ledger"
	"github.com/textileio/go-autostaker/pkg/planner"
	"github.com/textileio/go-autostaker/pkg/staker"
	"github.com/textileio/go-autostaker/pkg/watcher"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/instrument"
)

// Sink receives throttled operator notifications.
type Sink interface {
	SendThrottled(ctx context.Context, key string, text string) bool
}

// Watcher implements watcher.Watcher on top of the Unstaked event stream.
type Watcher struct {
	log         zerolog.Logger
	client      watcher.ChainClient
	coordinator staker.Coordinator
	sink        Sink
	config      *watcher.Config

	// attempts tracks in-flight stake attempts.
	attempts sync.WaitGroup

	// metrics
	mBaseLabels      []attribute.KeyValue
	mEvents          instrument.Int64Counter
	mResubscriptions instrument.Int64Counter
}

var _ watcher.Watcher = (*Watcher)(nil)

// New returns a new Watcher.
func New(
	client watcher.ChainClient,
	coordinator staker.Coordinator,
	sink Sink,
	opts ...watcher.Option,
) (*Watcher, error) {
	config := watcher.DefaultConfig()
	for _, o := range opts {
		if err := o(config); err != nil {
			return nil, fmt.Errorf("applying provided option: %s", err)
		}
	}

	w := &Watcher{
		log:         logger.With().Str("component", "watcher").Logger(),
		client:      client,
		coordinator: coordinator,
		sink:        sink,
		config:      config,
	}
	if err := w.initMetrics(); err != nil {
		return nil, fmt.Errorf("initializing metrics: %s", err)
	}

	return w, nil
}

// Run watches Unstaked events until ctx is cancelled. Subscription failures are retried
// forever after a fixed delay. On return every triggered attempt has finished.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.attempts.Wait()

	w.log.Info().
		Str("address", w.client.Address().Hex()).
		Msg("starting watcher...")

	for {
		err := w.watch(ctx)
		if ctx.Err() != nil {
			w.log.Info().Msg("closing gracefully...")
			return nil
		}

		w.log.Error().Err(err).Dur("delay", w.config.ResubscribeDelay).Msg("event subscription failed, resubscribing")
		w.mResubscriptions.Add(ctx, 1, w.mBaseLabels...)

		select {
		case <-ctx.Done():
			w.log.Info().Msg("closing gracefully...")
			return nil
		case <-time.After(w.config.ResubscribeDelay):
		}
	}
}

// watch consumes one subscription until it fails or ctx is cancelled.
func (w *Watcher) watch(ctx context.Context) error {
	sub, err := w.client.SubscribeUnstaked(ctx)
	if err != nil {
		err = fmt.Errorf("%w setup: %s", watcher.ErrSubscription, err)
		if ctx.Err() == nil {
			w.sink.SendThrottled(ctx, "event-setup", fmt.Sprintf("❌ Event setup failed: %s", err))
		}
		return err
	}
	defer sub.Unsubscribe()

	w.log.Info().Msg("subscribed to Unstaked events")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-sub.Messages():
			if !ok {
				err = fmt.Errorf("%w: stream closed", watcher.ErrSubscription)
			} else if msg.Err != nil {
				err = fmt.Errorf("%w: %s", watcher.ErrSubscription, msg.Err)
			} else {
				w.handle(ctx, msg.Event)
				continue
			}
			if ctx.Err() == nil {
				w.sink.SendThrottled(ctx, "event-stream", fmt.Sprintf("❌ Event stream error: %s", err))
			}
			return err
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev *ledger.Unstaked) {
	w.log.Info().
		Str("staker", ev.Staker.Hex()).
		Str("amount", planner.FormatUnits(ev.Amount, w.config.TokenDecimals)).
		Str("new_stake", planner.FormatUnits(ev.NewStake, w.config.TokenDecimals)).
		Str("new_total_principal", planner.FormatUnits(ev.NewTotalPrincipal, w.config.TokenDecimals)).
		Uint64("block_number", ev.BlockNumber).
		Str("tx_hash", ev.TxHash.Hex()).
		Msg("unstaked event")

	if w.coordinator.Busy() {
		w.log.Info().Msg("stake attempt in progress, skipping event")
		w.countEvent(ctx, "busy")
		return
	}

	balance, err := w.client.TokenBalance(ctx, w.client.Address())
	if err != nil {
		w.log.Error().Err(err).Msg("checking balance")
		w.countEvent(ctx, "error")
		return
	}
	if balance.Sign() <= 0 {
		w.log.Info().Msg("balance is empty, skipping event")
		w.countEvent(ctx, "empty_balance")
		return
	}

	w.countEvent(ctx, "triggered")
	w.attempts.Add(1)
	go func() {
		defer w.attempts.Done()
		if attempt := w.coordinator.Attempt(ctx); attempt != nil {
			w.log.Info().
				Str("attempt_id", attempt.ID.String()).
				Str("state", attempt.State.String()).
				Msg("stake attempt finished")
		}
	}()
}

func (w *Watcher) countEvent(ctx context.Context, action string) {
	w.mEvents.Add(ctx, 1, append([]attribute.KeyValue{attribute.String("action", action)}, w.mBaseLabels...)...)
}
