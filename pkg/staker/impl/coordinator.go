package impl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/gas"
	"github.com/textileio/go-autostaker/pkg/ledger"
	"github.com/textileio/go-autostaker/pkg/nonce"
	"github.com/textileio/go-autostaker/pkg/planner"
	"github.com/textileio/go-autostaker/pkg/staker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/instrument"
	"go.uber.org/atomic"
)

// Coordinator implements staker.Coordinator.
type Coordinator struct {
	log       zerolog.Logger
	client    ledger.Client
	sequencer nonce.Sequencer
	planner   *planner.Planner
	pricer    *gas.Pricer
	replacer  *Replacer
	sink      staker.Sink
	config    *Config

	busy  atomic.Bool
	state atomic.Int32

	mu     sync.Mutex
	status staker.Status

	// metrics
	mBaseLabels   []attribute.KeyValue
	mAttempts     instrument.Int64Counter
	mReplacements instrument.Int64Counter
	mLatency      instrument.Int64Histogram
}

var _ staker.Coordinator = (*Coordinator)(nil)

// NewCoordinator returns a new Coordinator.
func NewCoordinator(
	client ledger.Client,
	sequencer nonce.Sequencer,
	sink staker.Sink,
	opts ...Option,
) (*Coordinator, error) {
	config := DefaultConfig()
	for _, o := range opts {
		if err := o(config); err != nil {
			return nil, fmt.Errorf("applying provided option: %s", err)
		}
	}

	c := &Coordinator{
		log:       logger.With().Str("component", "coordinator").Logger(),
		client:    client,
		sequencer: sequencer,
		planner:   planner.New(config.TokenDecimals),
		pricer:    gas.NewPricer(client),
		replacer:  NewReplacer(client, config.ReplacementGasMultiplier),
		sink:      sink,
		config:    config,
	}
	if err := c.initMetrics(); err != nil {
		return nil, fmt.Errorf("initializing metrics: %s", err)
	}

	return c, nil
}

// Busy reports whether an attempt is in flight.
func (c *Coordinator) Busy() bool {
	return c.busy.Load()
}

// Status returns a snapshot of the coordinator.
func (c *Coordinator) Status() staker.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.status
	s.State = staker.State(c.state.Load())
	s.Busy = c.busy.Load()
	if c.status.LastAttempt != nil {
		last := *c.status.LastAttempt
		s.LastAttempt = &last
	}
	return s
}

// Attempt runs one stake attempt to a terminal state, or returns nil if an attempt is
// already in flight.
func (c *Coordinator) Attempt(ctx context.Context) *staker.StakeAttempt {
	if !c.busy.CompareAndSwap(false, true) {
		c.log.Info().Msg("stake attempt in progress, dropping trigger")
		c.mu.Lock()
		c.status.Dropped++
		c.mu.Unlock()
		c.mAttempts.Add(ctx, 1, append([]attribute.KeyValue{attribute.String("outcome", "dropped")}, c.mBaseLabels...)...)
		return nil
	}
	defer func() {
		c.state.Store(int32(staker.Idle))
		c.busy.Store(false)
	}()

	attempt := &staker.StakeAttempt{ID: uuid.New()}
	log := c.log.With().Str("attempt_id", attempt.ID.String()).Logger()
	start := time.Now()

	c.setState(attempt, staker.Submitting)
	err := c.stake(ctx, log, attempt)
	c.finish(ctx, log, attempt, err)

	outcome := attempt.State.String()
	if errors.Is(err, planner.ErrInsufficientAmount) {
		outcome = "skipped"
	}
	attrs := append([]attribute.KeyValue{attribute.String("outcome", outcome)}, c.mBaseLabels...)
	c.mAttempts.Add(ctx, 1, attrs...)
	c.mLatency.Record(ctx, int64(time.Since(start).Seconds()), attrs...)

	return attempt
}

func (c *Coordinator) stake(ctx context.Context, log zerolog.Logger, attempt *staker.StakeAttempt) error {
	account := c.client.Address()
	balance, err := c.client.TokenBalance(ctx, account)
	if err != nil {
		return fmt.Errorf("get balance: %s", err)
	}
	poolMax, err := c.client.MaxPoolSize(ctx)
	if err != nil {
		return fmt.Errorf("get max pool size: %s", err)
	}
	principal, err := c.client.TotalPrincipal(ctx)
	if err != nil {
		return fmt.Errorf("get total principal: %s", err)
	}

	amount, err := c.planner.Plan(balance, poolMax, principal)
	if err != nil {
		return fmt.Errorf("planning amount: %w", err)
	}
	attempt.Amount = amount

	gasPrice, err := c.pricer.Escalate(ctx, c.config.FreshGasMultiplier)
	if err != nil {
		return fmt.Errorf("get gas price: %s", err)
	}
	attempt.GasPrice = gasPrice

	txNonce, err := c.sequencer.Next(ctx)
	if err != nil {
		return fmt.Errorf("get nonce: %s", err)
	}
	attempt.Nonce = txNonce

	tx, err := c.client.Stake(ctx, ledger.StakeRequest{
		Amount:   amount,
		GasPrice: gasPrice,
		Nonce:    txNonce,
	})
	if err != nil {
		return fmt.Errorf("submitting stake: %s", err)
	}
	attempt.TxHash = tx.Hash()
	attempt.SubmittedAt = time.Now()
	c.setState(attempt, staker.AwaitingConfirmation)

	log.Info().
		Str("amount", planner.FormatUnits(amount, c.config.TokenDecimals)).
		Str("gas_price", gasPrice.String()).
		Uint64("nonce", txNonce).
		Str("hash", tx.Hash().Hex()).
		Msg("stake submitted, waiting for confirmation")

	receipt, err := c.client.WaitMined(ctx, tx)
	if err != nil {
		return fmt.Errorf("waiting for confirmation: %w", err)
	}

	log.Info().
		Str("hash", tx.Hash().Hex()).
		Uint64("block_number", receipt.BlockNumber.Uint64()).
		Uint64("gas_used", receipt.GasUsed).
		Msg("stake confirmed")

	return nil
}

func (c *Coordinator) finish(ctx context.Context, log zerolog.Logger, attempt *staker.StakeAttempt, err error) {
	attempt.Err = err

	switch {
	case err == nil:
		c.setState(attempt, staker.Confirmed)
		c.sink.Send(ctx, fmt.Sprintf("✅ Successfully staked %s %s\nTx: %s/tx/%s",
			planner.FormatUnits(attempt.Amount, c.config.TokenDecimals),
			c.config.TokenSymbol,
			c.config.ExplorerURL,
			attempt.TxHash.Hex()))
	case errors.Is(err, planner.ErrInsufficientAmount):
		c.setState(attempt, staker.Failed)
		log.Info().Err(err).Msg("nothing to stake")
	case errors.Is(err, ledger.ErrConfirmationTimeout):
		c.setState(attempt, staker.TimedOut)
		log.Warn().Err(err).Str("hash", attempt.TxHash.Hex()).Msg("stake not mined in time, replacing it")
		c.replace(ctx, log, attempt)
		c.sequencer.Invalidate()
		c.notifyFailure(ctx, err)
	case ctx.Err() != nil:
		c.setState(attempt, staker.Failed)
		log.Warn().Err(err).Msg("stake attempt interrupted")
		c.sequencer.Invalidate()
	default:
		c.setState(attempt, staker.Failed)
		log.Error().Err(err).Msg("stake attempt failed")
		c.sequencer.Invalidate()
		c.notifyFailure(ctx, err)
	}

	summary := attempt.Summary()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Attempts++
	c.status.LastAttempt = &summary
	switch {
	case attempt.State == staker.Confirmed:
		c.status.Confirmed++
	case attempt.State == staker.TimedOut:
		c.status.TimedOut++
	case errors.Is(err, planner.ErrInsufficientAmount):
		c.status.Skipped++
	default:
		c.status.Failed++
	}
	if attempt.Replacement != nil && attempt.Replacement.TxHash != (common.Hash{}) {
		c.status.Replacements++
	}
}

// replace runs the single replacement an attempt is allowed. Its failure is only logged.
func (c *Coordinator) replace(ctx context.Context, log zerolog.Logger, attempt *staker.StakeAttempt) {
	rep, err := c.replacer.Replace(ctx, attempt.TxHash, attempt.GasPrice)
	attempt.Replacement = rep

	result := "sent"
	switch {
	case err != nil:
		result = "failed"
		log.Error().Err(err).Str("hash", attempt.TxHash.Hex()).Msg("replacing stuck transaction")
	case rep.Skipped:
		result = "skipped"
	}
	c.mReplacements.Add(ctx, 1, append([]attribute.KeyValue{attribute.String("result", result)}, c.mBaseLabels...)...)
}

func (c *Coordinator) notifyFailure(ctx context.Context, err error) {
	if !c.config.NotifyFailures {
		return
	}
	c.sink.Send(ctx, fmt.Sprintf("❌ Staking failed: %s", err))
}

func (c *Coordinator) setState(attempt *staker.StakeAttempt, state staker.State) {
	attempt.State = state
	c.state.Store(int32(state))
}
