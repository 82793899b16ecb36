package main

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/metrics"
	"github.com/textileio/go-autostaker/pkg/planner"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/metric/instrument"
)

var gwei = big.NewInt(1_000_000_000)

// balanceClient is the part of the ledger client the tracker reads.
type balanceClient interface {
	Address() common.Address
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, account common.Address) (*big.Int, error)
}

// BalanceTracker tracks the gas funds and token balance of the staker and produces metrics.
type BalanceTracker struct {
	checkInterval time.Duration
	client        balanceClient
	decimals      uint8
	unit          *big.Int

	log zerolog.Logger

	mu sync.Mutex

	// metrics
	mBaseLabels     []attribute.KeyValue
	currGweiBalance int64
	currTokens      int64
	clientUnhealthy int64
}

// NewBalanceTracker returns a *BalanceTracker.
func NewBalanceTracker(
	client balanceClient,
	chainID int64,
	decimals uint8,
	checkInterval time.Duration,
) (*BalanceTracker, error) {
	log := logger.With().
		Str("component", "balancetracker").
		Int64("chain_id", chainID).
		Logger()

	t := &BalanceTracker{
		log:           log,
		checkInterval: checkInterval,
		client:        client,
		decimals:      decimals,
		unit:          new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil),
	}
	if err := t.initMetrics(chainID); err != nil {
		return nil, fmt.Errorf("initializing metrics: %s", err)
	}

	return t, nil
}

// Run runs the tracker until the provided ctx is canceled.
func (t *BalanceTracker) Run(ctx context.Context) {
	t.log.Info().Msg("starting balance tracker...")

	if err := t.checkBalance(ctx); err != nil {
		t.log.Error().Err(err).Msg("check balance failed")
	}

	checkInterval := t.checkInterval
	for {
		select {
		case <-ctx.Done():
			t.log.Info().Msg("closing gracefully...")
			return
		case <-time.After(checkInterval):
			if err := t.checkBalance(ctx); err != nil {
				t.log.Error().Err(err).Msg("check balance failed")
				checkInterval = time.Minute
			} else {
				checkInterval = t.checkInterval
			}
		}
	}
}

func (t *BalanceTracker) checkBalance(ctx context.Context) error {
	ctx, cls := context.WithTimeout(ctx, time.Second*15)
	defer cls()

	addr := t.client.Address()
	weiBalance, err := t.client.NativeBalance(ctx, addr)
	if err != nil {
		t.markUnhealthy()
		return fmt.Errorf("get native balance: %s", err)
	}
	tokenBalance, err := t.client.TokenBalance(ctx, addr)
	if err != nil {
		t.markUnhealthy()
		return fmt.Errorf("get token balance: %s", err)
	}

	t.log.Info().
		Str("balance", weiBalance.String()).
		Str("tokens", planner.FormatUnits(tokenBalance, t.decimals)).
		Str("address", addr.Hex()).
		Msg("check balance")

	gweiBalance := new(big.Int).Quo(weiBalance, gwei)
	tokens := new(big.Int).Quo(tokenBalance, t.unit)
	if !gweiBalance.IsInt64() || !tokens.IsInt64() {
		return fmt.Errorf("balance doesn't fit a gauge")
	}

	t.mu.Lock()
	t.currGweiBalance = gweiBalance.Int64()
	t.currTokens = tokens.Int64()
	t.clientUnhealthy = 0
	t.mu.Unlock()

	return nil
}

func (t *BalanceTracker) markUnhealthy() {
	t.mu.Lock()
	t.clientUnhealthy++
	t.mu.Unlock()
}

func (t *BalanceTracker) initMetrics(chainID int64) error {
	meter := global.MeterProvider().Meter(metrics.MeterName)
	t.mBaseLabels = append([]attribute.KeyValue{
		attribute.Int64("chain_id", chainID),
	}, metrics.BaseAttrs...)

	mBalance, err := meter.Int64ObservableGauge("autostaker.wallet.balance.gwei")
	if err != nil {
		return fmt.Errorf("creating balance metric: %s", err)
	}
	mTokens, err := meter.Int64ObservableGauge("autostaker.wallet.tokens")
	if err != nil {
		return fmt.Errorf("creating tokens metric: %s", err)
	}
	mClientUnhealthy, err := meter.Int64ObservableGauge("autostaker.wallet.eth.client.unhealthy")
	if err != nil {
		return fmt.Errorf("creating eth client unhealthy metric: %s", err)
	}

	if _, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			t.mu.Lock()
			defer t.mu.Unlock()
			o.ObserveInt64(mBalance, t.currGweiBalance, t.mBaseLabels...)
			o.ObserveInt64(mTokens, t.currTokens, t.mBaseLabels...)
			o.ObserveInt64(mClientUnhealthy, t.clientUnhealthy, t.mBaseLabels...)

			return nil
		}, []instrument.Asynchronous{
			mBalance,
			mTokens,
			mClientUnhealthy,
		}...); err != nil {
		return fmt.Errorf("registering async metric callback: %s", err)
	}

	return nil
}
