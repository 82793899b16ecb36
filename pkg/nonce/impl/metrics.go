package impl

import (
	"context"
	"fmt"

	"github.com/textileio/go-autostaker/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/metric/instrument"
)

func (s *LocalSequencer) initMetrics(chainID int64) error {
	meter := global.MeterProvider().Meter(metrics.MeterName)
	s.mBaseLabels = append([]attribute.KeyValue{
		attribute.Int64("chain_id", chainID),
	}, metrics.BaseAttrs...)

	mNonce, err := meter.Int64ObservableGauge("autostaker.nonce.current")
	if err != nil {
		return fmt.Errorf("creating nonce metric: %s", err)
	}
	s.mResyncs, err = meter.Int64Counter("autostaker.nonce.resyncs")
	if err != nil {
		return fmt.Errorf("creating nonce resyncs metric: %s", err)
	}

	if _, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			o.ObserveInt64(mNonce, s.currNonce, s.mBaseLabels...)

			return nil
		}, []instrument.Asynchronous{
			mNonce,
		}...); err != nil {
		return fmt.Errorf("registering async metric callback: %s", err)
	}

	return nil
}
