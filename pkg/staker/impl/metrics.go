package impl

import (
	"context"
	"fmt"

	"github.com/textileio/go-autostaker/pkg/metrics"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/metric/instrument"
)

func (c *Coordinator) initMetrics() error {
	meter := global.MeterProvider().Meter(metrics.MeterName)
	c.mBaseLabels = metrics.BaseAttrs

	var err error
	c.mAttempts, err = meter.Int64Counter("autostaker.stake.attempts")
	if err != nil {
		return fmt.Errorf("creating stake attempts metric: %s", err)
	}
	c.mReplacements, err = meter.Int64Counter("autostaker.stake.replacements")
	if err != nil {
		return fmt.Errorf("creating stake replacements metric: %s", err)
	}
	c.mLatency, err = meter.Int64Histogram("autostaker.stake.duration.seconds")
	if err != nil {
		return fmt.Errorf("creating stake duration metric: %s", err)
	}
	mBusy, err := meter.Int64ObservableGauge("autostaker.stake.busy")
	if err != nil {
		return fmt.Errorf("creating busy metric: %s", err)
	}

	if _, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			var busy int64
			if c.busy.Load() {
				busy = 1
			}
			o.ObserveInt64(mBusy, busy, c.mBaseLabels...)

			return nil
		}, []instrument.Asynchronous{
			mBusy,
		}...); err != nil {
		return fmt.Errorf("registering async metric callback: %s", err)
	}

	return nil
}
