package impl

import (
	"fmt"

	"github.com/textileio/go-autostaker/pkg/metrics"
	"go.opentelemetry.io/otel/metric/global"
)

func (w *Watcher) initMetrics() error {
	meter := global.MeterProvider().Meter(metrics.MeterName)
	w.mBaseLabels = metrics.BaseAttrs

	var err error
	w.mEvents, err = meter.Int64Counter("autostaker.watcher.events")
	if err != nil {
		return fmt.Errorf("creating events metric: %s", err)
	}
	w.mResubscriptions, err = meter.Int64Counter("autostaker.watcher.resubscriptions")
	if err != nil {
		return fmt.Errorf("creating resubscriptions metric: %s", err)
	}

	return nil
}
