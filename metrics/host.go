package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// HostMetrics reports when the client process started and how long it has been running.
type HostMetrics struct {
	startedAt time.Time

	startTimeGauge metric.Int64ObservableGauge
	uptimeGauge    metric.Float64ObservableGauge
	registration   metric.Registration
}

func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	m := &HostMetrics{
		startedAt: time.Now(),
	}

	var err error
	m.startTimeGauge, err = meter.Int64ObservableGauge(
		"restake.StartTimeSeconds",
		metric.WithDescription("Unix time at which the restake client started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.uptimeGauge, err = meter.Float64ObservableGauge(
		"restake.UptimeSeconds",
		metric.WithDescription("Seconds since the restake client started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(m.startTimeGauge, m.startedAt.Unix(), opts)
		o.ObserveFloat64(m.uptimeGauge, time.Since(m.startedAt).Seconds(), opts)
		return nil
	}, m.startTimeGauge, m.uptimeGauge)
	if err != nil {
		return nil, err
	}

	return m, nil
}
