package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	SUBMISSION_TTL = time.Minute * 10
)

type RestakeMetrics struct {
	*HostMetrics

	opts metric.MeasurementOption

	submissionCounter    metric.Int64Counter
	submissionHistogram  metric.Float64Histogram
	submissionStartTimes *ttlcache.Cache[string, time.Time]
	balanceGauge         metric.Int64ObservableGauge
	balance              *atomic.Int64
}

// NewRestakeMetrics initializes metrics related to deposit submissions
func NewRestakeMetrics(ctx context.Context, meter metric.Meter, env, instance string) (*RestakeMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", instance),
	)
	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	submissionCounter, err := meter.Int64Counter(
		"restake.Submissions",
		metric.WithDescription("Number of finished deposit submissions by outcome"),
	)
	if err != nil {
		return nil, err
	}

	submissionHistogram, err := meter.Float64Histogram(
		"restake.SubmissionTime",
		metric.WithDescription("Seconds from deposit request to confirmation or failure"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	balance := new(atomic.Int64)
	balanceGauge, err := meter.Int64ObservableGauge(
		"restake.BalanceLamports",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(balance.Load(), opts)
			return nil
		}),
		metric.WithDescription("Last known wallet balance in lamports"),
	)
	if err != nil {
		return nil, err
	}

	return &RestakeMetrics{
		HostMetrics:         hostMetrics,
		opts:                opts,
		submissionCounter:   submissionCounter,
		submissionHistogram: submissionHistogram,
		submissionStartTimes: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](SUBMISSION_TTL),
		),
		balanceGauge: balanceGauge,
		balance:      balance,
	}, nil
}

func (m *RestakeMetrics) StartSubmission(id string) {
	m.submissionStartTimes.Set(id, time.Now(), ttlcache.DefaultTTL)
}

func (m *RestakeMetrics) EndSubmission(id string, outcome string) {
	m.submissionCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("outcome", outcome)),
	)

	startTime := m.submissionStartTimes.Get(id)
	if startTime == nil {
		log.Warn().Msgf("Submission start time with ID %s not found", id)
		return
	}
	m.submissionStartTimes.Delete(id)

	m.submissionHistogram.Record(
		context.Background(),
		time.Since(startTime.Value()).Seconds(),
		m.opts,
		metric.WithAttributes(attribute.String("outcome", outcome)),
	)
}

func (m *RestakeMetrics) TrackBalance(lamports uint64) {
	// nolint:gosec
	m.balance.Store(int64(lamports))
}
