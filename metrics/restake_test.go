package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/clearsol/clear-restake/metrics"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type RestakeMetricsTestSuite struct {
	suite.Suite

	reader  *sdkmetric.ManualReader
	metrics *metrics.RestakeMetrics
}

func TestRunRestakeMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(RestakeMetricsTestSuite))
}

func (s *RestakeMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))

	m, err := metrics.NewRestakeMetrics(context.Background(), provider.Meter("clear-restake"), "test", "restake-1")
	s.Nil(err)
	s.metrics = m
}

func (s *RestakeMetricsTestSuite) collect() map[string]metricdata.Metrics {
	rm := metricdata.ResourceMetrics{}
	s.Nil(s.reader.Collect(context.Background(), &rm))

	collected := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			collected[m.Name] = m
		}
	}
	return collected
}

func (s *RestakeMetricsTestSuite) Test_EndSubmission_RecordsOutcomeAndDuration() {
	s.metrics.StartSubmission("attempt")
	s.metrics.EndSubmission("attempt", "success")

	collected := s.collect()

	submissions := collected["restake.Submissions"].Data.(metricdata.Sum[int64])
	s.Len(submissions.DataPoints, 1)
	s.Equal(int64(1), submissions.DataPoints[0].Value)
	outcome, ok := submissions.DataPoints[0].Attributes.Value("outcome")
	s.True(ok)
	s.Equal("success", outcome.AsString())

	duration := collected["restake.SubmissionTime"].Data.(metricdata.Histogram[float64])
	s.Len(duration.DataPoints, 1)
	s.Equal(uint64(1), duration.DataPoints[0].Count)
}

func (s *RestakeMetricsTestSuite) Test_EndSubmission_UnknownAttempt() {
	s.metrics.EndSubmission("unknown", "error")

	collected := s.collect()

	submissions := collected["restake.Submissions"].Data.(metricdata.Sum[int64])
	s.Equal(int64(1), submissions.DataPoints[0].Value)
	_, ok := collected["restake.SubmissionTime"]
	s.False(ok)
}

func (s *RestakeMetricsTestSuite) Test_TrackBalance() {
	s.metrics.TrackBalance(2_500_000_000)

	collected := s.collect()

	balance := collected["restake.BalanceLamports"].Data.(metricdata.Gauge[int64])
	s.Equal(int64(2_500_000_000), balance.DataPoints[0].Value)
	_, ok := collected["restake.StartTimeSeconds"]
	s.True(ok)
}

func (s *RestakeMetricsTestSuite) Test_HostMetrics() {
	collected := s.collect()

	startTime := collected["restake.StartTimeSeconds"].Data.(metricdata.Gauge[int64])
	s.Len(startTime.DataPoints, 1)
	s.InDelta(time.Now().Unix(), startTime.DataPoints[0].Value, 5)
	env, ok := startTime.DataPoints[0].Attributes.Value("env")
	s.True(ok)
	s.Equal("test", env.AsString())

	uptime := collected["restake.UptimeSeconds"].Data.(metricdata.Gauge[float64])
	s.Len(uptime.DataPoints, 1)
	s.GreaterOrEqual(uptime.DataPoints[0].Value, float64(0))
}
