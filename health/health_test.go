package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clearsol/clear-restake/health"
	"github.com/stretchr/testify/suite"
)

type probeFunc func(ctx context.Context) error

func (f probeFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthTestSuite struct {
	suite.Suite
}

func TestRunHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) Test_Handler_NoProbes() {
	recorder := httptest.NewRecorder()

	health.Handler(nil)(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("ok", recorder.Body.String())
}

func (s *HealthTestSuite) Test_Handler_FailingProbe() {
	recorder := httptest.NewRecorder()
	probes := map[string]health.Probe{
		"rpc": probeFunc(func(ctx context.Context) error { return errors.New("down") }),
		"api": probeFunc(func(ctx context.Context) error { return nil }),
	}

	health.Handler(probes)(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
	s.Equal("unavailable: rpc", recorder.Body.String())
}
