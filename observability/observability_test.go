package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/clearsol/clear-restake/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"
)

type ObservabilityTestSuite struct {
	suite.Suite
}

func TestRunObservabilityTestSuite(t *testing.T) {
	suite.Run(t, new(ObservabilityTestSuite))
}

func (s *ObservabilityTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func (s *ObservabilityTestSuite) Test_ConfigureLogger_JSON() {
	out := &bytes.Buffer{}
	observability.ConfigureLogger(zerolog.InfoLevel, out, true)

	log.Debug().Msgf("hidden")
	log.Info().Msgf("Restake successful")

	line := make(map[string]interface{})
	s.Nil(json.Unmarshal(out.Bytes(), &line))
	s.Equal("info", line["level"])
	s.Equal("Restake successful", line["message"])
}

func (s *ObservabilityTestSuite) Test_Meter_NoCollector() {
	meter, shutdown, err := observability.Meter(context.Background(), "")

	s.Nil(err)
	s.NotNil(meter)
	s.Nil(shutdown(context.Background()))
}

func (s *ObservabilityTestSuite) Test_InitMetricProvider_InvalidURL() {
	_, err := observability.InitMetricProvider(context.Background(), "://collector")

	s.NotNil(err)
}
