// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clearsol/clear-restake/app"
	"github.com/clearsol/clear-restake/metrics"
	"github.com/clearsol/clear-restake/observability"
)

func newServices(ctx context.Context) (*app.Services, func(), error) {
	configuration, err := app.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	meter, shutdown, err := observability.Meter(ctx, configuration.OpenTelemetryCollectorURL)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}

	restakeMetrics, err := metrics.NewRestakeMetrics(ctx, meter, configuration.Env, configuration.Id)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	services, err := app.NewServices(ctx, configuration, app.Approver(), restakeMetrics)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return services, closeFn, nil
}
