// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package observability

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const SERVICE_NAME = "clear-restake"

// InitMetricProvider creates a meter provider exporting to the OTLP collector at agentURL.
func InitMetricProvider(ctx context.Context, agentURL string) (*sdkmetric.MeterProvider, error) {
	collectorURL, err := url.Parse(agentURL)
	if err != nil {
		return nil, fmt.Errorf("invalid collector url %s: %w", agentURL, err)
	}

	metricOptions := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(collectorURL.Host),
	}
	if collectorURL.Path != "" {
		metricOptions = append(metricOptions, otlpmetrichttp.WithURLPath(collectorURL.Path))
	}
	if collectorURL.Scheme == "http" {
		metricOptions = append(metricOptions, otlpmetrichttp.WithInsecure())
	}

	metricHTTPExporter, err := otlpmetrichttp.New(ctx, metricOptions...)
	if err != nil {
		return nil, err
	}

	resources := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(SERVICE_NAME),
	)
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(resources),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricHTTPExporter)),
	)
	return meterProvider, nil
}

// Meter returns a meter of the exporting provider when a collector is
// configured, otherwise of the global no-op provider. The returned function
// flushes and stops the provider.
func Meter(ctx context.Context, agentURL string) (metric.Meter, func(context.Context) error, error) {
	if agentURL == "" {
		return otel.GetMeterProvider().Meter(SERVICE_NAME), func(context.Context) error { return nil }, nil
	}

	mp, err := InitMetricProvider(ctx, agentURL)
	if err != nil {
		return nil, nil, err
	}
	otel.SetMeterProvider(mp)
	return mp.Meter(SERVICE_NAME), mp.Shutdown, nil
}
