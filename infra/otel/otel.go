// Package otelinfra sets up the tracer provider when tracing is enabled.
// Spans export to stdout; the gRPC server attaches its stats handler
// separately.
package otelinfra

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"

	"github.com/strelka-io/chatserver/config"
)

var Module = fx.Module("otel",
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) error {
		if !cfg.Tracing.Enabled {
			return nil
		}

		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return err
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
		)
		otel.SetTracerProvider(tp)
		logger.Info("tracing enabled", slog.String("exporter", "stdout"))

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return tp.Shutdown(ctx)
			},
		})
		return nil
	}),
)
