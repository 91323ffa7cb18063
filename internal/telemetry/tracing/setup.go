package tracing

import (
	"fmt"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// Setup configures the OpenTelemetry SDK via otelconfig. When tracing is
// disabled, exporters are turned off but the no-op tracer stays usable, so
// the span calls around the codebase do not need guards.
func Setup(enabled bool, serviceName string) (shutdown func(), err error) {
	opts := []otelconfig.Option{
		otelconfig.WithServiceName(serviceName),
	}
	if !enabled {
		opts = append(opts,
			otelconfig.WithTracesEnabled(false),
			otelconfig.WithMetricsEnabled(false),
		)
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(opts...)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	if enabled {
		log.Debugln("otel tracing set up")
	} else {
		log.Debugln("otel tracing disabled")
	}

	return otelShutdown, nil
}
