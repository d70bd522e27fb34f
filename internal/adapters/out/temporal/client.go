package temporal

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	temporallog "go.temporal.io/sdk/log"
)

// Dial connects to the Temporal frontend with tracing and structured logging.
func Dial(hostPort, namespace string, logger *slog.Logger, tracer trace.Tracer) (client.Client, error) {
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{Tracer: tracer})
	if err != nil {
		return nil, err
	}

	options := client.Options{
		HostPort:  hostPort,
		Namespace: namespace,
		Logger:    temporallog.NewStructuredLogger(logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
