package observability_test

import (
	"context"
	"errors"
	"testing"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/platform/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) Publish(context.Context, ...order.ChangedEvent) error {
	p.calls++
	return errors.New("broker down")
}

func event(prev, next order.Status) order.ChangedEvent {
	return order.ChangedEvent{
		OrderID:  kernel.NewUUID(),
		WizardID: kernel.NewUUID(),
		WandID:   kernel.NewUUID(),
		Previous: prev,
		Status:   next,
	}
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != observability.TransitionMetricName {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				status, _ := dp.Attributes.Value("order.status")
				counts[status.AsString()] += dp.Value
			}
		}
	}
	return counts
}

func TestPublisher_CountsTransitionsByStatus(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	p := observability.NewPublisher(nil, observability.WithMeter(provider.Meter("test")))

	require.NoError(t, p.Publish(t.Context(),
		event(order.Unknown, order.Pending),
		event(order.Pending, order.Paid),
		event(order.Unknown, order.Pending),
	))

	assert.Equal(t, map[string]int64{"Pending": 2, "Paid": 1}, collect(t, reader))
}

func TestPublisher_ReturnsInnerError(t *testing.T) {
	inner := &failingPublisher{}
	p := observability.NewPublisher(inner)

	err := p.Publish(t.Context(), event(order.Paid, order.Cancelled))
	require.EqualError(t, err, "broker down")
	assert.Equal(t, 1, inner.calls)
}
