package observability

import (
	"context"

	"go.uber.org/zap"
)

// EventBus publishes structured application events through the logger.
// Used for pricing lifecycle events (refresh started, source fallback,
// catalog swapped) that downstream log pipelines key on.
type EventBus struct {
	logger *zap.Logger
}

// NewEventBus creates a new event bus.
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		logger: logger,
	}
}

// Publish publishes an event with the given type and data.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	logger := e.logger
	if logger == nil {
		logger = FromContext(ctx)
	}

	fields := make([]zap.Field, 0, len(data)+1)
	fields = append(fields, zap.String("event", eventType))
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}

	logger.Info("event published", fields...)
}
