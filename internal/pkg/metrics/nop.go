package metrics

import (
	"context"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// NopCollector — no-op реализация Collector.
// Используется когда метрики отключены (Config.Enabled = false).
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordEmit — no-op, ничего не делает.
func (c *NopCollector) RecordEmit(loggerName string, level logging.Level) {}

// RecordPublishError — no-op, ничего не делает.
func (c *NopCollector) RecordPublishError(loggerName string) {}

// Push — no-op, всегда возвращает nil.
func (c *NopCollector) Push(ctx context.Context) error {
	return nil
}
