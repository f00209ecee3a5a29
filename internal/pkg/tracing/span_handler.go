package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// SpanEventHandler — мост между фасилити логирования и OpenTelemetry.
// Подключается к логгеру как обычный handler и добавляет записи как
// события активного span-а из контекста публикации. Записи,
// опубликованные без контекста или вне активного span-а, игнорируются.
//
// Для попадания записей в span используйте Logger.LogContext с
// контекстом, в котором открыт span.
type SpanEventHandler struct {
	minLevel logging.Level
}

// NewSpanEventHandler создаёт SpanEventHandler. Записи с уровнем ниже
// minLevel в span не добавляются.
func NewSpanEventHandler(minLevel logging.Level) *SpanEventHandler {
	return &SpanEventHandler{minLevel: minLevel}
}

// Publish добавляет запись как событие активного span-а.
// Всегда возвращает nil: отсутствие span-а не является ошибкой.
func (h *SpanEventHandler) Publish(ctx context.Context, r *logging.Record) error {
	if r.Level < h.minLevel {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	span.AddEvent(r.FormattedMessage(), trace.WithAttributes(
		attribute.String("log.level", r.Level.String()),
		attribute.String("log.logger", r.LoggerName),
	))
	if r.Err != nil {
		span.RecordError(r.Err)
	}
	return nil
}

// Close ничего не освобождает: жизненным циклом TracerProvider
// управляет NewTracerProvider.
func (h *SpanEventHandler) Close() error {
	return nil
}
