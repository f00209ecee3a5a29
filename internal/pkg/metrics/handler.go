package metrics

import (
	"context"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// Handler — мост между фасилити логирования и Collector.
// Подключается к логгеру как обычный handler и учитывает каждую
// опубликованную запись. Записи никуда не выводятся.
type Handler struct {
	collector Collector
}

// NewHandler создаёт Handler поверх коллектора.
func NewHandler(collector Collector) *Handler {
	return &Handler{collector: collector}
}

// Publish учитывает запись в метриках. Всегда возвращает nil.
func (h *Handler) Publish(_ context.Context, r *logging.Record) error {
	h.collector.RecordEmit(r.LoggerName, r.Level)
	return nil
}

// Close ничего не освобождает: отправкой метрик управляет владелец
// коллектора через Push.
func (h *Handler) Close() error {
	return nil
}
