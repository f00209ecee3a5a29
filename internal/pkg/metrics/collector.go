// Package metrics предоставляет интерфейсы и реализации для сбора и отправки
// метрик эмиссии лог-записей в Prometheus Pushgateway.
//
// Пакет следует паттернам проекта:
//   - Interface Segregation: Collector interface для абстракции
//   - Factory pattern: NewCollector выбирает реализацию на основе конфигурации
//   - Graceful degradation: NopCollector при отключённых метриках
package metrics

import (
	"context"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// Collector определяет интерфейс для сбора метрик логирования.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	// RecordEmit записывает факт эмиссии лог-записи указанным логгером
	// на указанном уровне.
	RecordEmit(loggerName string, level logging.Level)

	// RecordPublishError записывает ошибку публикации записи в handler.
	RecordPublishError(loggerName string)

	// Push отправляет метрики в Pushgateway.
	// Возвращает nil даже при ошибке — ошибки логируются внутри реализации.
	// Сигнатура `error` сохранена для совместимости с интерфейсом, но все
	// реализации всегда возвращают nil.
	Push(ctx context.Context) error
}
