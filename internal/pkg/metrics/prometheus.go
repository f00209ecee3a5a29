package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Kargones/extlog/internal/pkg/logging"
	"github.com/Kargones/extlog/internal/pkg/urlutil"
)

// PrometheusCollector реализует Collector с Prometheus метриками.
// Отправляет метрики в Pushgateway при вызове Push().
type PrometheusCollector struct {
	config   Config
	diag     *logging.Logger
	registry *prometheus.Registry

	// Метрики
	recordsTotal       *prometheus.CounterVec
	publishErrorsTotal *prometheus.CounterVec

	// Instance label (hostname)
	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - extlog_records_total (counter, labels: logger, level)
//   - extlog_publish_errors_total (counter, labels: logger)
//
// diag — логгер диагностики самого коллектора; nil заменяется на
// "extlog.metrics" из глобального реестра.
func NewPrometheusCollector(config Config, diag *logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if diag == nil {
		diag = logging.GetLogger("extlog.metrics")
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			diag.LogCause(logging.LevelWarning,
				"не удалось получить hostname для metrics instance label, используется 'unknown'", err)
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	recordsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extlog",
			Name:      "records_total",
			Help:      "Total number of log records emitted",
		},
		[]string{"logger", "level"},
	)

	publishErrorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extlog",
			Name:      "publish_errors_total",
			Help:      "Total number of handler publish failures",
		},
		[]string{"logger"},
	)

	// Регистрируем все метрики атомарно.
	// Используем Register вместо MustRegister для избежания panic.
	// Ошибка возможна только при дублировании имён метрик в одном registry.
	collectors := []prometheus.Collector{recordsTotal, publishErrorsTotal}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:             config,
		diag:               diag,
		registry:           registry,
		recordsTotal:       recordsTotal,
		publishErrorsTotal: publishErrorsTotal,
		instance:           instance,
	}, nil
}

// maxLabelLength — максимальная длина значения label для защиты от cardinality explosion.
const maxLabelLength = 128

// sanitizeLabel обрезает значение label до допустимой длины и удаляет
// контрольные символы (\n, \r, \0), которые могут нарушить Prometheus text format.
// Обрезка выполняется по рунам (не по байтам) для корректной работы с UTF-8.
func sanitizeLabel(value string) string {
	// Удаляем контрольные символы, опасные для Prometheus text format
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 { // контрольные символы: \n, \r, \t, \0 и др.
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordEmit записывает эмиссию лог-записи.
// Имена корневого логгера пустые — заменяются на "root" для читаемости label.
func (c *PrometheusCollector) RecordEmit(loggerName string, level logging.Level) {
	if loggerName == "" {
		loggerName = "root"
	}
	c.recordsTotal.WithLabelValues(sanitizeLabel(loggerName), level.String()).Inc()
}

// RecordPublishError записывает ошибку публикации.
func (c *PrometheusCollector) RecordPublishError(loggerName string) {
	if loggerName == "" {
		loggerName = "root"
	}
	c.publishErrorsTotal.WithLabelValues(sanitizeLabel(loggerName)).Inc()
}

// Push отправляет метрики в Pushgateway.
// Возвращает nil даже при ошибке — ошибки логируются.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.diag.Fine("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	// Проверяем контекст
	select {
	case <-ctx.Done():
		c.diag.Fine("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	// Устанавливаем таймаут через контекст
	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	// Push с контекстом
	if err := pusher.PushContext(pushCtx); err != nil {
		c.diag.LogCause(logging.LevelWarning,
			"ошибка отправки метрик в Pushgateway: "+urlutil.MaskURL(c.config.PushgatewayURL), err)
		// Возвращаем nil — ошибка метрик не критична
		return nil
	}

	c.diag.Log(logging.LevelInfo, "метрики отправлены в Pushgateway {0} (job={1}, instance={2})",
		urlutil.MaskURL(c.config.PushgatewayURL), c.config.JobName, c.instance)
	return nil
}

// GetRegistry возвращает внутренний registry для тестирования.
// Примечание: экспортируется только для unit-тестов.
func (c *PrometheusCollector) GetRegistry() *prometheus.Registry {
	return c.registry
}
