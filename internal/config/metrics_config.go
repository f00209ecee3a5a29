package config

import (
	"time"

	"github.com/Kargones/extlog/internal/constants"
	"github.com/Kargones/extlog/internal/pkg/metrics"
)

// MetricsConfig содержит настройки отправки метрик в Prometheus Pushgateway.
type MetricsConfig struct {
	// Enabled включает сбор и отправку метрик.
	Enabled bool `yaml:"enabled" env:"EXTLOG_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL — URL Pushgateway (например, http://pushgateway:9091).
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"EXTLOG_METRICS_PUSHGATEWAY_URL"`

	// JobName — имя job для группировки метрик в Pushgateway.
	JobName string `yaml:"jobName" env:"EXTLOG_METRICS_JOB_NAME" env-default:"extlog"`

	// Timeout — таймаут отправки метрик.
	Timeout time.Duration `yaml:"timeout" env:"EXTLOG_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel — значение label instance (по умолчанию hostname).
	InstanceLabel string `yaml:"instanceLabel" env:"EXTLOG_METRICS_INSTANCE_LABEL"`
}

// ToMetricsConfig преобразует в конфигурацию пакета metrics.
func (mc *MetricsConfig) ToMetricsConfig() metrics.Config {
	jobName := mc.JobName
	if jobName == "" {
		jobName = constants.AppName
	}
	return metrics.Config{
		Enabled:        mc.Enabled,
		PushgatewayURL: mc.PushgatewayURL,
		JobName:        jobName,
		Timeout:        mc.Timeout,
		InstanceLabel:  mc.InstanceLabel,
	}
}
