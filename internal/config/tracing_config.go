package config

import (
	"time"

	"github.com/Kargones/extlog/internal/pkg/tracing"
)

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	// Enabled включает отправку трейсов в OTLP бэкенд.
	Enabled bool `yaml:"enabled" env:"EXTLOG_TRACING_ENABLED" env-default:"false"`

	// Endpoint — URL OTLP HTTP endpoint (например, http://jaeger:4318).
	Endpoint string `yaml:"endpoint" env:"EXTLOG_TRACING_ENDPOINT"`

	// ServiceName — имя сервиса для resource attributes.
	ServiceName string `yaml:"serviceName" env:"EXTLOG_TRACING_SERVICE_NAME" env-default:"extlog"`

	// Version — версия сервиса для resource attributes.
	Version string `yaml:"version" env:"EXTLOG_TRACING_VERSION" env-default:"dev"`

	// Environment — окружение (production, staging, development).
	Environment string `yaml:"environment" env:"EXTLOG_TRACING_ENVIRONMENT" env-default:"production"`

	// Insecure — использовать HTTP вместо HTTPS для OTLP endpoint.
	Insecure bool `yaml:"insecure" env:"EXTLOG_TRACING_INSECURE" env-default:"false"`

	// Timeout — таймаут экспорта трейсов.
	Timeout time.Duration `yaml:"timeout" env:"EXTLOG_TRACING_TIMEOUT" env-default:"5s"`

	// SamplingRate — доля сэмплируемых трейсов (0.0 — ни один, 1.0 — все).
	SamplingRate float64 `yaml:"samplingRate" env:"EXTLOG_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// ToTracingConfig преобразует в конфигурацию пакета tracing.
func (tc *TracingConfig) ToTracingConfig() tracing.Config {
	return tracing.Config{
		Enabled:      tc.Enabled,
		Endpoint:     tc.Endpoint,
		ServiceName:  tc.ServiceName,
		Version:      tc.Version,
		Environment:  tc.Environment,
		Insecure:     tc.Insecure,
		Timeout:      tc.Timeout,
		SamplingRate: tc.SamplingRate,
	}
}
