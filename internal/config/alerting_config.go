package config

import (
	"time"

	"github.com/Kargones/extlog/internal/pkg/alerting"
)

// AlertingConfig содержит настройки алертинга по записям журнала.
type AlertingConfig struct {
	// Enabled включает отправку алертов.
	Enabled bool `yaml:"enabled" env:"EXTLOG_ALERTING_ENABLED" env-default:"false"`

	// RateLimitWindow — окно подавления повторных алертов с одним кодом.
	RateLimitWindow time.Duration `yaml:"rateLimitWindow" env:"EXTLOG_ALERTING_RATE_LIMIT_WINDOW" env-default:"5m"`

	// MinLevel — минимальный уровень записи для отправки алерта.
	MinLevel string `yaml:"minLevel" env:"EXTLOG_ALERTING_MIN_LEVEL" env-default:"SEVERE"`

	// Webhook — настройки webhook канала.
	Webhook WebhookChannelConfig `yaml:"webhook"`
}

// WebhookChannelConfig содержит настройки webhook канала алертинга.
type WebhookChannelConfig struct {
	// Enabled включает канал.
	Enabled bool `yaml:"enabled" env:"EXTLOG_ALERTING_WEBHOOK_ENABLED" env-default:"false"`

	// URLs — список URL для отправки алертов.
	URLs []string `yaml:"urls" env:"EXTLOG_ALERTING_WEBHOOK_URLS" env-separator:","`

	// Headers — дополнительные HTTP заголовки (например, Authorization).
	// Задаются только через YAML файл.
	Headers map[string]string `yaml:"headers"`

	// Timeout — таймаут HTTP запроса к webhook.
	Timeout time.Duration `yaml:"timeout" env:"EXTLOG_ALERTING_WEBHOOK_TIMEOUT" env-default:"10s"`

	// MaxRetries — количество повторов при временных ошибках.
	MaxRetries int `yaml:"maxRetries" env:"EXTLOG_ALERTING_WEBHOOK_MAX_RETRIES" env-default:"3"`
}

// ToAlertingConfig преобразует в конфигурацию пакета alerting.
func (ac *AlertingConfig) ToAlertingConfig() alerting.Config {
	return alerting.Config{
		Enabled:         ac.Enabled,
		RateLimitWindow: ac.RateLimitWindow,
		MinLevel:        ac.MinLevel,
		Webhook: alerting.WebhookConfig{
			Enabled:    ac.Webhook.Enabled,
			URLs:       ac.Webhook.URLs,
			Headers:    ac.Webhook.Headers,
			Timeout:    ac.Webhook.Timeout,
			MaxRetries: ac.Webhook.MaxRetries,
		},
	}
}
