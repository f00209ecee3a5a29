// Package alerting предоставляет конфигурацию для системы алертинга.
// Этот файл содержит структуры конфигурации и значения по умолчанию.
package alerting

import (
	"time"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// Значения по умолчанию для конфигурации alerting.
const (
	// DefaultRateLimitWindow — интервал между алертами одного типа по умолчанию.
	DefaultRateLimitWindow = 5 * time.Minute

	// DefaultMinLevel — минимальный уровень записи для алерта по умолчанию.
	DefaultMinLevel = "SEVERE"
)

// Config содержит настройки для пакета alerting.
// Используется при создании Alerter через NewAlerter().
type Config struct {
	// Enabled — включён ли алертинг (по умолчанию false).
	Enabled bool

	// RateLimitWindow — минимальный интервал между алертами одного типа.
	// По умолчанию: 5 минут.
	RateLimitWindow time.Duration

	// MinLevel — минимальный уровень лог-записи для алерта.
	// По умолчанию: "SEVERE".
	MinLevel string

	// Webhook — конфигурация webhook канала.
	Webhook WebhookConfig
}

// DefaultConfig возвращает конфигурацию с значениями по умолчанию.
// Alerting отключён по умолчанию.
func DefaultConfig() Config {
	return Config{
		Enabled:         false,
		RateLimitWindow: DefaultRateLimitWindow,
		MinLevel:        DefaultMinLevel,
		Webhook: WebhookConfig{
			Enabled:    false,
			Timeout:    DefaultWebhookTimeout,
			MaxRetries: DefaultMaxRetries,
		},
	}
}

// Validate проверяет корректность конфигурации.
// Возвращает ошибку если обязательные поля не заполнены.
func (c *Config) Validate() error {
	// Если alerting отключён — валидация не требуется
	if !c.Enabled {
		return nil
	}

	if c.MinLevel != "" {
		if _, err := logging.ParseLevel(c.MinLevel); err != nil {
			return ErrMinLevelInvalid
		}
	}

	// Если webhook канал включён — проверяем обязательные поля
	if c.Webhook.Enabled {
		if err := c.Webhook.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ResolveMinLevel возвращает порог алертинга из конфигурации.
// Пустое или нераспознанное значение заменяется на SEVERE.
func (c *Config) ResolveMinLevel() logging.Level {
	level, err := logging.ParseLevel(c.MinLevel)
	if err != nil {
		return logging.LevelSevere
	}
	return level
}
