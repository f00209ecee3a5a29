package alerting

import (
	"fmt"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// NewAlerter создаёт Alerter на основе конфигурации.
// Если alerting отключён (enabled=false) — возвращает NopAlerter.
// Если нет настроенных каналов — возвращает NopAlerter.
// Иначе возвращает MultiChannelAlerter с именованными каналами.
//
// Пример использования:
//
//	config := alerting.Config{
//	    Enabled: true,
//	    Webhook: alerting.WebhookConfig{
//	        Enabled: true,
//	        URLs:    []string{"https://hooks.example.com/logs"},
//	    },
//	}
//	alerter, err := alerting.NewAlerter(config, nil)
func NewAlerter(config Config, diag *logging.Logger) (Alerter, error) {
	// Если alerting отключён — возвращаем NopAlerter
	if !config.Enabled {
		return NewNopAlerter(), nil
	}

	// Валидируем конфигурацию
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if diag == nil {
		diag = logging.GetLogger("extlog.alerting")
	}

	// Создаём общий rate limiter для всех каналов
	rateLimitWindow := config.RateLimitWindow
	if rateLimitWindow == 0 {
		rateLimitWindow = DefaultRateLimitWindow
	}
	rateLimiter := NewRateLimiter(rateLimitWindow)

	// Создаём именованные каналы. Rate limiter передаётся как nil в
	// индивидуальные каналы — rate limiting применяется один раз на уровне
	// MultiChannelAlerter, чтобы все каналы получали алерт или ни один.
	namedChannels := make(map[string]Alerter)

	// Webhook канал
	if config.Webhook.Enabled {
		webhookAlerter, err := NewWebhookAlerter(config.Webhook, nil, diag)
		if err != nil {
			return nil, fmt.Errorf("создание webhook alerter: %w", err)
		}
		namedChannels[ChannelWebhook] = webhookAlerter
	}

	if len(namedChannels) == 0 {
		diag.Warning("alerting включён, но нет настроенных каналов — используется NopAlerter")
		return NewNopAlerter(), nil
	}

	return NewMultiChannelAlerter(namedChannels, rateLimiter, diag), nil
}
