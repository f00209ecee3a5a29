package alerting

import (
	"context"
	"sort"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// MultiChannelAlerter отправляет алерты через несколько каналов.
type MultiChannelAlerter struct {
	channels     map[string]Alerter
	channelNames []string     // отсортированные имена каналов для детерминистичного порядка
	rateLimiter  *RateLimiter // rate limiter на уровне multi-channel (общий для всех каналов)
	diag         *logging.Logger
}

// NewMultiChannelAlerter создаёт alerter с несколькими каналами.
// rateLimiter применяется ОДИН РАЗ перед отправкой во все каналы (а не в каждом канале отдельно).
func NewMultiChannelAlerter(channels map[string]Alerter, rateLimiter *RateLimiter, diag *logging.Logger) *MultiChannelAlerter {
	// Сортируем имена каналов для детерминистичного порядка отправки
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	if diag == nil {
		diag = logging.GetLogger("extlog.alerting")
	}

	return &MultiChannelAlerter{
		channels:     channels,
		channelNames: names,
		rateLimiter:  rateLimiter,
		diag:         diag,
	}
}

// Send отправляет алерт через все настроенные каналы.
// Rate limiting проверяется ОДИН РАЗ на уровне MultiChannelAlerter — если алерт подавлен,
// он не отправляется ни в один канал. Это предотвращает ситуацию, когда первый канал
// "съедает" rate limit и остальные каналы не получают алерт.
// Каналы обрабатываются в алфавитном порядке для предсказуемого поведения.
// Ошибки логируются внутри каждого канала, этот метод всегда возвращает nil.
func (m *MultiChannelAlerter) Send(ctx context.Context, alert Alert) error {
	// Rate limiting на уровне multi-channel — единая проверка для всех каналов
	if m.rateLimiter != nil && !m.rateLimiter.Allow(alert.Code) {
		m.diag.Log(logging.LevelFine, "алерт {0} подавлен rate limiter", alert.Code)
		return nil
	}

	sentCount := 0
	for _, name := range m.channelNames {
		// Проверяем контекст перед отправкой в каждый канал
		select {
		case <-ctx.Done():
			return nil // Отмена — не ошибка
		default:
		}

		_ = m.channels[name].Send(ctx, alert) //nolint:errcheck // ошибки логируются внутри канала
		sentCount++
	}

	if sentCount > 0 {
		m.diag.Log(logging.LevelFine, "рассылка алерта {0} завершена, каналов: {1}",
			alert.Code, sentCount)
	}
	return nil
}
