// Package alerting предоставляет интерфейс и реализации для отправки алертов
// о критичных лог-записях. Поддерживает webhook канал с rate limiting и
// мост-handler для подключения к фасилити логирования.
package alerting

import (
	"context"
	"time"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// Имена каналов алертинга.
const (
	// ChannelWebhook — имя webhook канала.
	ChannelWebhook = "webhook"
)

// Alert представляет данные для отправки алерта.
type Alert struct {
	// Code — код алерта для rate limiting и идентификации.
	Code string

	// Message — человекочитаемое сообщение.
	Message string

	// LoggerName — имя логгера, эмитировавшего запись.
	LoggerName string

	// Level — уровень лог-записи.
	Level logging.Level

	// Timestamp — время возникновения записи.
	Timestamp time.Time
}

// Alerter определяет интерфейс для отправки алертов.
// Реализации: WebhookAlerter, MultiChannelAlerter, NopAlerter.
//
// ВАЖНО: Alerter не должен прерывать работу приложения при ошибках отправки.
// Все ошибки логируются, приложение продолжает работу.
//
// Send() всегда возвращает nil для обеспечения устойчивости приложения.
// Ошибки HTTP, rate limiting и другие проблемы логируются, но не
// возвращаются caller'у. Это предотвращает каскадные ошибки когда
// alerting infrastructure недоступна.
type Alerter interface {
	// Send отправляет алерт через настроенные каналы.
	// ВСЕГДА возвращает nil (ошибки логируются, не возвращаются).
	//
	// Rate limiting применяется по Code — если алерт с таким кодом
	// был отправлен недавно (в пределах RateLimitWindow), Send возвращает
	// nil без фактической отправки.
	Send(ctx context.Context, alert Alert) error
}
