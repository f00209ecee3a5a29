package alerting

import (
	"context"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// Handler — мост между фасилити логирования и Alerter.
// Подключается к логгеру как обычный handler и превращает записи с
// уровнем не ниже minLevel в алерты.
//
// Rate limiting применяется внутри Alerter по коду алерта, поэтому
// повторяющиеся записи одного логгера и уровня не создают шторм.
type Handler struct {
	alerter  Alerter
	minLevel logging.Level
}

// NewHandler создаёт Handler поверх alerter'а с порогом minLevel.
func NewHandler(alerter Alerter, minLevel logging.Level) *Handler {
	return &Handler{
		alerter:  alerter,
		minLevel: minLevel,
	}
}

// Publish превращает запись в алерт если её уровень не ниже порога.
// Всегда возвращает nil: Alerter сам гарантирует что ошибки доставки
// не пробрасываются.
func (h *Handler) Publish(ctx context.Context, r *logging.Record) error {
	if r.Level < h.minLevel {
		return nil
	}

	message := r.FormattedMessage()
	if r.Err != nil {
		message += ": " + r.Err.Error()
	}

	_ = h.alerter.Send(ctx, Alert{ //nolint:errcheck // Send всегда возвращает nil
		Code:       alertCode(r),
		Message:    message,
		LoggerName: r.LoggerName,
		Level:      r.Level,
		Timestamp:  r.Time,
	})
	return nil
}

// Close ничего не освобождает.
func (h *Handler) Close() error {
	return nil
}

// alertCode строит код алерта для rate limiting: уровень и имя логгера.
func alertCode(r *logging.Record) string {
	name := r.LoggerName
	if name == "" {
		name = "root"
	}
	return r.Level.String() + ":" + name
}
