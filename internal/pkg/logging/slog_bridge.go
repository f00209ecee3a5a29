package logging

import (
	"context"
	"log/slog"
)

// SlogHandler пересылает записи в slog.Logger из stdlib.
// Используется для интеграции с хост-процессами, уже настроившими
// структурированное логирование через slog.
type SlogHandler struct {
	logger *slog.Logger
}

// NewSlogHandler создаёт SlogHandler поверх указанного slog.Logger.
// При nil logger используется slog.Default() с предупреждением.
func NewSlogHandler(logger *slog.Logger) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
		logger.Warn("logging: nil slog.Logger передан в NewSlogHandler, используется default")
	}
	return &SlogHandler{logger: logger}
}

// Publish пересылает запись с атрибутами logger/source/error.
// Уровень отображается через Level.Slog().
func (h *SlogHandler) Publish(ctx context.Context, r *Record) error {
	attrs := make([]any, 0, 6)
	if r.LoggerName != "" {
		attrs = append(attrs, slog.String("logger", r.LoggerName))
	}
	if r.SourceClass != "" || r.SourceMethod != "" {
		attrs = append(attrs, slog.String("source", r.SourceClass+"."+r.SourceMethod))
	}
	if r.Err != nil {
		attrs = append(attrs, slog.String("error", r.Err.Error()))
	}
	h.logger.Log(ctx, r.Level.Slog(), r.FormattedMessage(), attrs...)
	return nil
}

// Close ничего не делает — жизненный цикл slog.Logger принадлежит
// хост-процессу.
func (h *SlogHandler) Close() error {
	return nil
}
