package logging

import "context"

// Handler принимает опубликованные записи лога и доставляет их в sink
// (поток, файл, slog, метрики, алерты, span events).
//
// Реализации: StreamHandler, SlogHandler, NopHandler, а также bridge
// handlers в пакетах metrics, alerting и tracing.
//
// Publish обязан быть безопасным для конкурентных вызовов. Ошибки
// Publish не прерывают эмиссию — логгер считает их и продолжает
// доставку в остальные handlers.
type Handler interface {
	// Publish доставляет запись. ctx передаётся из *Context вариантов
	// эмиссии (для span events и отмены), иначе context.Background().
	Publish(ctx context.Context, r *Record) error

	// Close освобождает ресурсы handler (файлы, соединения).
	Close() error
}

// NopHandler — реализация Handler, которая ничего не делает.
// Используется в тестах для отключения вывода.
type NopHandler struct{}

// NewNopHandler создаёт Handler, который игнорирует все записи.
func NewNopHandler() *NopHandler {
	return &NopHandler{}
}

// Publish ничего не делает.
func (n *NopHandler) Publish(_ context.Context, _ *Record) error {
	return nil
}

// Close ничего не делает.
func (n *NopHandler) Close() error {
	return nil
}
