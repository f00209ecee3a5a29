// Package output предоставляет структуры и интерфейсы для форматирования
// результатов команд в JSON и текстовом формате.
package output

// StatusSuccess и StatusError — возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIVersion — текущая версия формата вывода.
const APIVersion = "v1"

// Result представляет структурированный результат выполнения команды.
// Используется для сериализации в JSON (EXTLOG_OUTPUT_FORMAT=json)
// или для формирования человекочитаемого вывода (EXTLOG_OUTPUT_FORMAT=text).
type Result struct {
	// Status содержит статус выполнения: "success" или "error".
	Status string `json:"status"`

	// Command содержит имя выполненной команды.
	Command string `json:"command"`

	// Data содержит command-specific payload.
	// Для каждой команды определяется свой типизированный struct.
	Data any `json:"data,omitempty"`

	// Error содержит информацию об ошибке (только при status="error").
	Error *ErrorInfo `json:"error,omitempty"`

	// Metadata содержит метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ErrorInfo содержит информацию об ошибке в структурированном виде.
// Code — машиночитаемый код ошибки (например, "CONFIG.LOAD_FAILED").
// Message — человекочитаемое описание ошибки.
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты!
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	// DurationMs — время выполнения команды в миллисекундах.
	DurationMs int64 `json:"duration_ms"`

	// TraceID — идентификатор трассировки для корреляции логов.
	// Заполняется через tracing.TraceIDFromContext(ctx) при формировании результата.
	TraceID string `json:"trace_id,omitempty"`

	// APIVersion — версия формата API для backward compatibility.
	// Текущая версия: "v1".
	APIVersion string `json:"api_version"`
}
