package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// StreamHandler пишет записи в io.Writer в текстовом или JSON формате.
// Запись сериализуется одной строкой; конкурентные Publish
// сериализуются mutex'ом.
type StreamHandler struct {
	mu     sync.Mutex
	w      io.Writer
	format string
	min    Level
}

// jsonRecord — схема JSON строки StreamHandler.
type jsonRecord struct {
	Time         string `json:"time"`
	Level        string `json:"level"`
	Logger       string `json:"logger,omitempty"`
	Message      string `json:"msg"`
	Error        string `json:"error,omitempty"`
	SourceClass  string `json:"source_class,omitempty"`
	SourceMethod string `json:"source_method,omitempty"`
}

// NewStreamHandler создаёт StreamHandler.
// format — FormatText или FormatJSON (неизвестный формат → текст).
// min — минимальный уровень записей, которые handler публикует;
// записи ниже молча отбрасываются (LevelAll пропускает все).
func NewStreamHandler(w io.Writer, format string, min Level) *StreamHandler {
	return &StreamHandler{w: w, format: format, min: min}
}

// MinLevel возвращает минимальный уровень handler.
func (h *StreamHandler) MinLevel() Level {
	return h.min
}

// Publish сериализует и записывает запись.
func (h *StreamHandler) Publish(_ context.Context, r *Record) error {
	if r.Level < h.min {
		return nil
	}
	msg := r.FormattedMessage()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.format == FormatJSON {
		rec := jsonRecord{
			Time:         r.Time.Format(time.RFC3339Nano),
			Level:        r.Level.String(),
			Logger:       r.LoggerName,
			Message:      msg,
			SourceClass:  r.SourceClass,
			SourceMethod: r.SourceMethod,
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		return json.NewEncoder(h.w).Encode(rec)
	}

	if _, err := fmt.Fprintf(h.w, "%s %s %s: %s",
		r.Time.Format(time.RFC3339), r.Level, r.LoggerName, msg); err != nil {
		return err
	}
	if r.SourceClass != "" || r.SourceMethod != "" {
		if _, err := fmt.Fprintf(h.w, " source=%s.%s", r.SourceClass, r.SourceMethod); err != nil {
			return err
		}
	}
	if r.Err != nil {
		if _, err := fmt.Fprintf(h.w, " error=%q", r.Err.Error()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(h.w)
	return err
}

// Close закрывает нижележащий writer если он реализует io.Closer.
// os.Stderr и os.Stdout не закрываются.
func (h *StreamHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.w == os.Stderr || h.w == os.Stdout {
		return nil
	}
	if closer, ok := h.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
