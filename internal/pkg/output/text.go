package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// TextWriter форматирует Result в человекочитаемый текст.
type TextWriter struct{}

// NewTextWriter создаёт новый TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write форматирует result в текст и записывает в w.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	// Базовый формат: Command: status
	if _, err := fmt.Fprintf(w, "%s: %s\n", result.Command, result.Status); err != nil {
		return err
	}

	// Ошибка
	if result.Error != nil {
		if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message); err != nil {
			return err
		}
	}

	// Data — выводим как JSON если не пустое
	if result.Data != nil {
		dataJSON, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("не удалось сериализовать Data: %w", err)
		}
		if _, err := fmt.Fprintf(w, "Data: %s\n", dataJSON); err != nil {
			return err
		}
	}

	// Метаданные выполнения
	if result.Metadata != nil {
		if result.Metadata.DurationMs > 0 {
			if _, err := fmt.Fprintf(w, "Время выполнения: %s\n", formatDuration(result.Metadata.DurationMs)); err != nil {
				return err
			}
		}
		if result.Metadata.TraceID != "" {
			if _, err := fmt.Fprintf(w, "Trace ID: %s\n", result.Metadata.TraceID); err != nil {
				return err
			}
		}
	}

	return nil
}

// formatDuration форматирует duration в человекочитаемый вид.
// Поддерживает миллисекунды, секунды и минуты.
// Используем int64 для избежания overflow на 32-bit системах.
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dмс", ms)
	}
	sec := ms / 1000
	if sec < 60 {
		// Для секунд показываем десятичную часть.
		secFloat := float64(ms) / 1000
		return fmt.Sprintf("%.1fс", secFloat)
	}
	min := sec / 60
	secRem := sec % 60
	return fmt.Sprintf("%dм %dс", min, secRem)
}
