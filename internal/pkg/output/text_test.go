package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextWriter(t *testing.T) {
	writer := NewTextWriter()
	assert.NotNil(t, writer)
}

func TestTextWriter_ImplementsWriter(_ *testing.T) {
	var _ Writer = (*TextWriter)(nil)
}

func TestTextWriter_Write_SuccessResult(t *testing.T) {
	result := &Result{
		Status:  StatusSuccess,
		Command: "selftest",
	}

	writer := NewTextWriter()
	var buf bytes.Buffer
	require.NoError(t, writer.Write(&buf, result))

	assert.Equal(t, "selftest: success\n", buf.String())
}

func TestTextWriter_Write_ErrorResult(t *testing.T) {
	result := &Result{
		Status:  StatusError,
		Command: "check",
		Error: &ErrorInfo{
			Code:    "CONFIG.LOAD_FAILED",
			Message: "не удалось загрузить конфигурацию",
		},
	}

	writer := NewTextWriter()
	var buf bytes.Buffer
	require.NoError(t, writer.Write(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "check: error")
	assert.Contains(t, out, "Error [CONFIG.LOAD_FAILED]: не удалось загрузить конфигурацию")
}

func TestTextWriter_Write_WithData(t *testing.T) {
	result := &Result{
		Status:  StatusSuccess,
		Command: "selftest",
		Data:    map[string]int{"records_emitted": 7},
	}

	writer := NewTextWriter()
	var buf bytes.Buffer
	require.NoError(t, writer.Write(&buf, result))

	assert.Contains(t, buf.String(), `"records_emitted": 7`)
}

func TestTextWriter_Write_WithMetadata(t *testing.T) {
	result := &Result{
		Status:  StatusSuccess,
		Command: "selftest",
		Metadata: &Metadata{
			DurationMs: 1500,
			TraceID:    "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
			APIVersion: "v1",
		},
	}

	writer := NewTextWriter()
	var buf bytes.Buffer
	require.NoError(t, writer.Write(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "Время выполнения: 1.5с")
	assert.Contains(t, out, "Trace ID: a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6")
}

func TestTextWriter_Write_NilResult(t *testing.T) {
	writer := NewTextWriter()
	var buf bytes.Buffer
	require.NoError(t, writer.Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"миллисекунды", 500, "500мс"},
		{"секунды с десятичной частью", 1500, "1.5с"},
		{"ровно минута", 60000, "1м 0с"},
		{"минуты и секунды", 125000, "2м 5с"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.ms))
		})
	}
}

func TestNewWriter_Factory(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantJSON bool
	}{
		{"json format", "json", true},
		{"json uppercase", "JSON", true},
		{"text format", "text", false},
		{"unknown falls back to text", "xml", false},
		{"empty falls back to text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewWriter(tt.format)
			_, isJSON := writer.(*JSONWriter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}
