// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn, перехватывая stdout, и возвращает вывод.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr выполняет fn, перехватывая stderr, и возвращает вывод.
// Используется для проверки bootstrap предупреждений подсистемы логирования,
// которые пишутся напрямую в stderr.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

// capture подменяет *target на pipe, выполняет fn и возвращает записанное.
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	old := *target
	r, w, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe")

	*target = w
	defer func() { *target = old }()

	fn()

	_ = w.Close() //nolint:errcheck // test helper pipe close

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err, "не удалось прочитать перехваченный вывод")
	return buf.String()
}
