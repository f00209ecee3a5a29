package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewHandler создаёт Handler с заданной конфигурацией.
//
// Поддерживаемые режимы вывода (config.Output):
//   - "stderr" или "" (default): записи пишутся в os.Stderr
//   - "file": записи пишутся в файл с автоматической ротацией через lumberjack
//
// При output="file" используются параметры ротации:
//   - MaxSize: максимальный размер файла в MB (default: 100)
//   - MaxBackups: количество backup файлов (default: 3)
//   - MaxAge: возраст backup в днях (default: 7)
//   - Compress: сжатие backup в gzip (default: true)
func NewHandler(config Config) Handler {
	var w io.Writer

	switch config.Output {
	case OutputFile:
		w = newLumberjackWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		// Предупреждаем о неизвестном output, чтобы не терять логи молча
		_, _ = os.Stderr.WriteString(fmt.Sprintf( //nolint:errcheck // bootstrap stderr
			"WARNING: неизвестный logging output %q, falling back to stderr\n", config.Output))
		w = os.Stderr
	}

	return NewStreamHandler(w, config.Format, LevelAll)
}

// newLumberjackWriter создаёт io.Writer с ротацией на основе lumberjack.
// Автоматически создаёт директорию для файла логов если не существует.
// При пустом FilePath возвращает os.Stderr как fallback.
func newLumberjackWriter(config Config) io.Writer {
	if config.FilePath == "" {
		_, _ = os.Stderr.WriteString("WARNING: logging output=file but filePath is empty, falling back to stderr\n") //nolint:errcheck // bootstrap stderr
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			_, _ = os.Stderr.WriteString(fmt.Sprintf( //nolint:errcheck // bootstrap stderr
				"WARNING: не удалось создать директорию логов %q: %v, falling back to stderr\n", dir, err))
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   config.Compress,
	}
}

// Configure настраивает корневой логгер по конфигурации: устанавливает
// порог и заменяет handlers на созданный NewHandler. Прежние handlers
// закрываются. Возвращает установленный handler.
//
// Неизвестное имя уровня не является ошибкой — используется INFO
// (симметрично с fallback на stderr для неизвестного output).
func Configure(config Config) Handler {
	root := Root()

	level, err := ParseLevel(config.Level)
	if err != nil {
		_, _ = os.Stderr.WriteString(fmt.Sprintf( //nolint:errcheck // bootstrap stderr
			"WARNING: неизвестный logging level %q, используется INFO\n", config.Level))
		level = LevelInfo
	}
	root.SetLevel(level)

	handler := NewHandler(config)
	for _, h := range root.Handlers() {
		root.RemoveHandler(h)
		_ = h.Close() //nolint:errcheck // закрытие вытесненного handler — best effort
	}
	root.AddHandler(handler)
	return handler
}
