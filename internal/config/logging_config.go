package config

import (
	"fmt"

	"github.com/Kargones/extlog/internal/pkg/apperrors"
	"github.com/Kargones/extlog/internal/pkg/logging"
)

// LoggingConfig содержит настройки корневого логгера.
type LoggingConfig struct {
	// Level — порог корневого логгера (FINEST..SEVERE, OFF, ALL,
	// case-insensitive, либо числовое значение).
	Level string `yaml:"level" env:"EXTLOG_LOG_LEVEL" env-default:"INFO"`

	// Format — формат вывода: "json" или "text".
	Format string `yaml:"format" env:"EXTLOG_LOG_FORMAT" env-default:"text"`

	// Output — куда выводить логи: "stderr" или "file".
	Output string `yaml:"output" env:"EXTLOG_LOG_OUTPUT" env-default:"stderr"`

	// FilePath — путь к файлу логов (при output="file").
	FilePath string `yaml:"filePath" env:"EXTLOG_LOG_FILE_PATH" env-default:"/var/log/extlog.log"`

	// MaxSize — максимальный размер файла в мегабайтах перед ротацией.
	MaxSize int `yaml:"maxSize" env:"EXTLOG_LOG_MAX_SIZE" env-default:"100"`

	// MaxBackups — количество backup файлов.
	MaxBackups int `yaml:"maxBackups" env:"EXTLOG_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge — максимальный возраст backup файлов в днях.
	MaxAge int `yaml:"maxAge" env:"EXTLOG_LOG_MAX_AGE" env-default:"7"`

	// Compress — сжимать ли backup файлы в gzip.
	Compress bool `yaml:"compress" env:"EXTLOG_LOG_COMPRESS" env-default:"true"`
}

// validateLoggingConfig проверяет корректность настроек логирования.
func validateLoggingConfig(lc *LoggingConfig) error {
	if _, err := logging.ParseLevel(lc.Level); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			fmt.Sprintf("неизвестный уровень логирования %q", lc.Level), err)
	}

	switch lc.Format {
	case logging.FormatJSON, logging.FormatText:
	default:
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			fmt.Sprintf("неизвестный формат логов %q (ожидается json или text)", lc.Format), nil)
	}

	switch lc.Output {
	case logging.OutputStderr:
	case logging.OutputFile:
		if lc.FilePath == "" {
			return apperrors.NewAppError(apperrors.ErrConfigValidate,
				"filePath обязателен при output=file", nil)
		}
		if lc.MaxSize <= 0 {
			return apperrors.NewAppError(apperrors.ErrConfigValidate,
				"maxSize должен быть положительным", nil)
		}
		if lc.MaxBackups < 0 || lc.MaxAge < 0 {
			return apperrors.NewAppError(apperrors.ErrConfigValidate,
				"maxBackups и maxAge не могут быть отрицательными", nil)
		}
	default:
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			fmt.Sprintf("неизвестный тип вывода логов %q (ожидается stderr или file)", lc.Output), nil)
	}

	return nil
}

// ToLoggingConfig преобразует в конфигурацию пакета logging.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:      lc.Level,
		Format:     lc.Format,
		Output:     lc.Output,
		FilePath:   lc.FilePath,
		MaxSize:    lc.MaxSize,
		MaxBackups: lc.MaxBackups,
		MaxAge:     lc.MaxAge,
		Compress:   lc.Compress,
	}
}
