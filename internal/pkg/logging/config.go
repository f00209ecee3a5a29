package logging

// Поддерживаемые форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Поддерживаемые типы вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
// Единый источник истины — используется в Configure и config.DefaultLoggingConfig.
const (
	DefaultLevel      = "INFO"
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/extlog.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки корневого логгера.
type Config struct {
	// Level определяет порог корневого логгера.
	// Принимает канонические имена уровней (FINEST..SEVERE, OFF, ALL,
	// case-insensitive). По умолчанию: "INFO".
	Level string

	// Format определяет формат вывода: "json" или "text".
	// По умолчанию: "text".
	Format string

	// Output определяет куда выводить логи: "stderr" или "file".
	// По умолчанию: "stderr".
	Output string

	// FilePath задаёт путь к файлу логов (при output="file").
	// По умолчанию: "/var/log/extlog.log".
	FilePath string

	// MaxSize задаёт максимальный размер файла в мегабайтах
	// перед ротацией. По умолчанию: 100 МБ.
	MaxSize int

	// MaxBackups задаёт количество backup файлов.
	// По умолчанию: 3.
	MaxBackups int

	// MaxAge задаёт максимальный возраст backup файлов в днях.
	// По умолчанию: 7 дней.
	MaxAge int

	// Compress определяет сжимать ли backup файлы в gzip.
	// По умолчанию: true.
	Compress bool
}
