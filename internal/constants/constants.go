// Package constants содержит константы, используемые в проекте extlog.
// Константы сгруппированы по функциональному назначению.
package constants

// Константы приложения.
const (
	// AppName - имя приложения, используется в метриках и трейсинге.
	AppName = "extlog"

	// CheckToolName - имя CLI утилиты проверки конфигурации логирования.
	CheckToolName = "extlog-check"

	// EnvPrefix - префикс всех переменных окружения приложения.
	EnvPrefix = "EXTLOG_"
)

// Переменные окружения.
const (
	// EnvConfigPath - путь к YAML файлу конфигурации.
	EnvConfigPath = "EXTLOG_CONFIG"

	// EnvOutputFormat - формат вывода отчёта CLI (json, text).
	EnvOutputFormat = "EXTLOG_OUTPUT_FORMAT"
)

// Команды CLI утилиты extlog-check.
const (
	// ActCheck - проверка конфигурации логирования без эмиссии.
	ActCheck = "check"

	// ActSelftest - проверка конфигурации с тестовой эмиссией записей
	// через ExtendedLogger на всех уровнях.
	ActSelftest = "selftest"
)

// Коды завершения процесса.
const (
	// ExitSuccess - успешное завершение.
	ExitSuccess = 0

	// ExitError - общая ошибка выполнения.
	ExitError = 1

	// ExitConfigError - ошибка загрузки или валидации конфигурации.
	ExitConfigError = 2
)

// Имена корневых логгеров самодиагностики.
const (
	// SelftestLoggerName - имя логгера для тестовой эмиссии.
	SelftestLoggerName = "extlog.selftest"
)
