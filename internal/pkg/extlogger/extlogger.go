// Package extlogger предоставляет декоратор над logging.Logger с
// дополнительной операцией отладочного логирования: DebugLog эмитирует
// запись на настроенном debug-уровне, автоматически добавляя имя
// текущей горутины в конец сообщения.
//
// Все остальные операции logging.Logger декоратор пробрасывает без
// изменений — ExtendedLogger можно использовать как полную замену
// обёрнутого логгера.
package extlogger

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// ExtendedLogger — декоратор над logging.Logger.
//
// Хранит разделяемую ссылку на обёрнутый логгер (не копию): изменения
// порога, handlers и фильтров через любой экземпляр видны всем
// держателям. Оба поля фиксируются при создании и не меняются за время
// жизни декоратора.
type ExtendedLogger struct {
	logger     *logging.Logger
	debugLevel logging.Level
}

// New создаёт новый ExtendedLogger.
//
// Аргументы не валидируются: nil logger допустим и приведёт к панике
// при первом использовании, как и прямое обращение к nil логгеру.
func New(logger *logging.Logger, debugLevel logging.Level) *ExtendedLogger {
	return &ExtendedLogger{
		logger:     logger,
		debugLevel: debugLevel,
	}
}

// IsDebugLoggable возвращает true если обёрнутый логгер эмитирует
// записи на настроенном debug-уровне (с учётом наследования порога
// от родительских логгеров).
func (e *ExtendedLogger) IsDebugLoggable() bool {
	return e.logger.IsLoggable(e.debugLevel)
}

// DebugLevel возвращает настроенный debug-уровень.
func (e *ExtendedLogger) DebugLevel() logging.Level {
	return e.debugLevel
}

// DebugLog эмитирует отладочную запись на настроенном debug-уровне,
// добавляя имя текущей горутины в конец сообщения.
//
// Если debug-уровень не проходит порог — возвращается сразу, без
// аллокации массива параметров и форматирования.
//
// К параметрам вызова добавляется один завершающий слот с именем
// горутины, а к шаблону — суффикс " on thread {N}", где N — индекс
// этого слота. Плейсхолдеры самого шаблона не перенумеровываются.
// Следствие: при вызове без параметров имя горутины занимает слот 0,
// и плейсхолдер {0} в шаблоне вызывающего (если есть) тоже получит
// имя горутины.
func (e *ExtendedLogger) DebugLog(messageTemplate string, args ...any) {
	if !e.logger.IsLoggable(e.debugLevel) {
		return
	}

	messageArguments := make([]any, len(args)+1)
	copy(messageArguments, args)
	last := len(messageArguments) - 1
	messageArguments[last] = goroutineName()

	e.logger.Log(e.debugLevel,
		"[DEBUG] "+messageTemplate+" on thread {"+strconv.Itoa(last)+"}",
		messageArguments...)
}

// String возвращает текстовое представление для диагностики.
func (e *ExtendedLogger) String() string {
	return fmt.Sprintf("ExtendedLogger{logger=%s, debugLevel=%s}",
		e.logger.Name(), e.debugLevel)
}

// Equal возвращает true если other обёртывает тот же логгер с тем же
// debug-уровнем.
func (e *ExtendedLogger) Equal(other *ExtendedLogger) bool {
	if other == nil {
		return false
	}
	return e.logger == other.logger && e.debugLevel == other.debugLevel
}

// Hash возвращает хэш, согласованный с Equal: равные декораторы имеют
// одинаковый хэш.
func (e *ExtendedLogger) Hash() uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%p|%d", e.logger, e.debugLevel))
}

// Далее — операции, пробрасываемые в обёрнутый логгер без изменений.

// Name возвращает имя обёрнутого логгера.
func (e *ExtendedLogger) Name() string { return e.logger.Name() }

// IsLoggable проверяет эффективный порог для произвольного уровня.
func (e *ExtendedLogger) IsLoggable(level logging.Level) bool { return e.logger.IsLoggable(level) }

// Log эмитирует запись с указанным уровнем, шаблоном и параметрами.
func (e *ExtendedLogger) Log(level logging.Level, msg string, params ...any) {
	e.logger.Log(level, msg, params...)
}

// LogContext эмитирует запись, передавая контекст в handlers.
func (e *ExtendedLogger) LogContext(ctx context.Context, level logging.Level, msg string, params ...any) {
	e.logger.LogContext(ctx, level, msg, params...)
}

// LogCause эмитирует запись с приложенной ошибкой.
func (e *ExtendedLogger) LogCause(level logging.Level, msg string, err error) {
	e.logger.LogCause(level, msg, err)
}

// LogRecord эмитирует заранее построенную запись.
func (e *ExtendedLogger) LogRecord(r *logging.Record) { e.logger.LogRecord(r) }

// Logp эмитирует запись с указанием источника.
func (e *ExtendedLogger) Logp(level logging.Level, sourceClass, sourceMethod, msg string, params ...any) {
	e.logger.Logp(level, sourceClass, sourceMethod, msg, params...)
}

// LogpCause эмитирует запись с источником и приложенной ошибкой.
func (e *ExtendedLogger) LogpCause(level logging.Level, sourceClass, sourceMethod, msg string, err error) {
	e.logger.LogpCause(level, sourceClass, sourceMethod, msg, err)
}

// Logrb эмитирует запись с явно заданным resource bundle.
func (e *ExtendedLogger) Logrb(level logging.Level, sourceClass, sourceMethod, bundleName, msg string, params ...any) {
	e.logger.Logrb(level, sourceClass, sourceMethod, bundleName, msg, params...)
}

// LogrbCause — вариант Logrb с приложенной ошибкой.
func (e *ExtendedLogger) LogrbCause(level logging.Level, sourceClass, sourceMethod, bundleName, msg string, err error) {
	e.logger.LogrbCause(level, sourceClass, sourceMethod, bundleName, msg, err)
}

// Entering трассирует вход в метод.
func (e *ExtendedLogger) Entering(sourceClass, sourceMethod string) {
	e.logger.Entering(sourceClass, sourceMethod)
}

// EnteringParams трассирует вход в метод с параметрами.
func (e *ExtendedLogger) EnteringParams(sourceClass, sourceMethod string, params ...any) {
	e.logger.EnteringParams(sourceClass, sourceMethod, params...)
}

// Exiting трассирует выход из метода.
func (e *ExtendedLogger) Exiting(sourceClass, sourceMethod string) {
	e.logger.Exiting(sourceClass, sourceMethod)
}

// ExitingResult трассирует выход из метода с результатом.
func (e *ExtendedLogger) ExitingResult(sourceClass, sourceMethod string, result any) {
	e.logger.ExitingResult(sourceClass, sourceMethod, result)
}

// Throwing трассирует проброс ошибки.
func (e *ExtendedLogger) Throwing(sourceClass, sourceMethod string, err error) {
	e.logger.Throwing(sourceClass, sourceMethod, err)
}

// Severe эмитирует запись уровня SEVERE.
func (e *ExtendedLogger) Severe(msg string) { e.logger.Severe(msg) }

// Warning эмитирует запись уровня WARNING.
func (e *ExtendedLogger) Warning(msg string) { e.logger.Warning(msg) }

// Info эмитирует запись уровня INFO.
func (e *ExtendedLogger) Info(msg string) { e.logger.Info(msg) }

// Config эмитирует запись уровня CONFIG.
func (e *ExtendedLogger) Config(msg string) { e.logger.Config(msg) }

// Fine эмитирует запись уровня FINE.
func (e *ExtendedLogger) Fine(msg string) { e.logger.Fine(msg) }

// Finer эмитирует запись уровня FINER.
func (e *ExtendedLogger) Finer(msg string) { e.logger.Finer(msg) }

// Finest эмитирует запись уровня FINEST.
func (e *ExtendedLogger) Finest(msg string) { e.logger.Finest(msg) }

// Level возвращает собственный порог обёрнутого логгера (nil если
// порог наследуется).
func (e *ExtendedLogger) Level() *logging.Level { return e.logger.Level() }

// SetLevel устанавливает порог обёрнутого логгера.
func (e *ExtendedLogger) SetLevel(level logging.Level) { e.logger.SetLevel(level) }

// ClearLevel сбрасывает собственный порог обёрнутого логгера.
func (e *ExtendedLogger) ClearLevel() { e.logger.ClearLevel() }

// EffectiveLevel возвращает действующий порог обёрнутого логгера.
func (e *ExtendedLogger) EffectiveLevel() logging.Level { return e.logger.EffectiveLevel() }

// Filter возвращает фильтр обёрнутого логгера.
func (e *ExtendedLogger) Filter() logging.Filter { return e.logger.Filter() }

// SetFilter устанавливает фильтр обёрнутого логгера.
func (e *ExtendedLogger) SetFilter(f logging.Filter) { e.logger.SetFilter(f) }

// AddHandler добавляет handler к обёрнутому логгеру.
func (e *ExtendedLogger) AddHandler(h logging.Handler) { e.logger.AddHandler(h) }

// RemoveHandler удаляет handler обёрнутого логгера.
func (e *ExtendedLogger) RemoveHandler(h logging.Handler) { e.logger.RemoveHandler(h) }

// Handlers возвращает handlers обёрнутого логгера.
func (e *ExtendedLogger) Handlers() []logging.Handler { return e.logger.Handlers() }

// Parent возвращает родителя обёрнутого логгера.
func (e *ExtendedLogger) Parent() *logging.Logger { return e.logger.Parent() }

// SetParent переустанавливает родителя обёрнутого логгера.
func (e *ExtendedLogger) SetParent(parent *logging.Logger) { e.logger.SetParent(parent) }

// UseParentHandlers сообщает, публикуются ли записи в handlers родителей.
func (e *ExtendedLogger) UseParentHandlers() bool { return e.logger.UseParentHandlers() }

// SetUseParentHandlers управляет публикацией в handlers родителей.
func (e *ExtendedLogger) SetUseParentHandlers(use bool) { e.logger.SetUseParentHandlers(use) }

// Bundle возвращает resource bundle обёрнутого логгера.
func (e *ExtendedLogger) Bundle() logging.Bundle { return e.logger.Bundle() }

// BundleName возвращает имя resource bundle обёрнутого логгера.
func (e *ExtendedLogger) BundleName() string { return e.logger.BundleName() }

// SetBundle ассоциирует resource bundle с обёрнутым логгером.
func (e *ExtendedLogger) SetBundle(b logging.Bundle) { e.logger.SetBundle(b) }
