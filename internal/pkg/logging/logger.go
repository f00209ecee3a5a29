// Package logging предоставляет иерархическую подсистему логирования:
// именованные логгеры с наследованием порога от родителя, handlers,
// фильтры и resource bundles для локализации шаблонов сообщений.
//
// Сообщения используют позиционные плейсхолдеры:
//
//	logger.Log(logging.LevelInfo, "база {0} обновлена за {1} мс", name, elapsed)
//
// Все методы Logger безопасны для конкурентного вызова. Порядок
// конкурентных записей определяется только сериализацией в handlers.
package logging

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Logger — именованный узел иерархии логирования.
// Создаётся через GetLogger/Root, не напрямую.
//
// Порог (level) опционален: логгер без собственного порога наследует
// эффективный порог от ближайшего родителя, у которого порог задан.
type Logger struct {
	name string

	mu                sync.RWMutex
	parent            *Logger
	level             *Level
	handlers          []Handler
	filter            Filter
	bundle            Bundle
	bundleName        string
	useParentHandlers bool

	// publishErrors — счётчик ошибок Publish; ошибки handlers не
	// прерывают эмиссию и не возвращаются вызывающему.
	publishErrors atomic.Uint64
}

// Name возвращает имя логгера. Корневой логгер имеет пустое имя.
func (l *Logger) Name() string {
	return l.name
}

// Parent возвращает родительский логгер (nil для корневого).
func (l *Logger) Parent() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.parent
}

// SetParent переустанавливает родителя. Используется реестром;
// публичен для совместимости с программной пересборкой иерархии.
func (l *Logger) SetParent(parent *Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.parent = parent
}

// Level возвращает собственный порог логгера или nil если порог
// наследуется от родителя.
func (l *Logger) Level() *Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel устанавливает собственный порог логгера.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = &level
}

// ClearLevel сбрасывает собственный порог — логгер снова наследует
// порог родителя.
func (l *Logger) ClearLevel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = nil
}

// EffectiveLevel возвращает действующий порог: собственный порог или
// порог ближайшего родителя. Если порог не задан нигде в цепочке
// (возможно только при программной пересборке иерархии), возвращает
// LevelInfo.
func (l *Logger) EffectiveLevel() Level {
	for lg := l; lg != nil; lg = lg.Parent() {
		if level := lg.Level(); level != nil {
			return *level
		}
	}
	return LevelInfo
}

// IsLoggable возвращает true если запись уровня level будет эмитирована
// с учётом эффективного порога.
func (l *Logger) IsLoggable(level Level) bool {
	if level == LevelOff {
		return false
	}
	return level >= l.EffectiveLevel()
}

// Filter возвращает текущий фильтр (nil если не задан).
func (l *Logger) Filter() Filter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

// SetFilter устанавливает фильтр записей. nil снимает фильтр.
func (l *Logger) SetFilter(f Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f
}

// AddHandler добавляет handler к логгеру.
func (l *Logger) AddHandler(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

// RemoveHandler удаляет ранее добавленный handler (сравнение по
// идентичности). Отсутствующий handler игнорируется.
func (l *Logger) RemoveHandler(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.handlers {
		if existing == h {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			return
		}
	}
}

// Handlers возвращает копию списка handlers.
func (l *Logger) Handlers() []Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]Handler, len(l.handlers))
	copy(snapshot, l.handlers)
	return snapshot
}

// UseParentHandlers сообщает, публикуются ли записи также в handlers
// родительской цепочки.
func (l *Logger) UseParentHandlers() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.useParentHandlers
}

// SetUseParentHandlers управляет публикацией в handlers родителей.
func (l *Logger) SetUseParentHandlers(use bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.useParentHandlers = use
}

// Bundle возвращает resource bundle логгера (nil если не задан).
func (l *Logger) Bundle() Bundle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bundle
}

// BundleName возвращает имя resource bundle логгера.
func (l *Logger) BundleName() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bundleName
}

// SetBundle ассоциирует resource bundle с логгером.
// Все последующие записи ищут шаблон в bundle по ключу Message.
func (l *Logger) SetBundle(b Bundle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bundle = b
	if b != nil {
		l.bundleName = b.Name()
	} else {
		l.bundleName = ""
	}
}

// PublishErrorCount возвращает количество ошибок Publish с момента
// создания логгера. Используется в диагностике и тестах.
func (l *Logger) PublishErrorCount() uint64 {
	return l.publishErrors.Load()
}

// publishErrorObserver хранит func(loggerName string) или nil.
var publishErrorObserver atomic.Value

// SetPublishErrorObserver устанавливает наблюдателя ошибок публикации.
// Наблюдатель вызывается на каждую ошибку Publish с именем
// логгера-владельца записи; nil снимает наблюдателя. Наблюдатель не
// должен эмитировать записи — это приведёт к рекурсии при повторной
// ошибке handler.
func SetPublishErrorObserver(fn func(loggerName string)) {
	publishErrorObserver.Store(fn)
}

func notifyPublishError(loggerName string) {
	if fn, ok := publishErrorObserver.Load().(func(string)); ok && fn != nil {
		fn(loggerName)
	}
}

// Log эмитирует запись с указанным уровнем, шаблоном и параметрами.
func (l *Logger) Log(level Level, msg string, params ...any) {
	l.emit(context.Background(), level, msg, params, nil, "", "", nil, "")
}

// LogContext эмитирует запись, пробрасывая ctx в handlers.
// Используется для корреляции записей со span активной трассы.
func (l *Logger) LogContext(ctx context.Context, level Level, msg string, params ...any) {
	l.emit(ctx, level, msg, params, nil, "", "", nil, "")
}

// LogCause эмитирует запись с приложенной ошибкой.
func (l *Logger) LogCause(level Level, msg string, err error) {
	l.emit(context.Background(), level, msg, nil, err, "", "", nil, "")
}

// LogRecord эмитирует заранее построенную запись.
// Проверяются эффективный порог и фильтр; пустые Time, LoggerName и
// Bundle заполняются из логгера.
func (l *Logger) LogRecord(r *Record) {
	l.publish(context.Background(), r)
}

// Logp эмитирует запись с указанием источника (class/method).
func (l *Logger) Logp(level Level, sourceClass, sourceMethod, msg string, params ...any) {
	l.emit(context.Background(), level, msg, params, nil, sourceClass, sourceMethod, nil, "")
}

// LogpCause эмитирует запись с источником и приложенной ошибкой.
func (l *Logger) LogpCause(level Level, sourceClass, sourceMethod, msg string, err error) {
	l.emit(context.Background(), level, msg, nil, err, sourceClass, sourceMethod, nil, "")
}

// Logrb эмитирует запись с явно заданным resource bundle.
// bundleName ищется в реестре bundle (RegisterBundle); неизвестное имя
// не является ошибкой — msg используется как обычный шаблон.
func (l *Logger) Logrb(level Level, sourceClass, sourceMethod, bundleName, msg string, params ...any) {
	l.emit(context.Background(), level, msg, params, nil, sourceClass, sourceMethod, LookupBundle(bundleName), bundleName)
}

// LogrbCause — вариант Logrb с приложенной ошибкой вместо параметров.
func (l *Logger) LogrbCause(level Level, sourceClass, sourceMethod, bundleName, msg string, err error) {
	l.emit(context.Background(), level, msg, nil, err, sourceClass, sourceMethod, LookupBundle(bundleName), bundleName)
}

// Entering трассирует вход в метод (уровень FINER, сообщение "ENTRY").
func (l *Logger) Entering(sourceClass, sourceMethod string) {
	l.Logp(LevelFiner, sourceClass, sourceMethod, "ENTRY")
}

// EnteringParams трассирует вход в метод с параметрами.
// Сообщение повторяет формат java.util.logging: "ENTRY {0} {1} ...".
func (l *Logger) EnteringParams(sourceClass, sourceMethod string, params ...any) {
	if len(params) == 0 {
		l.Entering(sourceClass, sourceMethod)
		return
	}
	var b strings.Builder
	b.WriteString("ENTRY")
	for i := range params {
		b.WriteString(" {")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("}")
	}
	l.Logp(LevelFiner, sourceClass, sourceMethod, b.String(), params...)
}

// Exiting трассирует выход из метода (уровень FINER, сообщение "RETURN").
func (l *Logger) Exiting(sourceClass, sourceMethod string) {
	l.Logp(LevelFiner, sourceClass, sourceMethod, "RETURN")
}

// ExitingResult трассирует выход из метода с результатом.
func (l *Logger) ExitingResult(sourceClass, sourceMethod string, result any) {
	l.Logp(LevelFiner, sourceClass, sourceMethod, "RETURN {0}", result)
}

// Throwing трассирует проброс ошибки (уровень FINER, сообщение "THROW").
func (l *Logger) Throwing(sourceClass, sourceMethod string, err error) {
	l.LogpCause(LevelFiner, sourceClass, sourceMethod, "THROW", err)
}

// Severe эмитирует запись уровня SEVERE.
func (l *Logger) Severe(msg string) { l.Log(LevelSevere, msg) }

// Warning эмитирует запись уровня WARNING.
func (l *Logger) Warning(msg string) { l.Log(LevelWarning, msg) }

// Info эмитирует запись уровня INFO.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg) }

// Config эмитирует запись уровня CONFIG.
func (l *Logger) Config(msg string) { l.Log(LevelConfig, msg) }

// Fine эмитирует запись уровня FINE.
func (l *Logger) Fine(msg string) { l.Log(LevelFine, msg) }

// Finer эмитирует запись уровня FINER.
func (l *Logger) Finer(msg string) { l.Log(LevelFiner, msg) }

// Finest эмитирует запись уровня FINEST.
func (l *Logger) Finest(msg string) { l.Log(LevelFinest, msg) }

// emit строит запись и публикует её. Bundle записи — явно переданный
// (Logrb) либо bundle логгера.
func (l *Logger) emit(ctx context.Context, level Level, msg string, params []any,
	err error, sourceClass, sourceMethod string, bundle Bundle, bundleName string) {

	if !l.IsLoggable(level) {
		return
	}
	if bundle == nil {
		bundle = l.Bundle()
		bundleName = l.BundleName()
	}
	l.publish(ctx, &Record{
		Time:         time.Now(),
		Level:        level,
		LoggerName:   l.name,
		Message:      msg,
		Params:       params,
		Err:          err,
		SourceClass:  sourceClass,
		SourceMethod: sourceMethod,
		Bundle:       bundle,
		BundleName:   bundleName,
	})
}

// publish доставляет запись в handlers логгера и его родительской
// цепочки. Порог и фильтр родителей не перепроверяются — решение об
// эмиссии принимает логгер-владелец записи.
func (l *Logger) publish(ctx context.Context, r *Record) {
	if r == nil || !l.IsLoggable(r.Level) {
		return
	}
	if f := l.Filter(); f != nil && !f.IsLoggable(r) {
		return
	}
	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	if r.LoggerName == "" {
		r.LoggerName = l.name
	}
	if r.Bundle == nil && r.BundleName == "" {
		r.Bundle = l.Bundle()
		r.BundleName = l.BundleName()
	}

	for lg := l; lg != nil; {
		for _, h := range lg.Handlers() {
			if err := h.Publish(ctx, r); err != nil {
				l.publishErrors.Add(1)
				notifyPublishError(r.LoggerName)
			}
		}
		if !lg.UseParentHandlers() {
			return
		}
		lg = lg.Parent()
	}
}
