package logging

import (
	"os"
	"strings"
	"sync"
)

// registry — процессный реестр логгеров. Имена иерархические,
// разделённые точками: родителем "a.b.c" является "a.b", родителем
// всех верхнеуровневых имён — корневой логгер с пустым именем.
type registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	root    *Logger
}

var manager = newRegistry()

func newRegistry() *registry {
	root := &Logger{name: "", useParentHandlers: false}
	level := LevelInfo
	root.level = &level
	root.handlers = []Handler{NewStreamHandler(os.Stderr, FormatText, LevelAll)}
	return &registry{
		loggers: map[string]*Logger{"": root},
		root:    root,
	}
}

// Root возвращает корневой логгер. По умолчанию: порог INFO, один
// текстовый StreamHandler на stderr (настраивается через Configure).
func Root() *Logger {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.root
}

// GetLogger возвращает логгер с указанным именем, создавая его и все
// отсутствующие родительские логгеры при необходимости. Пустое имя
// возвращает корневой логгер. Повторные вызовы с одним именем
// возвращают тот же экземпляр.
func GetLogger(name string) *Logger {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.getLocked(name)
}

func (r *registry) getLocked(name string) *Logger {
	if lg, ok := r.loggers[name]; ok {
		return lg
	}

	parentName := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		parentName = name[:idx]
	}
	parent := r.getLocked(parentName)

	lg := &Logger{
		name:              name,
		parent:            parent,
		useParentHandlers: true,
	}
	r.loggers[name] = lg
	return lg
}

// ResetRegistry пересоздаёт реестр с корневым логгером по умолчанию
// и снимает наблюдателя ошибок публикации.
// Используется в тестах для изоляции состояния.
func ResetRegistry() {
	SetPublishErrorObserver(nil)
	manager.mu.Lock()
	defer manager.mu.Unlock()
	fresh := newRegistry()
	manager.loggers = fresh.loggers
	manager.root = fresh.root
}
