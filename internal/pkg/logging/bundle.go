package logging

import (
	"sync"

	"golang.org/x/text/language"
)

// Bundle — локализованная таблица шаблонов сообщений.
// Если логгер (или bundle-qualified вызов Logrb) несёт bundle,
// Message записи сначала ищется в нём как ключ; найденный шаблон
// заменяет исходный текст перед подстановкой параметров.
type Bundle interface {
	// Lookup возвращает шаблон по ключу и признак наличия.
	Lookup(key string) (string, bool)

	// Name возвращает имя bundle для диагностики.
	Name() string

	// Locale возвращает локаль bundle.
	Locale() language.Tag
}

// MapBundle — реализация Bundle на основе map.
type MapBundle struct {
	name     string
	locale   language.Tag
	messages map[string]string
}

// NewMapBundle создаёт MapBundle с указанными именем, локалью и таблицей.
// Таблица копируется — последующие изменения исходной map не видны.
func NewMapBundle(name string, locale language.Tag, messages map[string]string) *MapBundle {
	copied := make(map[string]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}
	return &MapBundle{name: name, locale: locale, messages: copied}
}

// Lookup возвращает шаблон по ключу.
func (b *MapBundle) Lookup(key string) (string, bool) {
	template, ok := b.messages[key]
	return template, ok
}

// Name возвращает имя bundle.
func (b *MapBundle) Name() string {
	return b.name
}

// Locale возвращает локаль bundle.
func (b *MapBundle) Locale() language.Tag {
	return b.locale
}

// bundleRegistry — процессный реестр именованных bundle для Logrb вариантов.
var bundleRegistry = struct {
	mu      sync.RWMutex
	bundles map[string]Bundle
}{bundles: make(map[string]Bundle)}

// RegisterBundle регистрирует bundle под его именем.
// Повторная регистрация с тем же именем заменяет предыдущий bundle.
func RegisterBundle(b Bundle) {
	bundleRegistry.mu.Lock()
	defer bundleRegistry.mu.Unlock()
	bundleRegistry.bundles[b.Name()] = b
}

// LookupBundle возвращает зарегистрированный bundle по имени.
// Для неизвестного имени возвращает nil — Logrb в этом случае
// использует Message как обычный шаблон.
func LookupBundle(name string) Bundle {
	bundleRegistry.mu.RLock()
	defer bundleRegistry.mu.RUnlock()
	return bundleRegistry.bundles[name]
}
