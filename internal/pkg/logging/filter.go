package logging

// Filter — предикат, позволяющий подавить отдельные записи до их
// доставки в handlers. Применяется после проверки уровня, только на
// логгере-владельце записи (handlers родительской цепочки фильтр
// дочернего логгера не перепроверяют).
type Filter interface {
	// IsLoggable возвращает true если запись должна быть опубликована.
	IsLoggable(r *Record) bool
}

// FilterFunc адаптирует функцию к интерфейсу Filter.
type FilterFunc func(r *Record) bool

// IsLoggable вызывает f(r).
func (f FilterFunc) IsLoggable(r *Record) bool {
	return f(r)
}
