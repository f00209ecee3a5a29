package logging

import "time"

// Record представляет одну запись лога до форматирования.
// Message хранит шаблон с позиционными плейсхолдерами вида {0}, {1}, ...;
// подстановка параметров откладывается до момента вывода в handler.
type Record struct {
	// Time — момент создания записи.
	Time time.Time

	// Level — уровень записи.
	Level Level

	// LoggerName — имя логгера, создавшего запись.
	LoggerName string

	// Message — шаблон сообщения (или ключ в resource bundle).
	Message string

	// Params — позиционные параметры шаблона.
	Params []any

	// Err — приложенная ошибка (cause), может быть nil.
	Err error

	// SourceClass и SourceMethod — источник записи для трассировочных
	// операций (Entering/Exiting/Throwing и Logp/Logrb варианты).
	SourceClass  string
	SourceMethod string

	// Bundle — resource bundle для локализации шаблона, может быть nil.
	Bundle Bundle

	// BundleName — имя bundle (для диагностики), может быть пустым.
	BundleName string
}

// FormattedMessage возвращает итоговый текст записи: шаблон ищется
// в bundle (если задан и содержит Message как ключ), затем выполняется
// подстановка позиционных параметров.
func (r *Record) FormattedMessage() string {
	template := r.Message
	if r.Bundle != nil {
		if localized, ok := r.Bundle.Lookup(r.Message); ok {
			template = localized
		}
	}
	return FormatMessage(template, r.Params)
}
