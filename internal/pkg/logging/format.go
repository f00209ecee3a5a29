package logging

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMessage выполняет подстановку позиционных параметров в шаблон.
//
// Семантика повторяет java.util.logging.Formatter.formatMessage:
//   - при пустом списке параметров шаблон возвращается как есть;
//   - подстановка выполняется только если шаблон содержит плейсхолдер
//     с индексом 0..3 ("{0".."{3") — записи без таких плейсхолдеров
//     считаются не-шаблонными и возвращаются дословно;
//   - каждый валидный плейсхолдер {N} с N < len(params) заменяется на
//     fmt.Sprint(params[N]); плейсхолдеры с индексом за пределами списка
//     остаются в тексте без изменений.
//
// Quote-escaping синтаксис MessageFormat ('...') намеренно не
// воспроизводится: конфигурации проекта его не используют.
func FormatMessage(template string, params []any) string {
	if len(params) == 0 || !hasPositionalPlaceholder(template) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] == '{' {
			j := i + 1
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			if j > i+1 && j < len(template) && template[j] == '}' {
				idx, err := strconv.Atoi(template[i+1 : j])
				if err == nil && idx < len(params) {
					b.WriteString(fmt.Sprint(params[idx]))
					i = j + 1
					continue
				}
			}
		}
		b.WriteByte(template[i])
		i++
	}
	return b.String()
}

// hasPositionalPlaceholder проверяет наличие плейсхолдера {0}..{3}.
// Как и в java.util.logging, плейсхолдеры с большими индексами сами по
// себе не активируют подстановку.
func hasPositionalPlaceholder(template string) bool {
	for digit := '0'; digit <= '3'; digit++ {
		if strings.Contains(template, "{"+string(digit)) {
			return true
		}
	}
	return false
}
