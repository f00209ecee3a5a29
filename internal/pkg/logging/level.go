package logging

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Level представляет уровень важности записи лога.
// Уровни упорядочены: запись эмитируется если её уровень не ниже
// эффективного порога логгера. Числовые значения совместимы с
// java.util.logging для переносимости конфигураций.
type Level int32

// Уровни от самого подробного к самому важному.
const (
	// LevelAll — специальное значение порога: пропускать все записи.
	LevelAll Level = math.MinInt32

	// LevelFinest — максимально детальная трассировка.
	LevelFinest Level = 300

	// LevelFiner — детальная трассировка (вход/выход из методов).
	LevelFiner Level = 400

	// LevelFine — отладочные сообщения.
	LevelFine Level = 500

	// LevelConfig — сообщения о конфигурации.
	LevelConfig Level = 700

	// LevelInfo — значимые события.
	LevelInfo Level = 800

	// LevelWarning — recoverable проблемы.
	LevelWarning Level = 900

	// LevelSevere — серьёзные ошибки.
	LevelSevere Level = 1000

	// LevelOff — специальное значение порога: подавить все записи.
	LevelOff Level = math.MaxInt32
)

// levelNames — канонические имена уровней.
var levelNames = map[Level]string{
	LevelAll:     "ALL",
	LevelFinest:  "FINEST",
	LevelFiner:   "FINER",
	LevelFine:    "FINE",
	LevelConfig:  "CONFIG",
	LevelInfo:    "INFO",
	LevelWarning: "WARNING",
	LevelSevere:  "SEVERE",
	LevelOff:     "OFF",
}

// String возвращает каноническое имя уровня.
// Для нестандартных значений возвращает числовое представление.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return strconv.Itoa(int(l))
}

// Slog конвертирует Level в slog.Level для slog bridge handler.
// FINEST/FINER/FINE → DEBUG, CONFIG/INFO → INFO, WARNING → WARN, SEVERE → ERROR.
func (l Level) Slog() slog.Level {
	switch {
	case l <= LevelFine:
		return slog.LevelDebug
	case l <= LevelInfo:
		return slog.LevelInfo
	case l <= LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// MarshalText реализует encoding.TextMarshaler для сериализации в yaml/env.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel парсит уровень из строки.
// Принимает канонические имена (case-insensitive) и числовые значения.
// Возвращает ошибку для пустых и неизвестных значений.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return 0, fmt.Errorf("logging: пустое имя уровня")
	}
	for level, name := range levelNames {
		if name == upper {
			return level, nil
		}
	}
	if n, err := strconv.Atoi(upper); err == nil {
		return Level(n), nil
	}
	return 0, fmt.Errorf("logging: неизвестный уровень %q", s)
}
