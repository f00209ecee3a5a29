package extlogger

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutinePrefix — начало заголовка стека текущей горутины.
var goroutinePrefix = []byte("goroutine ")

// goroutineName возвращает имя текущей горутины в виде "goroutine-<id>".
//
// Рантайм не даёт прямого доступа к идентификатору горутины, поэтому
// идентификатор извлекается из заголовка runtime.Stack вида
// "goroutine 18 [running]:". При нераспознанном заголовке возвращается
// "goroutine-unknown".
func goroutineName() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	header := buf[:n]

	if !bytes.HasPrefix(header, goroutinePrefix) {
		return "goroutine-unknown"
	}
	header = header[len(goroutinePrefix):]

	end := bytes.IndexByte(header, ' ')
	if end <= 0 {
		return "goroutine-unknown"
	}
	if _, err := strconv.ParseUint(string(header[:end]), 10, 64); err != nil {
		return "goroutine-unknown"
	}

	return "goroutine-" + string(header[:end])
}
