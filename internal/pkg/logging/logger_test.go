package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// memoryHandler собирает опубликованные записи для проверок в тестах.
type memoryHandler struct {
	mu       sync.Mutex
	records  []*Record
	failWith error
}

func (m *memoryHandler) Publish(_ context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.records = append(m.records, r)
	return nil
}

func (m *memoryHandler) Close() error { return nil }

func (m *memoryHandler) Records() []*Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]*Record, len(m.records))
	copy(snapshot, m.records)
	return snapshot
}

// newTestLogger создаёт изолированный логгер с memory handler.
func newTestLogger(t *testing.T, name string, level Level) (*Logger, *memoryHandler) {
	t.Helper()
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	lg := GetLogger(name)
	lg.SetLevel(level)
	lg.SetUseParentHandlers(false)
	h := &memoryHandler{}
	lg.AddHandler(h)
	return lg, h
}

// TestGetLogger_SameInstance проверяет что повторный запрос возвращает тот же логгер.
func TestGetLogger_SameInstance(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	first := GetLogger("app.db")
	second := GetLogger("app.db")
	assert.Same(t, first, second)
}

// TestGetLogger_ParentChain проверяет построение иерархии по точкам.
func TestGetLogger_ParentChain(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	leaf := GetLogger("app.db.pool")
	require.NotNil(t, leaf.Parent())
	assert.Equal(t, "app.db", leaf.Parent().Name())
	assert.Equal(t, "app", leaf.Parent().Parent().Name())
	assert.Same(t, Root(), leaf.Parent().Parent().Parent())
}

// TestLogger_EffectiveLevel_Inherited проверяет наследование порога от родителя.
func TestLogger_EffectiveLevel_Inherited(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	parent := GetLogger("svc")
	parent.SetLevel(LevelFine)
	child := GetLogger("svc.worker")

	assert.Nil(t, child.Level(), "дочерний логгер не имеет собственного порога")
	assert.Equal(t, LevelFine, child.EffectiveLevel())
	assert.True(t, child.IsLoggable(LevelFine))
	assert.False(t, child.IsLoggable(LevelFinest))
}

// TestLogger_EffectiveLevel_OwnOverridesParent проверяет что собственный
// порог имеет приоритет над родительским.
func TestLogger_EffectiveLevel_OwnOverridesParent(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	parent := GetLogger("svc")
	parent.SetLevel(LevelSevere)
	child := GetLogger("svc.worker")
	child.SetLevel(LevelFinest)

	assert.Equal(t, LevelFinest, child.EffectiveLevel())

	child.ClearLevel()
	assert.Equal(t, LevelSevere, child.EffectiveLevel())
}

// TestLogger_IsLoggable_Off проверяет что записи уровня OFF никогда не эмитируются.
func TestLogger_IsLoggable_Off(t *testing.T) {
	lg, _ := newTestLogger(t, "svc", LevelAll)
	assert.False(t, lg.IsLoggable(LevelOff))
}

// TestLogger_Log_BelowThreshold проверяет подавление записей ниже порога.
func TestLogger_Log_BelowThreshold(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelInfo)

	lg.Log(LevelFine, "не должно появиться")
	lg.Log(LevelInfo, "должно появиться")

	records := h.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "должно появиться", records[0].Message)
	assert.Equal(t, LevelInfo, records[0].Level)
	assert.Equal(t, "svc", records[0].LoggerName)
	assert.False(t, records[0].Time.IsZero())
}

// TestLogger_LogCause проверяет эмиссию с приложенной ошибкой.
func TestLogger_LogCause(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	cause := errors.New("соединение разорвано")
	lg.LogCause(LevelSevere, "операция не удалась", cause)

	records := h.Records()
	require.Len(t, records, 1)
	assert.Equal(t, cause, records[0].Err)
}

// TestLogger_Filter проверяет что фильтр подавляет записи.
func TestLogger_Filter(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	lg.SetFilter(FilterFunc(func(r *Record) bool {
		return !strings.Contains(r.Message, "secret")
	}))

	lg.Log(LevelInfo, "обычная запись")
	lg.Log(LevelInfo, "secret token")

	records := h.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "обычная запись", records[0].Message)

	lg.SetFilter(nil)
	lg.Log(LevelInfo, "secret token")
	assert.Len(t, h.Records(), 2, "после снятия фильтра запись проходит")
}

// TestLogger_ParentHandlers проверяет публикацию в handlers родительской цепочки.
func TestLogger_ParentHandlers(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	parent := GetLogger("svc")
	parent.SetUseParentHandlers(false)
	parentHandler := &memoryHandler{}
	parent.AddHandler(parentHandler)

	child := GetLogger("svc.worker")
	child.SetLevel(LevelAll)
	childHandler := &memoryHandler{}
	child.AddHandler(childHandler)

	child.Log(LevelInfo, "запись")

	assert.Len(t, childHandler.Records(), 1)
	assert.Len(t, parentHandler.Records(), 1, "запись должна дойти до handler родителя")
}

// TestLogger_ParentHandlers_Disabled проверяет SetUseParentHandlers(false).
func TestLogger_ParentHandlers_Disabled(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	parent := GetLogger("svc")
	parentHandler := &memoryHandler{}
	parent.AddHandler(parentHandler)

	child := GetLogger("svc.worker")
	child.SetLevel(LevelAll)
	child.SetUseParentHandlers(false)
	childHandler := &memoryHandler{}
	child.AddHandler(childHandler)

	child.Log(LevelInfo, "запись")

	assert.Len(t, childHandler.Records(), 1)
	assert.Empty(t, parentHandler.Records())
}

// TestLogger_ParentFilter_NotRechecked проверяет семантику публикации:
// фильтр родителя не применяется к записям дочернего логгера.
func TestLogger_ParentFilter_NotRechecked(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	parent := GetLogger("svc")
	parent.SetUseParentHandlers(false)
	parent.SetFilter(FilterFunc(func(_ *Record) bool { return false }))
	parentHandler := &memoryHandler{}
	parent.AddHandler(parentHandler)

	child := GetLogger("svc.worker")
	child.SetLevel(LevelAll)
	childHandler := &memoryHandler{}
	child.AddHandler(childHandler)

	child.Log(LevelInfo, "запись")

	assert.Len(t, parentHandler.Records(), 1,
		"фильтр родителя не должен блокировать записи дочернего логгера")
}

// TestLogger_RemoveHandler проверяет удаление handler.
func TestLogger_RemoveHandler(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	lg.RemoveHandler(h)
	lg.Log(LevelInfo, "запись")

	assert.Empty(t, h.Records())
	assert.Empty(t, lg.Handlers())
}

// TestLogger_PublishErrors_Counted проверяет что ошибки handler
// считаются и не прерывают доставку в остальные handlers.
func TestLogger_PublishErrors_Counted(t *testing.T) {
	lg, _ := newTestLogger(t, "svc", LevelAll)

	failing := &memoryHandler{failWith: errors.New("sink недоступен")}
	healthy := &memoryHandler{}
	lg.AddHandler(failing)
	lg.AddHandler(healthy)

	lg.Log(LevelInfo, "запись")

	assert.Equal(t, uint64(1), lg.PublishErrorCount())
	assert.Len(t, healthy.Records(), 1, "ошибка одного handler не прерывает доставку")
}

// TestLogger_PublishErrors_Observer проверяет доставку ошибок Publish
// наблюдателю с именем логгера-владельца записи.
func TestLogger_PublishErrors_Observer(t *testing.T) {
	lg, _ := newTestLogger(t, "svc", LevelAll)
	lg.AddHandler(&memoryHandler{failWith: errors.New("sink недоступен")})

	var mu sync.Mutex
	var observed []string
	SetPublishErrorObserver(func(loggerName string) {
		mu.Lock()
		defer mu.Unlock()
		observed = append(observed, loggerName)
	})

	lg.Log(LevelInfo, "первая")
	lg.Log(LevelInfo, "вторая")

	SetPublishErrorObserver(nil)
	lg.Log(LevelInfo, "после снятия наблюдателя")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"svc", "svc"}, observed)
	assert.Equal(t, uint64(3), lg.PublishErrorCount())
}

// TestLogger_LogRecord проверяет эмиссию заранее построенной записи.
func TestLogger_LogRecord(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelInfo)

	lg.LogRecord(&Record{Level: LevelWarning, Message: "готовая запись"})
	lg.LogRecord(&Record{Level: LevelFine, Message: "ниже порога"})

	records := h.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "готовая запись", records[0].Message)
	assert.Equal(t, "svc", records[0].LoggerName, "пустое имя заполняется из логгера")
	assert.False(t, records[0].Time.IsZero(), "пустое время заполняется")
}

// TestLogger_LogRecord_BackfillsBundle проверяет заполнение пустого
// bundle записи из логгера. Явно заданный bundle не перезаписывается.
func TestLogger_LogRecord_BackfillsBundle(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelInfo)
	ownBundle := NewMapBundle("svc.msgs", language.English, map[string]string{"k": "v"})
	lg.SetBundle(ownBundle)

	explicit := NewMapBundle("other.msgs", language.English, map[string]string{"k": "w"})
	lg.LogRecord(&Record{Level: LevelInfo, Message: "без bundle"})
	lg.LogRecord(&Record{Level: LevelInfo, Message: "с bundle", Bundle: explicit, BundleName: "other.msgs"})

	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, ownBundle, records[0].Bundle, "пустой bundle заполняется из логгера")
	assert.Equal(t, "svc.msgs", records[0].BundleName)
	assert.Equal(t, explicit, records[1].Bundle)
	assert.Equal(t, "other.msgs", records[1].BundleName)
}

// TestLogger_Logp проверяет запись с источником.
func TestLogger_Logp(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	lg.Logp(LevelFine, "PoolManager", "Acquire", "взято соединение {0}", 7)

	records := h.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "PoolManager", records[0].SourceClass)
	assert.Equal(t, "Acquire", records[0].SourceMethod)
	assert.Equal(t, "взято соединение 7", records[0].FormattedMessage())
}

// TestLogger_EnteringExitingThrowing проверяет трассировочные операции.
func TestLogger_EnteringExitingThrowing(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	lg.Entering("Conv", "Run")
	lg.EnteringParams("Conv", "Run", "src", 42)
	lg.Exiting("Conv", "Run")
	lg.ExitingResult("Conv", "Run", "ok")
	lg.Throwing("Conv", "Run", errors.New("переполнение"))

	records := h.Records()
	require.Len(t, records, 5)

	for _, r := range records {
		assert.Equal(t, LevelFiner, r.Level)
		assert.Equal(t, "Conv", r.SourceClass)
		assert.Equal(t, "Run", r.SourceMethod)
	}

	assert.Equal(t, "ENTRY", records[0].FormattedMessage())
	assert.Equal(t, "ENTRY src 42", records[1].FormattedMessage())
	assert.Equal(t, "RETURN", records[2].FormattedMessage())
	assert.Equal(t, "RETURN ok", records[3].FormattedMessage())
	assert.Equal(t, "THROW", records[4].FormattedMessage())
	assert.EqualError(t, records[4].Err, "переполнение")
}

// TestLogger_ConvenienceMethods проверяет уровневые методы-сокращения.
func TestLogger_ConvenienceMethods(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	lg.Severe("s")
	lg.Warning("w")
	lg.Info("i")
	lg.Config("c")
	lg.Fine("f")
	lg.Finer("fr")
	lg.Finest("ft")

	records := h.Records()
	require.Len(t, records, 7)
	expected := []Level{
		LevelSevere, LevelWarning, LevelInfo, LevelConfig,
		LevelFine, LevelFiner, LevelFinest,
	}
	for i, level := range expected {
		assert.Equal(t, level, records[i].Level)
	}
}

// TestLogger_Bundle проверяет локализацию шаблона через bundle логгера.
func TestLogger_Bundle(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	bundle := NewMapBundle("svc.messages", language.Russian, map[string]string{
		"db.updated": "база {0} обновлена",
	})
	lg.SetBundle(bundle)

	lg.Log(LevelInfo, "db.updated", "accounting")
	lg.Log(LevelInfo, "нет такого ключа {0}", "x")

	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "база accounting обновлена", records[0].FormattedMessage())
	assert.Equal(t, "svc.messages", records[0].BundleName)
	assert.Equal(t, "нет такого ключа x", records[1].FormattedMessage(),
		"отсутствующий ключ — сообщение остаётся обычным шаблоном")
}

// TestLogger_Logrb проверяет bundle-qualified эмиссию через реестр bundle.
func TestLogger_Logrb(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	RegisterBundle(NewMapBundle("errors.ru", language.Russian, map[string]string{
		"conn.lost": "соединение с {0} потеряно",
	}))

	lg.Logrb(LevelWarning, "Pool", "Ping", "errors.ru", "conn.lost", "db1")
	lg.Logrb(LevelWarning, "Pool", "Ping", "нет.такого.bundle", "сырой {0}", "текст")

	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "соединение с db1 потеряно", records[0].FormattedMessage())
	assert.Equal(t, "errors.ru", records[0].BundleName)
	assert.Equal(t, "сырой текст", records[1].FormattedMessage())
	assert.Nil(t, records[1].Bundle)
}

// TestLogger_LogContext проверяет что ctx доходит до handler.
func TestLogger_LogContext(t *testing.T) {
	ResetRegistry()
	t.Cleanup(ResetRegistry)

	type ctxKey struct{}
	var seen any

	lg := GetLogger("svc")
	lg.SetLevel(LevelAll)
	lg.SetUseParentHandlers(false)
	lg.AddHandler(ctxProbeHandler{probe: func(ctx context.Context) { seen = ctx.Value(ctxKey{}) }})

	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-1")
	lg.LogContext(ctx, LevelInfo, "запись")

	assert.Equal(t, "trace-1", seen)
}

type ctxProbeHandler struct {
	probe func(ctx context.Context)
}

func (h ctxProbeHandler) Publish(ctx context.Context, _ *Record) error {
	h.probe(ctx)
	return nil
}

func (h ctxProbeHandler) Close() error { return nil }

// TestLogger_ConcurrentEmission проверяет отсутствие гонок при
// конкурентной эмиссии и мутации настроек (запускать с -race).
func TestLogger_ConcurrentEmission(t *testing.T) {
	lg, h := newTestLogger(t, "svc", LevelAll)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				lg.Log(LevelInfo, "конкурентная запись {0}", j)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			lg.SetLevel(LevelInfo)
			lg.SetFilter(nil)
		}
	}()
	wg.Wait()

	assert.Len(t, h.Records(), 8*50)
}

// TestStreamHandler_TextFormat проверяет текстовый вывод StreamHandler.
func TestStreamHandler_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	lg, _ := newTestLogger(t, "svc", LevelAll)
	lg.AddHandler(NewStreamHandler(&buf, FormatText, LevelAll))

	lg.Log(LevelInfo, "value={0}", 42)

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "svc")
	assert.Contains(t, output, "value=42")
}
