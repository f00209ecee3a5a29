package alerting

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// newDiagLogger создаёт изолированный логгер диагностики без вывода.
func newDiagLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logging.ResetRegistry()
	t.Cleanup(logging.ResetRegistry)

	l := logging.GetLogger("extlog.alerting.test")
	l.SetUseParentHandlers(false)
	l.AddHandler(&logging.NopHandler{})
	return l
}

// mockHTTPClient — mock для HTTPClient интерфейса.
type mockHTTPClient struct {
	mu        sync.Mutex
	requests  []*http.Request
	bodies    []string
	responses []*http.Response
	errs      []error
	calls     int
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if req.Body != nil {
		buf := make([]byte, 64*1024)
		n, _ := req.Body.Read(buf)
		m.bodies = append(m.bodies, string(buf[:n]))
	} else {
		m.bodies = append(m.bodies, "")
	}

	call := m.calls
	m.calls++

	var err error
	if call < len(m.errs) {
		err = m.errs[call]
	}
	if err != nil {
		return nil, err
	}

	if call < len(m.responses) {
		return m.responses[call], nil
	}
	return okResponse(), nil
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       http.NoBody,
	}
}

func statusResponse(code int) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       http.NoBody,
	}
}

// testAlert возвращает алерт с заполненными полями для тестов.
func testAlert() Alert {
	return Alert{
		Code:       "SEVERE:service.db",
		Message:    "подключение потеряно",
		LoggerName: "service.db",
		Level:      logging.LevelSevere,
		Timestamp:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

// recordingAlerter накапливает отправленные алерты.
type recordingAlerter struct {
	mu     sync.Mutex
	alerts []Alert
}

func (a *recordingAlerter) Send(_ context.Context, alert Alert) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.alerts = append(a.alerts, alert)
	return nil
}

func (a *recordingAlerter) all() []Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Alert, len(a.alerts))
	copy(out, a.alerts)
	return out
}
