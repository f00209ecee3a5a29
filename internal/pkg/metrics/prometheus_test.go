package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// newDiagLogger создаёт изолированный логгер диагностики без вывода.
func newDiagLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logging.ResetRegistry()
	t.Cleanup(logging.ResetRegistry)

	l := logging.GetLogger("extlog.metrics.test")
	l.SetUseParentHandlers(false)
	l.AddHandler(&logging.NopHandler{})
	return l
}

func enabledConfig(url string) Config {
	return Config{
		Enabled:        true,
		PushgatewayURL: url,
		JobName:        "test-job",
		Timeout:        10 * time.Second,
	}
}

// TestPrometheusCollector_RecordEmit проверяет запись метрик эмиссии.
func TestPrometheusCollector_RecordEmit(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
	require.NoError(t, err)

	collector.RecordEmit("service.db", logging.LevelInfo)
	collector.RecordEmit("service.db", logging.LevelInfo)
	collector.RecordEmit("service.db", logging.LevelSevere)

	metrics, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	var total float64
	var found bool
	for _, m := range metrics {
		if m.GetName() == "extlog_records_total" {
			found = true
			for _, metric := range m.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	assert.True(t, found, "должен быть counter records_total")
	assert.Equal(t, float64(3), total)
}

// TestPrometheusCollector_Labels проверяет labels logger и level.
func TestPrometheusCollector_Labels(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
	require.NoError(t, err)

	collector.RecordEmit("service.db", logging.LevelWarning)

	metrics, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	for _, m := range metrics {
		if m.GetName() == "extlog_records_total" {
			for _, metric := range m.GetMetric() {
				labels := make(map[string]string)
				for _, l := range metric.GetLabel() {
					labels[l.GetName()] = l.GetValue()
				}
				assert.Equal(t, "service.db", labels["logger"])
				assert.Equal(t, "WARNING", labels["level"])
			}
		}
	}
}

// TestPrometheusCollector_RootLoggerLabel проверяет замену пустого имени
// корневого логгера на "root".
func TestPrometheusCollector_RootLoggerLabel(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
	require.NoError(t, err)

	collector.RecordEmit("", logging.LevelInfo)
	collector.RecordPublishError("")

	metrics, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	for _, m := range metrics {
		for _, metric := range m.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "logger" {
					assert.Equal(t, "root", l.GetValue())
				}
			}
		}
	}
}

// TestPrometheusCollector_PublishErrors проверяет counter ошибок публикации.
func TestPrometheusCollector_PublishErrors(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
	require.NoError(t, err)

	collector.RecordPublishError("service.db")
	collector.RecordPublishError("service.db")

	metrics, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	var total float64
	for _, m := range metrics {
		if m.GetName() == "extlog_publish_errors_total" {
			for _, metric := range m.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(2), total)
}

// TestPrometheusCollector_Push проверяет отправку метрик.
func TestPrometheusCollector_Push(t *testing.T) {
	// Mock Pushgateway
	var receivedMethod string
	var receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(enabledConfig(server.URL), newDiagLogger(t))
	require.NoError(t, err)

	collector.RecordEmit("service.db", logging.LevelInfo)

	err = collector.Push(context.Background())
	assert.NoError(t, err)

	// Prometheus Pushgateway использует PUT для push операций
	assert.Equal(t, http.MethodPut, receivedMethod)
	assert.Contains(t, receivedPath, "/metrics/job/test-job")
}

// TestPrometheusCollector_PushError проверяет что ошибки Pushgateway
// не пробрасываются наружу.
func TestPrometheusCollector_PushError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(enabledConfig(server.URL), newDiagLogger(t))
	require.NoError(t, err)

	err = collector.Push(context.Background())
	assert.NoError(t, err, "Push должен возвращать nil даже при ошибке")
}

// TestPrometheusCollector_ContextCancellation проверяет отмену контекста.
func TestPrometheusCollector_ContextCancellation(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = collector.Push(ctx)
	assert.NoError(t, err)
}

// TestPrometheusCollector_PushWithoutURL проверяет push без URL.
func TestPrometheusCollector_PushWithoutURL(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://test:9091"), newDiagLogger(t))
	require.NoError(t, err)

	// Очищаем URL после создания
	collector.config.PushgatewayURL = ""

	err = collector.Push(context.Background())
	assert.NoError(t, err)
}

// TestPrometheusCollector_InstanceLabel проверяет hostname resolution.
func TestPrometheusCollector_InstanceLabel(t *testing.T) {
	t.Run("with custom instance label", func(t *testing.T) {
		config := enabledConfig("http://localhost:9091")
		config.InstanceLabel = "custom-instance"

		collector, err := NewPrometheusCollector(config, newDiagLogger(t))
		require.NoError(t, err)

		assert.Equal(t, "custom-instance", collector.instance)
	})

	t.Run("without instance label uses hostname", func(t *testing.T) {
		collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
		require.NoError(t, err)

		// Instance должен быть hostname или "unknown"
		assert.NotEmpty(t, collector.instance)
	})
}

// TestMetricsConfig_Validate проверяет валидацию конфигурации.
func TestMetricsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid config",
			config:  enabledConfig("http://localhost:9091"),
			wantErr: nil,
		},
		{
			name:    "disabled config is always valid",
			config:  Config{Enabled: false},
			wantErr: nil,
		},
		{
			name:    "missing pushgateway URL",
			config:  enabledConfig(""),
			wantErr: ErrPushgatewayURLRequired,
		},
		{
			name: "missing job name",
			config: Config{
				Enabled:        true,
				PushgatewayURL: "http://localhost:9091",
				JobName:        "",
				Timeout:        10 * time.Second,
			},
			wantErr: ErrJobNameRequired,
		},
		{
			name: "invalid timeout",
			config: Config{
				Enabled:        true,
				PushgatewayURL: "http://localhost:9091",
				JobName:        "test",
				Timeout:        0,
			},
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "invalid URL format - no scheme",
			config:  enabledConfig("localhost:9091"),
			wantErr: ErrPushgatewayURLInvalid,
		},
		{
			name:    "invalid URL format - no host",
			config:  enabledConfig("http://"),
			wantErr: ErrPushgatewayURLInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestNopCollector проверяет NopCollector.
func TestNopCollector(t *testing.T) {
	collector := NewNopCollector()

	// Все методы должны работать без паники
	collector.RecordEmit("test", logging.LevelInfo)
	collector.RecordPublishError("test")
	err := collector.Push(context.Background())
	assert.NoError(t, err)
}

// TestNewCollector_Factory проверяет factory функцию.
func TestNewCollector_Factory(t *testing.T) {
	t.Run("disabled returns NopCollector", func(t *testing.T) {
		collector, err := NewCollector(Config{Enabled: false}, newDiagLogger(t))
		require.NoError(t, err)

		_, isNop := collector.(*NopCollector)
		assert.True(t, isNop)
	})

	t.Run("enabled returns PrometheusCollector", func(t *testing.T) {
		collector, err := NewCollector(enabledConfig("http://localhost:9091"), newDiagLogger(t))
		require.NoError(t, err)

		_, isProm := collector.(*PrometheusCollector)
		assert.True(t, isProm)
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		_, err := NewCollector(enabledConfig(""), newDiagLogger(t))
		assert.Error(t, err)
	})
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "короткое значение — без изменений",
			input:    "service.db",
			expected: "service.db",
		},
		{
			name:     "пустая строка — без изменений",
			input:    "",
			expected: "",
		},
		{
			name:     "ровно 128 символов — без изменений",
			input:    strings.Repeat("a", maxLabelLength),
			expected: strings.Repeat("a", maxLabelLength),
		},
		{
			name:     "длинное значение — обрезается до 128",
			input:    strings.Repeat("x", 256),
			expected: strings.Repeat("x", maxLabelLength),
		},
		{
			name:     "кириллица — обрезка по рунам, не по байтам",
			input:    strings.Repeat("Б", 200), // 200 рун × 2 байта = 400 байт
			expected: strings.Repeat("Б", maxLabelLength),
		},
		{
			name:     "контрольные символы заменяются на underscore",
			input:    "logger\nwith\rnewlines\x00null",
			expected: "logger_with_newlines_null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeLabel(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
