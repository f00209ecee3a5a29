package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/extlog/internal/pkg/logging"
)

// TestHandler_CountsRecords проверяет что handler учитывает записи,
// опубликованные через фасилити логирования.
func TestHandler_CountsRecords(t *testing.T) {
	logging.ResetRegistry()
	t.Cleanup(logging.ResetRegistry)

	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), nil)
	require.NoError(t, err)

	l := logging.GetLogger("service.db")
	l.SetUseParentHandlers(false)
	l.SetLevel(logging.LevelAll)
	l.AddHandler(NewHandler(collector))

	l.Info("one")
	l.Warning("two")
	l.Fine("three")

	metrics, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	var total float64
	for _, m := range metrics {
		if m.GetName() == "extlog_records_total" {
			for _, metric := range m.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(3), total)
}

// TestHandler_SuppressedRecordsNotCounted проверяет что записи ниже
// порога не доходят до коллектора.
func TestHandler_SuppressedRecordsNotCounted(t *testing.T) {
	logging.ResetRegistry()
	t.Cleanup(logging.ResetRegistry)

	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), nil)
	require.NoError(t, err)

	l := logging.GetLogger("service.db")
	l.SetUseParentHandlers(false)
	l.SetLevel(logging.LevelWarning)
	l.AddHandler(NewHandler(collector))

	l.Info("suppressed")
	l.Fine("suppressed")

	metrics, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	for _, m := range metrics {
		if m.GetName() == "extlog_records_total" {
			assert.Empty(t, m.GetMetric())
		}
	}
}

// TestHandler_Close проверяет что Close не возвращает ошибку.
func TestHandler_Close(t *testing.T) {
	h := NewHandler(NewNopCollector())
	assert.NoError(t, h.Close())
}
