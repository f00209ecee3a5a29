package app

import (
	"context"

	"github.com/Kargones/extlog/internal/constants"
	"github.com/Kargones/extlog/internal/pkg/logging"
	"github.com/Kargones/extlog/internal/pkg/output"
)

// Check проверяет действующую конфигурацию логирования и возвращает
// отчёт о состоянии подсистем без эмиссии тестовых записей.
func (a *App) Check(_ context.Context) *output.Result {
	root := logging.Root()

	a.diag.Fine("проверка конфигурации логирования")

	return &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActCheck,
		Data: map[string]any{
			"log_level":        root.EffectiveLevel().String(),
			"log_format":       a.cfg.Logging.Format,
			"log_output":       a.cfg.Logging.Output,
			"root_handlers":    len(root.Handlers()),
			"metrics_enabled":  a.cfg.Metrics.Enabled,
			"alerting_enabled": a.cfg.Alerting.Enabled,
			"tracing_enabled":  a.cfg.Tracing.Enabled,
			"output_format":    a.cfg.Output,
		},
	}
}
