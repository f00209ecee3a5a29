package app

import (
	"context"
	"fmt"

	"github.com/Kargones/extlog/internal/constants"
	"github.com/Kargones/extlog/internal/pkg/apperrors"
	"github.com/Kargones/extlog/internal/pkg/extlogger"
	"github.com/Kargones/extlog/internal/pkg/logging"
	"github.com/Kargones/extlog/internal/pkg/output"
)

// selftestLevels — уровни, на которых selftest эмитирует тестовые записи.
var selftestLevels = []logging.Level{
	logging.LevelSevere,
	logging.LevelWarning,
	logging.LevelInfo,
	logging.LevelConfig,
	logging.LevelFine,
	logging.LevelFiner,
	logging.LevelFinest,
}

// Selftest эмитирует тестовые записи через ExtendedLogger на всех
// уровнях и возвращает отчёт об эмиссии. Логгер selftest открывается
// на уровне ALL, чтобы записи прошли независимо от порога корневого
// логгера; публикация идёт через обработчики корня.
func (a *App) Selftest(ctx context.Context) (*output.Result, error) {
	logger := logging.GetLogger(constants.SelftestLoggerName)
	logger.SetLevel(logging.LevelAll)
	defer logger.ClearLevel()

	el := extlogger.New(logger, logging.LevelFine)

	el.Entering("selftest", "Selftest")
	for _, level := range selftestLevels {
		el.LogContext(ctx, level, "самотест: запись уровня {0}", level)
	}
	el.DebugLog("самотест: отладочная запись, {0} уровней", len(selftestLevels))
	el.ExitingResult("selftest", "Selftest", len(selftestLevels))

	// ENTRY + уровни + DEBUG + RETURN
	emitted := len(selftestLevels) + 3

	if n := logger.PublishErrorCount(); n > 0 {
		return nil, apperrors.NewAppError(apperrors.ErrLoggingHandler,
			fmt.Sprintf("самотест: %d ошибок публикации", n), nil)
	}

	return &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActSelftest,
		Data: map[string]any{
			"records_emitted": emitted,
			"debug_level":     el.DebugLevel().String(),
			"debug_loggable":  el.IsDebugLoggable(),
		},
	}, nil
}
