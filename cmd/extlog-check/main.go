// Package main содержит точку входа утилиты extlog-check.
// Утилита проверяет конфигурацию логирования и выполняет тестовую
// эмиссию записей через ExtendedLogger (команда selftest).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/extlog/internal/app"
	"github.com/Kargones/extlog/internal/config"
	"github.com/Kargones/extlog/internal/constants"
	"github.com/Kargones/extlog/internal/pkg/apperrors"
	"github.com/Kargones/extlog/internal/pkg/output"
	"github.com/Kargones/extlog/internal/pkg/tracing"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx := context.Background()
	start := time.Now()

	command := constants.ActCheck
	if len(args) > 0 {
		command = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		// Конфигурация недоступна; формат берём напрямую из окружения.
		writer := output.NewWriter(os.Getenv(constants.EnvOutputFormat))
		writeResult(writer, errorResult(command, err, start, ""))
		return constants.ExitConfigError
	}

	writer := output.NewWriter(cfg.Output)

	if command != constants.ActCheck && command != constants.ActSelftest {
		err = apperrors.NewAppError(apperrors.ErrOutputFormat,
			fmt.Sprintf("неизвестная команда %q (ожидается %s или %s)",
				command, constants.ActCheck, constants.ActSelftest), nil)
		writeResult(writer, errorResult(command, err, start, ""))
		return constants.ExitError
	}

	a, err := app.New(cfg)
	if err != nil {
		writeResult(writer, errorResult(command, err, start, ""))
		return constants.ExitError
	}

	// Trace ID генерируется для корреляции записей и span-ов; через
	// remote span context он же становится trace ID всех OTel span-ов.
	traceID := tracing.GenerateTraceID()
	ctx = tracing.WithTraceID(ctx, traceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, traceID)

	ctx, span := otel.Tracer(constants.AppName).Start(ctx, command,
		trace.WithAttributes(
			attribute.String("command", command),
			attribute.String("trace_id", traceID),
		),
	)

	var result *output.Result
	switch command {
	case constants.ActCheck:
		result = a.Check(ctx)
	case constants.ActSelftest:
		result, err = a.Selftest(ctx)
	}

	span.End()
	shutdownErr := a.Shutdown(ctx)

	if err != nil {
		writeResult(writer, errorResult(command, err, start, traceID))
		return constants.ExitError
	}
	if shutdownErr != nil {
		writeResult(writer, errorResult(command, shutdownErr, start, traceID))
		return constants.ExitError
	}

	result.Metadata = &output.Metadata{
		DurationMs: time.Since(start).Milliseconds(),
		TraceID:    tracing.TraceIDFromContext(ctx),
		APIVersion: output.APIVersion,
	}
	writeResult(writer, result)
	return constants.ExitSuccess
}

// errorResult формирует отчёт об ошибке с кодом из AppError.
// traceID пустой, пока трассировка команды не началась.
func errorResult(command string, err error, start time.Time, traceID string) *output.Result {
	code := apperrors.ErrUnknown
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	return &output.Result{
		Status:  output.StatusError,
		Command: command,
		Error: &output.ErrorInfo{
			Code:    code,
			Message: err.Error(),
		},
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: output.APIVersion,
		},
	}
}

func writeResult(writer output.Writer, result *output.Result) {
	if err := writer.Write(os.Stdout, result); err != nil {
		fmt.Fprintf(os.Stderr, "не удалось записать результат: %v\n", err)
	}
}
