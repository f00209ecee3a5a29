// Package app связывает подсистемы приложения: логирование, метрики,
// алертинг и трейсинг. Обработчики подсистем навешиваются на корневой
// логгер, поэтому записи всех логгеров проходят через них.
package app

import (
	"context"
	"errors"

	"github.com/Kargones/extlog/internal/config"
	"github.com/Kargones/extlog/internal/pkg/alerting"
	"github.com/Kargones/extlog/internal/pkg/apperrors"
	"github.com/Kargones/extlog/internal/pkg/logging"
	"github.com/Kargones/extlog/internal/pkg/metrics"
	"github.com/Kargones/extlog/internal/pkg/tracing"
)

// App содержит инициализированные подсистемы приложения.
type App struct {
	cfg       *config.AppConfig
	diag      *logging.Logger
	collector metrics.Collector

	// Обработчики, добавленные на корневой логгер. Снимаются в Shutdown.
	handlers []logging.Handler

	shutdownTracing func(context.Context) error
}

// New инициализирует подсистемы по конфигурации: настраивает корневой
// логгер и навешивает на него обработчики включённых подсистем.
func New(cfg *config.AppConfig) (*App, error) {
	logging.Configure(cfg.Logging.ToLoggingConfig())

	a := &App{
		cfg:             cfg,
		diag:            logging.GetLogger("extlog.app"),
		collector:       metrics.NewNopCollector(),
		shutdownTracing: tracing.NewNopTracerProvider(),
	}

	root := logging.Root()

	metricsCfg := cfg.Metrics.ToMetricsConfig()
	if metricsCfg.Enabled {
		collector, err := metrics.NewCollector(metricsCfg, a.diag)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrLoggingSetup,
				"не удалось инициализировать метрики", err)
		}
		a.collector = collector
		a.addHandler(root, metrics.NewHandler(collector))
		// Ошибки Publish не доходят до обработчиков, их доставляет observer.
		logging.SetPublishErrorObserver(collector.RecordPublishError)
	}

	alertingCfg := cfg.Alerting.ToAlertingConfig()
	if alertingCfg.Enabled {
		alerter, err := alerting.NewAlerter(alertingCfg, a.diag)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrLoggingSetup,
				"не удалось инициализировать алертинг", err)
		}
		a.addHandler(root, alerting.NewHandler(alerter, alertingCfg.ResolveMinLevel()))
	}

	tracingCfg := cfg.Tracing.ToTracingConfig()
	if tracingCfg.Enabled {
		shutdown, err := tracing.NewTracerProvider(tracingCfg, a.diag)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrLoggingSetup,
				"не удалось инициализировать трейсинг", err)
		}
		a.shutdownTracing = shutdown
		a.addHandler(root, tracing.NewSpanEventHandler(logging.LevelInfo))
	}

	return a, nil
}

func (a *App) addHandler(l *logging.Logger, h logging.Handler) {
	l.AddHandler(h)
	a.handlers = append(a.handlers, h)
}

// Shutdown отправляет накопленные метрики, останавливает трейсинг и
// снимает наблюдателя ошибок публикации и обработчики подсистем с
// корневого логгера.
// Возвращает объединённую ошибку всех неуспешных шагов.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	logging.SetPublishErrorObserver(nil)

	if err := a.collector.Push(ctx); err != nil {
		errs = append(errs, err)
	}

	if err := a.shutdownTracing(ctx); err != nil {
		errs = append(errs, err)
	}

	root := logging.Root()
	for _, h := range a.handlers {
		root.RemoveHandler(h)
		if err := h.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.handlers = nil

	return errors.Join(errs...)
}
