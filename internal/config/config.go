// Package config загружает конфигурацию приложения из YAML файла и
// переменных окружения. Переменные окружения EXTLOG_* переопределяют
// значения из файла; путь к файлу задаётся через EXTLOG_CONFIG.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/extlog/internal/constants"
	"github.com/Kargones/extlog/internal/pkg/apperrors"
)

// AppConfig — конфигурация приложения верхнего уровня.
type AppConfig struct {
	// Logging — настройки фасилити логирования.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics — настройки отправки метрик в Pushgateway.
	Metrics MetricsConfig `yaml:"metrics"`

	// Alerting — настройки алертинга по критичным записям.
	Alerting AlertingConfig `yaml:"alerting"`

	// Tracing — настройки OpenTelemetry трейсинга.
	Tracing TracingConfig `yaml:"tracing"`

	// Output — формат вывода результатов команд (json, text).
	Output string `yaml:"output" env:"EXTLOG_OUTPUT_FORMAT" env-default:"text"`
}

// Load загружает конфигурацию приложения.
// Если EXTLOG_CONFIG указывает на файл — читает YAML и применяет env
// override. Если переменная не задана — используются defaults и env.
// Несуществующий файл по явно заданному пути — ошибка конфигурации.
func Load() (*AppConfig, error) {
	return LoadFrom(os.Getenv(constants.EnvConfigPath))
}

// LoadFrom загружает конфигурацию из указанного YAML файла (или только
// из окружения при пустом path) и валидирует её.
func LoadFrom(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
				fmt.Sprintf("не удалось загрузить конфигурацию из %s", path), err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
				"не удалось прочитать переменные окружения", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации всех подсистем.
func (c *AppConfig) Validate() error {
	if err := validateLoggingConfig(&c.Logging); err != nil {
		return err
	}

	metrics := c.Metrics.ToMetricsConfig()
	if err := metrics.Validate(); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "metrics", err)
	}

	alertingCfg := c.Alerting.ToAlertingConfig()
	if err := alertingCfg.Validate(); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "alerting", err)
	}

	tracingCfg := c.Tracing.ToTracingConfig()
	if err := tracingCfg.Validate(); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "tracing", err)
	}

	return nil
}
