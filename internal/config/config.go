package config

import (
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"hn_top/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	App        App
	HackerNews HackerNews
	Scrape     Scrape
	Output     Output
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"hn_top"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// SlogLevel переводит LOG_LEVEL в уровень slog.
func (a App) SlogLevel() slog.Level {
	switch a.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load читает конфиг из окружения. Все поля имеют рабочие дефолты,
// так что без единой переменной утилита запускается как есть.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validate.Struct(&config); err != nil {
		return Config{}, failure.NewInvalidArgumentError(
			fmt.Errorf("validate.Struct: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid configuration"),
		)
	}

	return config, nil
}
