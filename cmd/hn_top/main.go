package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/xid"

	"hn_top/internal/application"
	"hn_top/internal/config"
	"hn_top/internal/domain"
	"hn_top/pkg/contextx"
	"hn_top/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		log := slog.Default()

		if code, ok := domain.GetCode(err); ok {
			log.Error("application failed", slog.String("code", code.String()), logx.Error(err))
		} else {
			log.Error("application failed", logx.Error(err))
		}

		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Logger: журнал в stderr, stdout остаётся чистым под результат.
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.App.SlogLevel(),
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)

	traceID := contextx.TraceID(xid.New().String())
	log = log.With(logx.Stringer(logx.FieldTraceID, traceID))

	ctx = contextx.WithTraceID(ctx, traceID)
	ctx = contextx.WithLogger(ctx, log)

	log.Info("starting", slog.String(logx.FieldAppName, cfg.App.Name))

	// 3. Pipeline
	if err := application.Run(ctx, cfg, os.Stdout); err != nil {
		return err
	}

	log.Info("done")

	return nil
}
