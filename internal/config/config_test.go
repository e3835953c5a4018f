package config_test

import (
	"log/slog"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"hn_top/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("hn_top", cfg.App.Name)
	rq.Equal("info", cfg.App.LogLevel)

	rq.Equal("https://news.ycombinator.com/", cfg.HackerNews.URL)
	rq.Equal(10*time.Second, cfg.HackerNews.Timeout)
	rq.Equal("hn_top/1.0", cfg.HackerNews.UserAgent)
	rq.Equal(int64(5242880), cfg.HackerNews.MaxBodyBytes)

	rq.Equal("tr.athing", cfg.Scrape.RowSelector)
	rq.Equal("span.titleline > a", cfg.Scrape.TitleSelector)
	rq.Equal("span.score", cfg.Scrape.ScoreSelector)
	rq.Equal(100, cfg.Scrape.Threshold)
	rq.Equal(0, cfg.Scrape.Limit)

	rq.Equal("table", cfg.Output.Format)
	rq.True(cfg.Output.Color)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HN_URL", "https://hn.mirror.example/front")
	t.Setenv("HN_ROW_SELECTOR", "li.entry")
	t.Setenv("HN_TITLE_SELECTOR", "a.t")
	t.Setenv("HN_SCORE_SELECTOR", "em.pts")
	t.Setenv("HN_SCORE_THRESHOLD", "200")
	t.Setenv("HN_LIMIT", "5")
	t.Setenv("HN_OUTPUT_FORMAT", "json")
	t.Setenv("HN_OUTPUT_COLOR", "false")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("debug", cfg.App.LogLevel)
	rq.Equal("https://hn.mirror.example/front", cfg.HackerNews.URL)
	rq.Equal("li.entry", cfg.Scrape.RowSelector)
	rq.Equal("a.t", cfg.Scrape.TitleSelector)
	rq.Equal("em.pts", cfg.Scrape.ScoreSelector)
	rq.Equal(200, cfg.Scrape.Threshold)
	rq.Equal(5, cfg.Scrape.Limit)
	rq.Equal("json", cfg.Output.Format)
	rq.False(cfg.Output.Color)
}

func TestLoadEmptyValueUsesDefault(t *testing.T) {
	rq := require.New(t)

	// Пустая переменная не затирает дефолт: env подставляет envDefault.
	t.Setenv("HN_ROW_SELECTOR", "")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("tr.athing", cfg.Scrape.RowSelector)
}

func TestLoadValidation(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Unknown log level", key: "LOG_LEVEL", value: "chatty"},
		{name: "Unknown output format", key: "HN_OUTPUT_FORMAT", value: "yaml"},
		{name: "Broken url", key: "HN_URL", value: "not a url"},
		{name: "Zero body limit", key: "HN_MAX_BODY_BYTES", value: "0"},
		{name: "Negative threshold", key: "HN_SCORE_THRESHOLD", value: "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
		})
	}
}

func TestLoadParseFailure(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HN_TIMEOUT", "banana")

	_, err := config.Load()
	rq.Error(err)
}

func TestSlogLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, config.App{LogLevel: tc.level}.SlogLevel())
	}
}
