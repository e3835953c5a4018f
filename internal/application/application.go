package application

import (
	"context"
	"io"

	"hn_top/internal/config"
	"hn_top/internal/domain/service/story"
	"hn_top/internal/infrastructure/console"
	"hn_top/internal/infrastructure/hackernews"
	"hn_top/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run прогоняет весь конвейер один раз: страница, истории, отбор, вывод.
// Никаких циклов и фоновых горутин, программа живёт один проход.
func Run(ctx context.Context, cfg config.Config, out io.Writer) error {
	// 1. Client
	client := hackernews.New(cfg.HackerNews)

	extractor, err := hackernews.NewExtractor(cfg.Scrape, cfg.HackerNews.URL)
	if err != nil {
		return err
	}

	// 2. Fetch
	page, err := client.FrontPage(ctx)
	if err != nil {
		return err
	}

	// 3. Extract
	stories, err := extractor.Stories(ctx, page)
	if err != nil {
		return err
	}

	logger(ctx).Info("stories extracted", "count", len(stories))

	// 4. Select
	top := story.Top(story.Select(stories, cfg.Scrape.Threshold), cfg.Scrape.Limit)

	logger(ctx).Info("stories selected",
		"kept", len(top),
		"threshold", cfg.Scrape.Threshold,
	)

	// 5. Present
	return console.NewPresenter(out, cfg.Output).Present(top)
}
