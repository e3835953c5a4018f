package hackernews

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hn_top/internal/config"
	"hn_top/internal/domain"
	"hn_top/internal/domain/entity"
	"hn_top/pkg/errcodes"
)

var errEmptyScore = errors.New("empty score text")

// Extractor вытаскивает истории из HTML главной страницы.
// Селекторы приходят из конфига, сам разбор к вёрстке не привязан.
type Extractor struct {
	cfg  config.Scrape
	base *url.URL
}

func NewExtractor(cfg config.Scrape, pageURL string) (*Extractor, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidURL, "parse page url")
	}

	return &Extractor{
		cfg:  cfg,
		base: base,
	}, nil
}

// Stories разбирает страницу в порядке документа.
// Строка без очков (вакансии) пропускается молча, строка с нечитаемыми
// очками выбрасывается с warn — остальные продолжают обрабатываться.
func (e *Extractor) Stories(ctx context.Context, page []byte) ([]entity.Story, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.RowParse, "parse document")
	}

	rows := doc.Find(e.cfg.RowSelector)
	stories := make([]entity.Story, 0, rows.Length())

	rows.Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find(e.cfg.TitleSelector).First()

		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")

		if title == "" || href == "" {
			logger(ctx).Warn("row without title anchor, dropped")
			return
		}

		// Очки лежат в соседнем <tr> с подписью, не в самой строке.
		scoreSpan := row.Next().Find(e.cfg.ScoreSelector).First()
		if scoreSpan.Length() == 0 {
			logger(ctx).Debug("row has no score, skipping", "title", title)
			return
		}

		score, err := parseScore(scoreSpan.Text())
		if err != nil {
			logger(ctx).Warn("score text does not parse, row dropped",
				"title", title,
				"score_text", scoreSpan.Text(),
				"error", domain.WrapError(err, errcodes.RowParse, "parse score"),
			)
			return
		}

		stories = append(stories, entity.Story{
			Title: title,
			URL:   e.resolve(href),
			Score: score,
		})
	})

	return stories, nil
}

// parseScore читает число из текста вида "123 points".
func parseScore(text string) (int, error) {
	fields := strings.Fields(strings.ReplaceAll(text, " ", " "))
	if len(fields) == 0 {
		return 0, errEmptyScore
	}

	score, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi: %w", err)
	}

	if score < 0 {
		return 0, fmt.Errorf("negative score %d", score)
	}

	return score, nil
}

// resolve достраивает относительные ссылки ("item?id=...") до абсолютных.
func (e *Extractor) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return e.base.ResolveReference(ref).String()
}
