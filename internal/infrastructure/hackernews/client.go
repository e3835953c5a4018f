package hackernews

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"hn_top/internal/config"
	"hn_top/internal/domain"
	"hn_top/pkg/contextx"
	"hn_top/pkg/errcodes"
	"hn_top/pkg/httpx"
	"hn_top/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Client ходит за главной страницей Hacker News обычным GET.
// Никакого API: страница отдаётся как HTML, разбором занимается экстрактор.
type Client struct {
	cfg        config.HackerNews
	httpClient *http.Client
}

func New(cfg config.HackerNews) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(cfg.LogDumpMaxLen),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
	}
}

// FrontPage скачивает HTML главной страницы целиком.
func (c *Client) FrontPage(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, http.NoBody)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FetchFailed, "build request")
	}

	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FetchFailed, "get front page")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewError(
			errcodes.UnexpectedStatus,
			fmt.Sprintf("front page returned %d", resp.StatusCode),
		)
	}

	// Читаем на байт больше лимита, чтобы отличить ровно лимит от перебора.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FetchFailed, "read body")
	}

	if int64(len(body)) > c.cfg.MaxBodyBytes {
		return nil, domain.NewError(
			errcodes.ResponseTooLarge,
			fmt.Sprintf("body exceeds %d bytes", c.cfg.MaxBodyBytes),
		)
	}

	logger(ctx).Info("front page fetched", "bytes", len(body))

	return body, nil
}
