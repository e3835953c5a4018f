package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"hn_top/internal/config"
	"hn_top/internal/domain"
	"hn_top/internal/domain/entity"
	"hn_top/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Форматы вывода, значения HN_OUTPUT_FORMAT.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Presenter печатает отобранные истории в консоль: таблица для глаз,
// JSON для конвейеров. Логи сюда не попадают, у них свой поток.
type Presenter struct {
	out io.Writer
	cfg config.Output
}

func NewPresenter(out io.Writer, cfg config.Output) *Presenter {
	return &Presenter{
		out: out,
		cfg: cfg,
	}
}

func (p *Presenter) Present(stories []entity.Story) error {
	switch p.cfg.Format {
	case FormatJSON:
		return p.renderJSON(stories)
	case FormatTable:
		return p.renderTable(stories)
	default:
		return domain.NewError(
			errcodes.ValidationError,
			fmt.Sprintf("unknown output format %q", p.cfg.Format),
		)
	}
}

// renderJSON пишет истории одним массивом.
// Пустой результат — это "[]", а не null: вывод всегда валидный массив.
func (p *Presenter) renderJSON(stories []entity.Story) error {
	if stories == nil {
		stories = []entity.Story{}
	}

	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(stories); err != nil {
		return fmt.Errorf("encode stories: %w", err)
	}

	return nil
}

func (p *Presenter) renderTable(stories []entity.Story) error {
	if len(stories) == 0 {
		_, err := fmt.Fprintln(p.out, "no stories above the score threshold")
		return err
	}

	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	rows := lo.Map(stories, func(s entity.Story, i int) []string {
		return []string{
			strconv.Itoa(i + 1),
			p.score(s.Score),
			s.Title,
			s.URL,
		}
	})

	table.Header([]string{"RANK", "SCORE", "TITLE", "URL"})
	table.Bulk(rows)
	table.Render()

	return nil
}

// score подкрашивает очки, когда цвет включён; fatih/color сам гасит
// ANSI-коды вне терминала.
func (p *Presenter) score(score int) string {
	text := strconv.Itoa(score)
	if !p.cfg.Color {
		return text
	}

	return color.New(color.FgGreen, color.Bold).Sprint(text)
}
