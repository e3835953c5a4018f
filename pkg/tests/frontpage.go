package tests

import (
	"fmt"
	"html"
	"strings"
)

// Row описывает одну строку синтетической страницы листинга в разметке,
// повторяющей структуру news.ycombinator.com: tr.athing с заголовком,
// следом tr с td.subtext и span.score.
type Row struct {
	Title     string
	Href      string
	ScoreText string // пустая строка — строка без очков (вакансия)
	NoSubtext bool   // совсем без subtext-строки
}

// FrontPage собирает HTML страницы листинга из строк.
func FrontPage(rows ...Row) string {
	var b strings.Builder

	b.WriteString("<html><head><title>Hacker News</title></head><body><table>\n")

	for i, row := range rows {
		fmt.Fprintf(&b, `<tr class="athing" id="%d"><td class="title"><span class="rank">%d.</span></td>`, 40000000+i, i+1)

		b.WriteString(`<td class="title"><span class="titleline">`)

		if row.Href != "" || row.Title != "" {
			fmt.Fprintf(&b, `<a href="%s">%s</a>`, html.EscapeString(row.Href), html.EscapeString(row.Title))
		}

		b.WriteString("</span></td></tr>\n")

		if row.NoSubtext {
			continue
		}

		b.WriteString(`<tr><td colspan="2"></td><td class="subtext"><span class="subline">`)

		if row.ScoreText != "" {
			fmt.Fprintf(&b, `<span class="score" id="score_%d">%s</span>`, 40000000+i, html.EscapeString(row.ScoreText))
		}

		b.WriteString(`<a href="hide?id=1">hide</a></span></td></tr>` + "\n")
	}

	b.WriteString("</table></body></html>\n")

	return b.String()
}
