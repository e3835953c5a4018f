package config

// Scrape держит селекторы разметки отдельно от логики: если HN поменяет
// вёрстку, правится дефолт или переменная окружения, а не код экстрактора.
type Scrape struct {
	RowSelector   string `env:"HN_ROW_SELECTOR" envDefault:"tr.athing" validate:"required"`
	TitleSelector string `env:"HN_TITLE_SELECTOR" envDefault:"span.titleline > a" validate:"required"`
	ScoreSelector string `env:"HN_SCORE_SELECTOR" envDefault:"span.score" validate:"required"`
	Threshold     int    `env:"HN_SCORE_THRESHOLD" envDefault:"100" validate:"gte=0"`
	Limit         int    `env:"HN_LIMIT" envDefault:"0" validate:"gte=0"`
}
