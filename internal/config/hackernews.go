package config

import "time"

type HackerNews struct {
	URL           string        `env:"HN_URL" envDefault:"https://news.ycombinator.com/" validate:"required,url"`
	Timeout       time.Duration `env:"HN_TIMEOUT" envDefault:"10s"`
	UserAgent     string        `env:"HN_USER_AGENT" envDefault:"hn_top/1.0"`
	MaxBodyBytes  int64         `env:"HN_MAX_BODY_BYTES" envDefault:"5242880" validate:"gt=0"`
	LogDumpMaxLen int           `env:"HN_LOG_DUMP_MAX_LEN" envDefault:"2048" validate:"gte=0"`
}
