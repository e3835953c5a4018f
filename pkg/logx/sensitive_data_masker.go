package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Паттерны для дампов HTTP-запросов/ответов: авторизация и куки не должны
// попадать в логи даже при скрейпинге залогиненной сессии.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)(Authorization: Bearer ).+?(\r)`),
	regexp.MustCompile(`(?s)(Authorization: Basic ).+?(\r)`),
	regexp.MustCompile(`(?s)(Cookie: ).+?(\r)`),
	regexp.MustCompile(`(?s)(Set-Cookie: ).+?(\r)`),
	regexp.MustCompile(`(?s)(X-Api-Key: ).+?(\r)`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
