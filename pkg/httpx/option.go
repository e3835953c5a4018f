package httpx

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen limits logged request/response dumps to n bytes.
// Zero means no limit.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

// WithSensitiveDataMasker sets the masker applied to dumps before logging.
func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}
