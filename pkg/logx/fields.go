package logx

const (
	FieldAppName      = "app-name"
	FieldDurationMs   = "duration-ms"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldTraceID      = "trace-id"
	FieldURL          = "url"
)
