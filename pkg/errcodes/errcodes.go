package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidURL          failure.ErrorCode = "InvalidURL"

	// Коды скрейпера
	FetchFailed      failure.ErrorCode = "FetchFailed"      // сеть/транспорт, запрос не дошёл
	UnexpectedStatus failure.ErrorCode = "UnexpectedStatus" // страница ответила не-2xx
	ResponseTooLarge failure.ErrorCode = "ResponseTooLarge" // тело больше лимита чтения
	RowParse         failure.ErrorCode = "RowParse"         // битая строка листинга, скипаем только её
)
