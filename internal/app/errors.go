package app

type RequestErrorCode string

const (
	ErrInvalidRange RequestErrorCode = "INVALID_RANGE"
	ErrInvalidDate  RequestErrorCode = "INVALID_DATE"
	ErrNotFound     RequestErrorCode = "NOT_FOUND"
)

// RequestError reports a request the caller can fix.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
