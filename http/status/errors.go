package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrNotFound = NewError(NotFound, "not found")
	// ErrMalformedRequest is returned by the framer in strict mode when the stream ends
	// before the headers section terminator or before the whole body is received.
	ErrMalformedRequest = NewError(0, "malformed request")
)
