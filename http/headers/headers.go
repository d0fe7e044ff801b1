package headers

// Names of the request headers that are recognized. Matching is done by prefix
// and is case-sensitive.
const (
	Host           = "Host"
	UserAgent      = "User-Agent"
	ContentLength  = "Content-Length"
	AcceptEncoding = "Accept-Encoding"
)

// Names of the response headers the handlers produce.
const (
	ContentType     = "Content-Type"
	ContentEncoding = "Content-Encoding"
)

// Optional holds a value that may be absent. Absence is distinct from a zero value:
// "Content-Length: 0" and no Content-Length at all are different requests.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding the value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// Value returns the held value and whether it is present.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.set
}

// Or returns the held value if present, otherwise the passed default.
func (o Optional[T]) Or(def T) T {
	if !o.set {
		return def
	}

	return o.value
}

// Set makes the Optional present, holding the value.
func (o *Optional[T]) Set(value T) {
	o.value, o.set = value, true
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// Headers is a fixed record of everything the server cares about in a request.
// Each field is absent unless the corresponding header line was seen.
type Headers struct {
	Host Optional[string]
	// UserAgent is reflected back by the /user-agent route.
	UserAgent Optional[string]
	// ContentEncoding holds the Accept-Encoding value. It's named after the response
	// header it gets echoed into.
	ContentEncoding Optional[string]
	ContentLength   Optional[uint64]
	// RequestBody is populated after the headers section is decoded, only if
	// ContentLength is present. The bytes are kept as they arrived.
	RequestBody Optional[[]byte]
}

// Header is a single response header line. Response headers are kept in a slice,
// so their order on the wire is exactly the order they were added in.
type Header struct {
	Key, Value string
}
