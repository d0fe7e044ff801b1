package status

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to respond with.
const (
	OK       Code = 200 // RFC 9110, 15.3.1
	Created  Code = 201 // RFC 9110, 15.3.2
	NotFound Code = 404 // RFC 9110, 15.5.5
)

// Text returns the reason phrase for the code. It returns the empty string
// if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case NotFound:
		return "Not Found"
	}

	return ""
}

// Line returns the code followed by its reason phrase, e.g. "200 OK", as it
// appears in the response line.
func Line(code Code) string {
	switch code {
	case OK:
		return "200 OK"
	case Created:
		return "201 Created"
	case NotFound:
		return "404 Not Found"
	}

	return ""
}
