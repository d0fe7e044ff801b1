package method

//go:generate stringer -type=Method
type Method uint8

// GET is the zero value on purpose: a request whose method token is missing
// or unrecognized is served as GET.
const (
	GET Method = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the number of known methods.
	Count = iota
)

// List contains all the supported HTTP methods sorted by their integer value.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

// Parse returns the method matching the token. Matching is case-sensitive, as method
// tokens are. Anything unrecognized, including an empty string, results in GET.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return GET
}
