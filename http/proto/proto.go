package proto

type Proto uint8

// HTTP11 is the only protocol spoken. It is the zero value, so a request with
// a missing version token is still served as HTTP/1.1.
const HTTP11 Proto = 0

// Parse normalizes any version token to HTTP11.
func Parse(string) Proto {
	return HTTP11
}

func (p Proto) String() string {
	return "HTTP/1.1"
}
