package router

import "strings"

type Kind uint8

const (
	// KindExact matches the path equal to the value.
	KindExact Kind = iota
	// KindPrefix matches paths starting with the value.
	KindPrefix
	// KindSegment matches paths whose second segment equals the value.
	KindSegment
)

// Pattern is a tagged path pattern. All comparisons are byte-exact.
type Pattern struct {
	Kind  Kind
	Value string
}

func Exact(path string) Pattern {
	return Pattern{Kind: KindExact, Value: path}
}

func Prefix(prefix string) Pattern {
	return Pattern{Kind: KindPrefix, Value: prefix}
}

// Segment matches the path if the text after its first slash equals the segment. As the
// segment includes its trailing slash, "/user-agent" matches Segment("user-agent"),
// while "/user-agent/" and "/user-agent/x" don't.
func Segment(segment string) Pattern {
	return Pattern{Kind: KindSegment, Value: segment}
}

func (p Pattern) Match(path string) bool {
	switch p.Kind {
	case KindExact:
		return path == p.Value
	case KindPrefix:
		return strings.HasPrefix(path, p.Value)
	case KindSegment:
		_, rest, found := strings.Cut(path, "/")
		return found && rest == p.Value
	}

	return false
}

// Remainder returns the part of the path following the pattern. It's meaningful for
// prefix patterns only, for the rest the empty string is returned.
func (p Pattern) Remainder(path string) string {
	if p.Kind != KindPrefix || !strings.HasPrefix(path, p.Value) {
		return ""
	}

	return path[len(p.Value):]
}

func (p Pattern) String() string {
	switch p.Kind {
	case KindExact:
		return "exact(" + p.Value + ")"
	case KindPrefix:
		return "prefix(" + p.Value + ")"
	case KindSegment:
		return "segment(" + p.Value + ")"
	}

	return "unknown(" + p.Value + ")"
}
