package router

import (
	"github.com/indigo-web/minihttp/http"
)

// Router is what a connection hands the decoded request to.
type Router interface {
	OnRequest(request *http.Request) *http.Response
}

// Handler produces a response for a single route.
type Handler interface {
	Handle(request *http.Request) *http.Response
}

type HandlerFunc func(request *http.Request) *http.Response

func (h HandlerFunc) Handle(request *http.Request) *http.Response {
	return h(request)
}

// Rule binds a pattern to the handler serving it.
type Rule struct {
	Pattern Pattern
	Handler Handler
}

// Table is a Router evaluating its rules in the order they were added. The first rule
// whose pattern matches the request path wins. If none does, the fallback handler is
// called.
type Table struct {
	rules    []Rule
	fallback Handler
}

var _ Router = new(Table)

func New(fallback Handler) *Table {
	return &Table{
		fallback: fallback,
	}
}

// Route appends a new rule. It has lower priority than every rule added before it.
func (t *Table) Route(pattern Pattern, handler Handler) *Table {
	t.rules = append(t.rules, Rule{
		Pattern: pattern,
		Handler: handler,
	})

	return t
}

// Match returns the rule matching the path. False is returned if the fallback
// would be used.
func (t *Table) Match(path string) (Rule, bool) {
	for _, rule := range t.rules {
		if rule.Pattern.Match(path) {
			return rule, true
		}
	}

	return Rule{}, false
}

func (t *Table) OnRequest(request *http.Request) *http.Response {
	if rule, found := t.Match(request.Path); found {
		return rule.Handler.Handle(request)
	}

	return t.fallback.Handle(request)
}
