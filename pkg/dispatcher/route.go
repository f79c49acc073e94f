package dispatcher

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"novaturn/pkg/logger"
)

// matching :
// The precision with which a route matched an incoming request.
type matching int

const (
	methodNotAllowed matching = iota
	notFound
	matchedPartial
	matched
)

// Route :
// One path, a set of allowed HTTP verbs, and the handler to call
// when both match an incoming request. Paths are split into `/`
// separated tokens, each compiled as its own anchored regexp, so a
// segment like `[0-9]+` can match a game or empire identifier.
//
// The `methods` defines the HTTP verbs accepted by this route.
//
// The `elems` are the path's tokens, each as an anchored regexp.
//
// The `handler` processes a matched request.
type Route struct {
	methods map[string]bool
	elems   []*regexp.Regexp
	handler http.Handler
	log     logger.Logger
}

// ErrRouteNotValid :
var ErrRouteNotValid = fmt.Errorf("invalid expression provided for route")

type routeMatch struct {
	handler http.Handler
	match   matching
	length  int
}

// buildRouteElements :
func buildRouteElements(route string) ([]*regexp.Regexp, error) {
	route = strings.TrimPrefix(route, "/")
	route = strings.TrimSuffix(route, "/")

	if route == "" {
		return []*regexp.Regexp{}, nil
	}

	tokens := strings.Split(route, "/")
	elems := make([]*regexp.Regexp, 0, len(tokens))

	for _, token := range tokens {
		str := token
		if !strings.HasPrefix(str, "^") {
			str = "^" + str
		}
		if !strings.HasSuffix(str, "$") {
			str = str + "$"
		}

		exp, err := regexp.Compile(str)
		if err != nil {
			return elems, ErrRouteNotValid
		}

		elems = append(elems, exp)
	}

	return elems, nil
}

// NewRoute :
// Compiles `path` into matchable tokens. Panics on a malformed
// path, since route tables are defined at startup and a bad path
// there is a programming error, not a runtime condition to recover
// from.
func NewRoute(path string, log logger.Logger) *Route {
	tokens, err := buildRouteElements(path)
	if err != nil {
		log.Trace(logger.Error, getModuleName(), fmt.Sprintf("Unable to create route tokens for \"%s\" (err: %v)", path, err))
		panic(ErrRouteNotValid)
	}

	return &Route{
		methods: make(map[string]bool),
		elems:   tokens,
		handler: http.Handler(NoOp(log)),
		log:     log,
	}
}

// Handler :
func (r *Route) Handler() http.Handler {
	return r.handler
}

// Methods :
// Registers the HTTP verbs this route accepts. Returns the route
// to allow chaining.
func (r *Route) Methods(methods ...string) *Route {
	for method := range filterMethods(methods, r.log) {
		r.methods[method] = true
	}
	return r
}

// HandlerFunc :
// Assigns the processing function for this route. Returns the
// route to allow chaining.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	r.handler = http.HandlerFunc(f)
	return r
}

// match :
// Scores how well this route fits an incoming request: an exact
// token-for-token match, a prefix match (useful for the router to
// report "path matched, method didn't" instead of a bare 404), or
// no match at all.
func (r *Route) match(req *http.Request) routeMatch {
	path := req.URL.String()
	if id := strings.Index(path, "?"); id >= 0 {
		path = path[:id]
	}

	m := routeMatch{}
	m.length = r.matchName(path)

	if m.length == 0 {
		m.match = notFound
		return m
	}

	if _, ok := r.methods[req.Method]; !ok {
		m.match = methodNotAllowed
		return m
	}

	m.match = matchedPartial
	if m.length == len(r.elems) {
		m.match = matched
	}
	m.handler = r.handler

	return m
}

// matchName :
// Counts how many leading path segments this route's tokens match.
func (r *Route) matchName(uri string) int {
	uri = strings.TrimPrefix(uri, "/")
	uri = strings.TrimSuffix(uri, "/")

	if uri == "" {
		if len(r.elems) == 0 {
			return 1
		}
		return 0
	}

	tokens := strings.Split(uri, "/")
	if len(r.elems) > len(tokens) {
		return 0
	}

	length := 0
	ok := true
	for id := 0; id < len(r.elems) && ok; id++ {
		ok = r.elems[id].MatchString(tokens[id])
		if ok {
			length++
		}
	}

	return length
}
