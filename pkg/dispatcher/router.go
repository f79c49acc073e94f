package dispatcher

import (
	"fmt"
	"net/http"
	"time"

	"novaturn/pkg/logger"
)

// Router :
// A minimal path+method HTTP router: routes are registered once at
// startup and matched in registration order against every incoming
// request. Longer/more-specific route tables than this engine's
// handful of game endpoints would want a trie, but a linear scan is
// plenty for this server's small, fixed set of routes.
//
// The `routes` are tried in the order they were registered.
type Router struct {
	notFoundHandler         http.Handler
	methodNotAllowedHandler http.Handler
	routes                  []*Route
	log                     logger.Logger
}

// NewRouter :
func NewRouter(log logger.Logger) *Router {
	return &Router{
		notFoundHandler:         NotFound(log),
		methodNotAllowedHandler: NotAllowed(log),
		routes:                  make([]*Route, 0),
		log:                     log,
	}
}

// addRoute :
func (r *Router) addRoute(path string) *Route {
	if len(path) == 0 {
		path = "/"
	}
	route := NewRoute(path, r.log)
	r.routes = append(r.routes, route)
	return route
}

// HandleFunc :
// Registers `f` at `path`, returning the Route so the caller can
// chain `.Methods(...)` onto it.
func (r *Router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.addRoute(path).HandlerFunc(f)
}

// ServeHTTP :
// Dispatches to the best-matching route's handler, logging how long
// the request took once dispatch completes -- the one piece of
// per-request telemetry every game-server endpoint benefits from
// without each handler having to add it itself.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	var match routeMatch
	r.Match(req, &match)
	match.handler.ServeHTTP(w, req)

	r.log.Trace(logger.Verbose, getModuleName(), fmt.Sprintf("%s %s handled in %v", req.Method, req.URL.Path, time.Since(start)))
}

// Match :
// Finds the best-matching route for `req`, falling back to the
// method-not-allowed or not-found handler when nothing fits.
func (r *Router) Match(req *http.Request, m *routeMatch) bool {
	wrongMethod := false
	for _, route := range r.routes {
		*m = route.match(req)
		if m.match == matched {
			return true
		}
		if m.match == methodNotAllowed {
			wrongMethod = true
		}
	}

	if wrongMethod {
		m.handler = r.methodNotAllowedHandler
		return true
	}

	m.match = notFound
	m.handler = r.notFoundHandler
	return true
}
