package dispatcher

import (
	"fmt"
	"net/http"

	"novaturn/pkg/logger"
)

// NotFound :
// An HTTP handler that only logs the request and answers 404. Used
// as the router's default when no route matches a request.
func NotFound(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Trace(logger.Warning, getModuleName(), fmt.Sprintf("Handling request from \"%v\" in not found handler", r.URL))
		http.NotFound(w, r)
	}
}

// NotAllowed :
// An HTTP handler for a path that matched a route but not its
// method.
func NotAllowed(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Trace(logger.Warning, getModuleName(), fmt.Sprintf("Handling request from \"%v\" in not allowed handler", r.URL))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// NoOp :
// A placeholder handler for a freshly-created route that hasn't
// been given a real handler func yet.
func NoOp(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Trace(logger.Warning, getModuleName(), fmt.Sprintf("Handling request from \"%v\" in no op handler", r.URL))
	}
}

// WithSafetyNet :
// Wraps `next` so a panic inside it (a nil snapshot, a malformed
// command payload that slipped past decoding) answers 500 instead of
// crashing the whole process -- a single bad request must never take
// down every game the server is running.
func WithSafetyNet(log logger.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		func() {
			defer func() {
				if err := recover(); err != nil {
					log.Trace(logger.Error, getModuleName(), fmt.Sprintf("Recovering from unexpected panic (err: %v)", err))
					http.Error(w, "Unexpected error while processing request", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		}()
	}
}
