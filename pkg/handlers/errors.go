package handlers

import (
	"net/http"

	"novaturn/pkg/logger"
)

// ErrorResponse :
// The JSON body returned for any non-2xx response, so clients always
// get a consistent shape to parse regardless of which endpoint or
// failure produced it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReplyError :
// Logs `err` at `level` and writes it to the client as a JSON error
// body with `status`.
func ReplyError(w http.ResponseWriter, log logger.Logger, module string, level logger.Severity, status int, err error) {
	log.Trace(level, module, err.Error())
	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}
