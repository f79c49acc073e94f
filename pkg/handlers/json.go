package handlers

import (
	"encoding/json"
	"net/http"
)

// WriteJSON :
// Marshals `payload` and writes it with `status`. A marshalling
// failure at this point means a server-side bug (the payload is
// always one of our own types), so it's reported as a 500 rather
// than silently dropped.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	bts, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bts)
}

// DecodeJSON :
// Reads and unmarshals the request body into `dest`. Returns the
// decode error unchanged so callers can turn it into a 400.
func DecodeJSON(r *http.Request, dest interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dest)
}
