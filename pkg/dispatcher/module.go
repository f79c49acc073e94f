package dispatcher

// getModuleName :
// Tag used on every log line this package emits, so a request
// routed through a misconfigured path is easy to isolate from the
// turn-engine's own log output.
func getModuleName() string {
	return "dispatcher"
}
