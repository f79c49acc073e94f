package dispatcher

import (
	"fmt"
	"strings"

	"novaturn/pkg/logger"
)

// getSupportedMethods :
func getSupportedMethods() map[string]bool {
	return map[string]bool{
		"GET":     true,
		"HEAD":    true,
		"POST":    true,
		"PUT":     true,
		"DELETE":  true,
		"CONNECT": true,
		"OPTIONS": true,
		"TRACE":   true,
		"PATCH":   true,
	}
}

// filterMethods :
// Upper-cases and drops unsupported HTTP verbs from a route
// registration, logging each one dropped so a typo'd verb in a
// route definition surfaces at startup rather than silently
// matching nothing.
func filterMethods(methods []string, log logger.Logger) map[string]bool {
	filtered := make(map[string]bool)
	supported := getSupportedMethods()

	for _, method := range methods {
		consolidated := strings.ToUpper(method)
		if _, ok := supported[consolidated]; !ok {
			log.Trace(logger.Error, getModuleName(), fmt.Sprintf("Filtering invalid HTTP method \"%s\"", method))
			continue
		}
		filtered[consolidated] = true
	}

	return filtered
}
