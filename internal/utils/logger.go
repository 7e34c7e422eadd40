package utils

import (
	"log"
	"strings"
)

// LogEvent prints one service-level line tagged with module, action and
// request_id. The message is quoted so caller-supplied text stays on one line.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%q", strings.ToUpper(module), action, req, message)
}
