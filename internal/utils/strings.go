package utils

import "strings"

// BearerToken extracts the credential from an "Authorization: Bearer <token>"
// header value. ok is false when the scheme is absent or different.
func BearerToken(header string) (token string, ok bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
