package helpers

import "strings"

// BearerToken extracts the credential from an Authorization header value.
// Returns "" when the header is absent or not a bearer scheme. The token
// itself is opaque here; refresh and expiry belong to the caller.
func BearerToken(authorization string) string {
	const prefix = "Bearer "
	if len(authorization) <= len(prefix) {
		return ""
	}
	if !strings.EqualFold(authorization[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(authorization[len(prefix):])
}
