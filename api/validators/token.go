package validators

import (
	"net/http"
	"strings"
)

// ExtractBearer pulls the bearer credential from the Authorization header.
// It returns false when the header is missing or not a bearer scheme.
func ExtractBearer(r *http.Request) (string, bool) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return "", false
	}
	if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(raw[7:])
	if token == "" {
		return "", false
	}
	return token, true
}
