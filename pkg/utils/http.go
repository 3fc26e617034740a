package utils

import (
	"net/http"
	"net/url"
)

var sensitiveParams = []string{"access_token", "token"}

// RedactURL oculta credenciais enviadas na query string, para uso em logs
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}

	query := u.Query()
	changed := false
	for _, param := range sensitiveParams {
		if query.Has(param) {
			query.Set(param, "REDACTED")
			changed = true
		}
	}

	if changed {
		u.RawQuery = query.Encode()
	}

	return u.String()
}

// IsRetryableStatus indica se um status HTTP de provedor justifica nova tentativa
func IsRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
