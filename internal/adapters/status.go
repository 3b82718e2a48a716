package adapters

import (
	"fmt"
	"net/http"

	"github.com/jpp0ca/linkport/internal/domain"
)

// StatusError converts a non-2xx platform API response into an error wrapping
// the matching domain sentinel. quotaOn403 is set for APIs that answer 403
// when a daily quota is exhausted.
func StatusError(platform domain.Platform, status int, body []byte, quotaOn403 bool) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized:
		sentinel = domain.ErrAuthFailed
	case http.StatusForbidden:
		sentinel = domain.ErrAuthFailed
		if quotaOn403 {
			sentinel = domain.ErrQuotaExceeded
		}
	case http.StatusNotFound:
		sentinel = domain.ErrPlaylistNotFound
	case http.StatusTooManyRequests:
		sentinel = domain.ErrQuotaExceeded
	default:
		return fmt.Errorf("%s API returned status %d: %s", platform, status, truncate(body))
	}
	return fmt.Errorf("%w: %s API returned status %d: %s", sentinel, platform, status, truncate(body))
}

func truncate(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
