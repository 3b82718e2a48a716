package domain

import "errors"

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrInvalidPlaylistURL  = errors.New("invalid playlist URL")
	ErrPlaylistNotFound    = errors.New("playlist not found or is private")
	ErrEmptyPlaylist       = errors.New("source playlist is empty")

	// Provider errors
	ErrAuthFailed    = errors.New("platform authentication failed")
	ErrQuotaExceeded = errors.New("platform quota or rate limit exceeded")
	ErrMissingCreds  = errors.New("missing platform credentials")
)
