package domain

import "time"

// Platform identifies a music streaming service.
type Platform string

const (
	PlatformSpotify    Platform = "spotify"
	PlatformYouTube    Platform = "youtube"
	PlatformSoundCloud Platform = "soundcloud"
	PlatformApple      Platform = "apple"
)

// Platforms lists every platform the API knows about, in display order.
var Platforms = []Platform{PlatformSpotify, PlatformYouTube, PlatformSoundCloud, PlatformApple}

// ParsePlatform returns the Platform named by s, or ErrUnsupportedPlatform.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrUnsupportedPlatform
}

// Track represents a song identified by its title and artist. Artist may be a
// composite "A, B, C" join of several performers. PlatformRef is only set on
// tracks returned by a platform search.
type Track struct {
	Title           string `json:"title" binding:"required"`
	Artist          string `json:"artist" binding:"required"`
	Album           string `json:"album,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	PlatformRef     string `json:"platform_ref,omitempty"`
}

// Playlist represents a playlist read from a source platform, or the mirror
// assembled on the target platform.
type Playlist struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Platform      Platform  `json:"platform"`
	OriginalURL   string    `json:"original_url"`
	Tracks        []Track   `json:"tracks"`
	TotalDuration int       `json:"total_duration"`
	ShareableURL  string    `json:"shareable_url,omitempty"`
	QRCode        string    `json:"qr_code,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// ConversionRequest asks for a playlist at SourceURL to be mirrored onto
// TargetPlatform.
type ConversionRequest struct {
	SourceURL      string `json:"source_url" binding:"required"`
	TargetPlatform string `json:"target_platform" binding:"required"`
}

// MatchRequest asks for an explicit list of tracks to be matched on
// TargetPlatform without assembling a playlist.
type MatchRequest struct {
	TargetPlatform string  `json:"target_platform" binding:"required"`
	Tracks         []Track `json:"tracks" binding:"required,dive"`
}

// ConversionResult summarizes the outcome of a full playlist conversion.
type ConversionResult struct {
	SourcePlaylist Playlist   `json:"source_playlist"`
	TargetPlaylist Playlist   `json:"target_playlist"`
	Matches        MatchBatch `json:"matches"`
	ShareableURL   string     `json:"shareable_url"`
	QRCode         string     `json:"qr_code,omitempty"`
	Stats          Stats      `json:"stats"`
}
