// Package playlisturl recognizes playlist share links and extracts the
// platform-specific playlist identifiers from them.
package playlisturl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jpp0ca/linkport/internal/domain"
)

var spotifyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://)?(?:open\.)?spotify\.com/(?:[a-z-]+/)?playlist/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`(?i)spotify:playlist:([a-zA-Z0-9]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?spotify\.link/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`(?i)playlist[/:]([a-zA-Z0-9]+)`),
}

var spotifyFallback = regexp.MustCompile(`[a-zA-Z0-9]{15,25}`)

var youtubeListParam = regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`)

// Detect returns the platform a playlist URL belongs to.
func Detect(raw string) (domain.Platform, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(raw), "spotify:") {
		return domain.PlatformSpotify, nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPlaylistURL, raw)
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case hostIs(host, "spotify.com"), hostIs(host, "spotify.link"):
		return domain.PlatformSpotify, nil
	case hostIs(host, "youtube.com"), hostIs(host, "youtu.be"):
		return domain.PlatformYouTube, nil
	case hostIs(host, "soundcloud.com"):
		return domain.PlatformSoundCloud, nil
	case hostIs(host, "music.apple.com"):
		return domain.PlatformApple, nil
	}
	return "", fmt.Errorf("%w: cannot detect platform from %q", domain.ErrUnsupportedPlatform, raw)
}

func hostIs(host, domainName string) bool {
	return host == domainName || strings.HasSuffix(host, "."+domainName)
}

// SpotifyPlaylistID extracts the playlist ID from a Spotify URL or URI.
func SpotifyPlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, p := range spotifyPatterns {
		m := p.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		if id := m[1]; len(id) >= 10 && len(id) <= 30 {
			return id, nil
		}
	}

	if id := spotifyFallback.FindString(raw); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("%w: no Spotify playlist ID in %q", domain.ErrInvalidPlaylistURL, raw)
}

// YouTubePlaylistID extracts the value of the list query parameter.
func YouTubePlaylistID(raw string) (string, error) {
	m := youtubeListParam.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: no YouTube playlist ID in %q", domain.ErrInvalidPlaylistURL, raw)
	}
	return m[1], nil
}
