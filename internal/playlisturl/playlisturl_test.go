package playlisturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/linkport/internal/domain"
)

func TestDetect(t *testing.T) {
	cases := map[string]domain.Platform{
		"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M":     domain.PlatformSpotify,
		"spotify:playlist:37i9dQZF1DXcBWIGoYBM5M":                      domain.PlatformSpotify,
		"https://spotify.link/abcdefghij":                              domain.PlatformSpotify,
		"https://www.youtube.com/playlist?list=PL4fGSI1pDJn6jXS_Tv_N9": domain.PlatformYouTube,
		"https://music.youtube.com/playlist?list=PL4fGSI1pDJn6jXS_Tv":  domain.PlatformYouTube,
		"https://youtu.be/dQw4w9WgXcQ?list=PLabc":                      domain.PlatformYouTube,
		"https://soundcloud.com/someone/sets/weekly":                   domain.PlatformSoundCloud,
		"https://music.apple.com/us/playlist/todays-hits/pl.f4d106fed": domain.PlatformApple,
	}
	for raw, want := range cases {
		got, err := Detect(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestDetect_Unsupported(t *testing.T) {
	_, err := Detect("https://tidal.com/browse/playlist/123")
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)

	// Lookalike hosts are not accepted.
	_, err = Detect("https://notspotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M")
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}

func TestDetect_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not a url", "open.spotify.com/playlist/x"} {
		_, err := Detect(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidPlaylistURL, raw)
	}
}

func TestSpotifyPlaylistID(t *testing.T) {
	cases := map[string]string{
		"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc123": "37i9dQZF1DXcBWIGoYBM5M",
		"https://open.spotify.com/intl-de/playlist/37i9dQZF1DXcBWIGoYBM5M":   "37i9dQZF1DXcBWIGoYBM5M",
		"spotify:playlist:37i9dQZF1DXcBWIGoYBM5M":                            "37i9dQZF1DXcBWIGoYBM5M",
		"https://spotify.link/AbCdEfGhIjK":                                   "AbCdEfGhIjK",
	}
	for raw, want := range cases {
		got, err := SpotifyPlaylistID(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := SpotifyPlaylistID("https://open.spotify.com/playlist/")
	assert.ErrorIs(t, err, domain.ErrInvalidPlaylistURL)
}

func TestYouTubePlaylistID(t *testing.T) {
	id, err := YouTubePlaylistID("https://www.youtube.com/playlist?list=PL4fGSI1pDJn6jXS_Tv_N9")
	require.NoError(t, err)
	assert.Equal(t, "PL4fGSI1pDJn6jXS_Tv_N9", id)

	id, err = YouTubePlaylistID("https://www.youtube.com/watch?v=abc&list=PLx-y_z")
	require.NoError(t, err)
	assert.Equal(t, "PLx-y_z", id)

	_, err = YouTubePlaylistID("https://www.youtube.com/watch?v=abc")
	assert.ErrorIs(t, err, domain.ErrInvalidPlaylistURL)
}
