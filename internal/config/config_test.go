package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jpp0ca/linkport/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "MATCH_WORKERS", "LOG_LEVEL", "SEARCH_LIMIT", "SEARCH_RATE_PER_SECOND",
		"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "YOUTUBE_API_KEY", "SOUNDCLOUD_CLIENT_ID",
		"REDIS_ADDRESS", "SEARCH_CACHE_TTL", "SHARE_BASE_URL", "DEMO_MODE", "DEMO_SEED",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, _ := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://linkport.app/pl/", cfg.ShareBaseURL)
	assert.Equal(t, 5, cfg.MatchWorkers)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.Equal(t, 10.0, cfg.SearchRatePerSecond)
	assert.Equal(t, time.Hour, cfg.SearchCacheTTL)
	assert.False(t, cfg.DemoMode)
	assert.Equal(t, int64(1), cfg.DemoSeed)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MATCH_WORKERS", "8")
	t.Setenv("SEARCH_RATE_PER_SECOND", "2.5")
	t.Setenv("SEARCH_CACHE_TTL", "15m")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("SHARE_BASE_URL", "https://example.test/p/")

	cfg, _ := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 8, cfg.MatchWorkers)
	assert.Equal(t, 2.5, cfg.SearchRatePerSecond)
	assert.Equal(t, 15*time.Minute, cfg.SearchCacheTTL)
	assert.True(t, cfg.DemoMode)
	assert.Equal(t, "https://example.test/p/", cfg.ShareBaseURL)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("MATCH_WORKERS", "lots")
	t.Setenv("SEARCH_CACHE_TTL", "forever")
	t.Setenv("DEMO_MODE", "maybe")

	cfg, _ := Load()

	assert.Equal(t, 5, cfg.MatchWorkers)
	assert.Equal(t, time.Hour, cfg.SearchCacheTTL)
	assert.False(t, cfg.DemoMode)
}

func TestMissingCredentials(t *testing.T) {
	cfg := &Config{SpotifyClientID: "id", SpotifyClientSecret: "secret"}

	assert.True(t, cfg.HasCredentials(domain.PlatformSpotify))
	assert.False(t, cfg.HasCredentials(domain.PlatformApple))
	assert.Equal(t, []domain.Platform{domain.PlatformYouTube, domain.PlatformSoundCloud}, cfg.MissingCredentials())

	cfg.YouTubeAPIKey = "key"
	cfg.SoundCloudClientID = "cid"
	assert.Empty(t, cfg.MissingCredentials())
}
