package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jpp0ca/linkport/internal/domain"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port                string
	MatchWorkers        int
	LogLevel            string
	SearchLimit         int
	SearchRatePerSecond float64

	SpotifyClientID     string
	SpotifyClientSecret string
	YouTubeAPIKey       string
	SoundCloudClientID  string

	RedisAddress   string
	SearchCacheTTL time.Duration

	ShareBaseURL string
	DemoMode     bool
	DemoSeed     int64
}

// Load reads configuration from .env file (if present) and environment
// variables. It reports whether a .env file was found so the caller can log it.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	return &Config{
		Port:                getEnv("PORT", "8080"),
		MatchWorkers:        getInt("MATCH_WORKERS", 5),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		SearchLimit:         getInt("SEARCH_LIMIT", 5),
		SearchRatePerSecond: getFloat("SEARCH_RATE_PER_SECOND", 10),

		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		YouTubeAPIKey:       getEnv("YOUTUBE_API_KEY", ""),
		SoundCloudClientID:  getEnv("SOUNDCLOUD_CLIENT_ID", ""),

		RedisAddress:   getEnv("REDIS_ADDRESS", ""),
		SearchCacheTTL: getDuration("SEARCH_CACHE_TTL", time.Hour),

		ShareBaseURL: getEnv("SHARE_BASE_URL", "https://linkport.app/pl/"),
		DemoMode:     getBool("DEMO_MODE", false),
		DemoSeed:     int64(getInt("DEMO_SEED", 1)),
	}, envLoaded
}

// HasCredentials reports whether the given platform can be reached through
// its real API.
func (c *Config) HasCredentials(p domain.Platform) bool {
	switch p {
	case domain.PlatformSpotify:
		return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
	case domain.PlatformYouTube:
		return c.YouTubeAPIKey != ""
	case domain.PlatformSoundCloud:
		return c.SoundCloudClientID != ""
	default:
		return false
	}
}

// MissingCredentials lists the platforms with an API but no credentials.
func (c *Config) MissingCredentials() []domain.Platform {
	var missing []domain.Platform
	for _, p := range []domain.Platform{domain.PlatformSpotify, domain.PlatformYouTube, domain.PlatformSoundCloud} {
		if !c.HasCredentials(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
