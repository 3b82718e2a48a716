// Package bootstrap assembles the conversion service from configuration. It
// is shared by the HTTP server and the command-line client.
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jpp0ca/linkport/internal/adapters"
	"github.com/jpp0ca/linkport/internal/adapters/cache"
	"github.com/jpp0ca/linkport/internal/adapters/fixture"
	"github.com/jpp0ca/linkport/internal/adapters/qrcode"
	"github.com/jpp0ca/linkport/internal/adapters/soundcloud"
	"github.com/jpp0ca/linkport/internal/adapters/spotify"
	"github.com/jpp0ca/linkport/internal/adapters/youtube"
	"github.com/jpp0ca/linkport/internal/app"
	"github.com/jpp0ca/linkport/internal/config"
	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/logging"
	"github.com/jpp0ca/linkport/internal/matching"
	"github.com/jpp0ca/linkport/internal/ports"
)

const httpTimeout = 15 * time.Second

// Runtime holds the wired service and the resources it owns.
type Runtime struct {
	Service  *app.Service
	Registry *adapters.ProviderRegistry

	closers []func() error
}

// Close releases any connections opened while wiring.
func (r *Runtime) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New wires providers, cache, matching engine and assembler according to cfg.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) *Runtime {
	rt := &Runtime{Registry: adapters.NewProviderRegistry()}

	store := rt.searchStore(ctx, cfg, logging.Component(logger, "cache"))
	client := &http.Client{Timeout: httpTimeout}

	for _, platform := range domain.Platforms {
		provider := realProvider(ctx, cfg, platform, client)
		switch {
		case provider != nil:
			rt.Registry.Register(cache.NewCachedProvider(provider, store, cfg.SearchCacheTTL, logging.Component(logger, "cache")))
		case cfg.DemoMode:
			logger.Info("serving platform from demo catalogue", "platform", platform)
			rt.Registry.Register(fixture.NewProvider(platform, cfg.DemoSeed))
		default:
			logger.Warn("platform disabled: no credentials configured", "platform", platform)
		}
	}

	engine := matching.NewEngine(
		matching.WithWorkers(cfg.MatchWorkers),
		matching.WithRateLimit(cfg.SearchRatePerSecond),
		matching.WithLogger(logging.Component(logger, "matching")),
	)
	assembler := app.NewAssembler(cfg.ShareBaseURL, qrcode.NewGenerator(), logging.Component(logger, "assembler"))
	rt.Service = app.NewService(rt.Registry, engine, assembler, cfg.SearchLimit, logging.Component(logger, "service"))

	return rt
}

func (rt *Runtime) searchStore(ctx context.Context, cfg *config.Config, logger *log.Logger) cache.Store {
	if cfg.RedisAddress == "" {
		return cache.NewMemoryStore()
	}

	store, err := cache.NewRedisStore(ctx, cfg.RedisAddress, "linkport:")
	if err != nil {
		logger.Warn("redis unavailable, caching in memory", "addr", cfg.RedisAddress, "err", err)
		return cache.NewMemoryStore()
	}
	logger.Info("search cache connected", "addr", cfg.RedisAddress)
	rt.closers = append(rt.closers, store.Close)
	return store
}

func realProvider(ctx context.Context, cfg *config.Config, platform domain.Platform, client *http.Client) ports.MusicProvider {
	if !cfg.HasCredentials(platform) {
		return nil
	}
	switch platform {
	case domain.PlatformSpotify:
		tokens := spotify.ClientCredentials(ctx, client, cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		return spotify.NewProvider(client, tokens)
	case domain.PlatformYouTube:
		return youtube.NewProvider(client, cfg.YouTubeAPIKey)
	case domain.PlatformSoundCloud:
		return soundcloud.NewProvider(client, cfg.SoundCloudClientID)
	default:
		return nil
	}
}
