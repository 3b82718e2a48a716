// Package cache memoizes platform search results in front of a
// MusicProvider.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/ports"
)

// CachedProvider wraps a MusicProvider and caches SearchCandidates results.
// Playlist reads are passed through. A failing store never fails a search.
type CachedProvider struct {
	ports.MusicProvider
	store  Store
	ttl    time.Duration
	logger *log.Logger
}

// NewCachedProvider decorates provider with store. A nil logger discards
// output.
func NewCachedProvider(provider ports.MusicProvider, store Store, ttl time.Duration, logger *log.Logger) *CachedProvider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CachedProvider{MusicProvider: provider, store: store, ttl: ttl, logger: logger}
}

func (c *CachedProvider) SearchCandidates(ctx context.Context, track domain.Track, limit int) ([]domain.Track, error) {
	key := searchKey(c.Name(), track, limit)

	if raw, err := c.store.Get(ctx, key); err == nil {
		var cached []domain.Track
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("discarding unreadable cache entry", "key", key)
	} else if !errors.Is(err, ErrMiss) {
		c.logger.Warn("cache read failed", "key", key, "err", err)
	}

	candidates, err := c.MusicProvider.SearchCandidates(ctx, track, limit)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(candidates)
	if err == nil {
		err = c.store.Set(ctx, key, raw, c.ttl)
	}
	if err != nil {
		c.logger.Warn("cache write failed", "key", key, "err", err)
	}
	return candidates, nil
}

func searchKey(platform domain.Platform, track domain.Track, limit int) string {
	sum := sha1.Sum([]byte(strings.ToLower(track.Title) + "\x00" + strings.ToLower(track.Artist)))
	return fmt.Sprintf("search:%s:%d:%s", platform, limit, hex.EncodeToString(sum[:]))
}
