// Package fixture provides a deterministic, offline MusicProvider used for
// demos and for platforms without a public API.
package fixture

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/jpp0ca/linkport/internal/domain"
)

// Provider serves a fixed catalogue playlist per platform and fabricates
// search results as variations of the requested track. The same seed and
// track always yield the same candidates.
type Provider struct {
	platform domain.Platform
	seed     int64
}

// NewProvider creates a fixture provider that answers as the given platform.
func NewProvider(platform domain.Platform, seed int64) *Provider {
	return &Provider{platform: platform, seed: seed}
}

func (p *Provider) Name() domain.Platform {
	return p.platform
}

func (p *Provider) FetchPlaylist(ctx context.Context, playlistURL string) (*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := catalogue[p.platform]
	if !ok {
		return nil, fmt.Errorf("fixture: %w: no demo playlist for %s", domain.ErrPlaylistNotFound, p.platform)
	}

	tracks := make([]domain.Track, len(entry.tracks))
	copy(tracks, entry.tracks)

	return &domain.Playlist{
		Title:         entry.title,
		Description:   entry.description,
		Platform:      p.platform,
		OriginalURL:   playlistURL,
		Tracks:        tracks,
		TotalDuration: entry.totalDuration,
	}, nil
}

func (p *Provider) SearchCandidates(ctx context.Context, track domain.Track, limit int) ([]domain.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := trackHash(track)
	rng := rand.New(rand.NewSource(p.seed ^ int64(key)))

	for _, elusive := range elusiveTitles {
		if strings.Contains(track.Title, elusive) && rng.Float64() > 0.5 {
			return []domain.Track{}, nil
		}
	}

	album := track.Album
	if album == "" {
		album = "Unknown Album"
	}

	var variations []domain.Track
	add := func(threshold float64, t domain.Track) {
		if threshold >= 0 && rng.Float64() <= threshold {
			return
		}
		t.PlatformRef = fmt.Sprintf("https://demo.linkport.app/%s/track/%08x-%d", p.platform, key, len(variations))
		variations = append(variations, t)
	}

	add(0.2, domain.Track{Title: track.Title, Artist: track.Artist, Album: album})
	add(0.3, domain.Track{Title: track.Title + " (Remastered)", Artist: track.Artist, Album: album + " (Remastered)"})
	add(0.4, domain.Track{Title: track.Title + " (Live)", Artist: track.Artist, Album: "Live Album"})
	add(0.5, domain.Track{Title: track.Title, Artist: track.Artist + " Cover Band", Album: "Cover Album"})
	add(0.6, domain.Track{Title: track.Title + " (Acoustic Version)", Artist: track.Artist, Album: "Acoustic Sessions"})

	switch p.platform {
	case domain.PlatformYouTube:
		add(-1, domain.Track{Title: track.Title + " - " + track.Artist, Artist: track.Artist + " - Topic", Album: album})
	case domain.PlatformSoundCloud:
		add(0.7, domain.Track{Title: track.Title + " (Remix)", Artist: track.Artist + " ft. Various Artists", Album: "Remix Collection"})
	}

	n := rng.Intn(3) + 1
	if limit > 0 && n > limit {
		n = limit
	}
	if n > len(variations) {
		n = len(variations)
	}
	return variations[:n], nil
}

func trackHash(track domain.Track) uint32 {
	h := fnv.New32a()
	h.Write([]byte(track.Title))
	h.Write([]byte{0})
	h.Write([]byte(track.Artist))
	return h.Sum32()
}
