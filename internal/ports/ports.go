package ports

import (
	"context"

	"github.com/jpp0ca/linkport/internal/domain"
)

// MusicProvider defines the contract that every streaming service adapter must
// implement. This is the primary driven port of the hexagonal architecture.
type MusicProvider interface {
	// Name returns the platform this provider talks to.
	Name() domain.Platform

	// FetchPlaylist reads the playlist behind a share URL, handling
	// pagination internally.
	FetchPlaylist(ctx context.Context, playlistURL string) (*domain.Playlist, error)

	// SearchCandidates returns up to limit tracks that may correspond to the
	// given track, in the platform's own ranking order.
	SearchCandidates(ctx context.Context, track domain.Track, limit int) ([]domain.Track, error)
}

// QRGenerator renders content as a QR code image data URL.
type QRGenerator interface {
	DataURL(content string) (string, error)
}

// ConversionService defines the driving port for the core conversion use case.
type ConversionService interface {
	// Convert reads a playlist from its source platform, matches every track
	// on the target platform and assembles the mirror playlist.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)

	// MatchTracks matches an explicit list of tracks on the target platform.
	MatchTracks(ctx context.Context, target string, tracks []domain.Track) (domain.MatchBatch, error)

	// Platforms returns the platforms that have a registered provider.
	Platforms() []domain.Platform
}
