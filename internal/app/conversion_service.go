package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/jpp0ca/linkport/internal/adapters"
	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/matching"
	"github.com/jpp0ca/linkport/internal/playlisturl"
	"github.com/jpp0ca/linkport/internal/ports"
)

// Service implements ports.ConversionService. Track matching is delegated to
// a matching.Engine, which runs searches on the target provider concurrently.
type Service struct {
	registry    *adapters.ProviderRegistry
	engine      *matching.Engine
	assembler   *Assembler
	searchLimit int
	logger      *log.Logger
}

var _ ports.ConversionService = (*Service)(nil)

// NewService creates a new conversion service. searchLimit caps the number of
// candidates requested per track and defaults to 5.
func NewService(registry *adapters.ProviderRegistry, engine *matching.Engine, assembler *Assembler, searchLimit int, logger *log.Logger) *Service {
	if searchLimit < 1 {
		searchLimit = 5
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		registry:    registry,
		engine:      engine,
		assembler:   assembler,
		searchLimit: searchLimit,
		logger:      logger,
	}
}

func (s *Service) Platforms() []domain.Platform {
	return s.registry.Available()
}

func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	targetPlatform, err := domain.ParsePlatform(req.TargetPlatform)
	if err != nil {
		return nil, fmt.Errorf("target platform %q: %w", req.TargetPlatform, err)
	}

	sourcePlatform, err := playlisturl.Detect(req.SourceURL)
	if err != nil {
		return nil, err
	}

	source, err := s.registry.Get(sourcePlatform)
	if err != nil {
		return nil, fmt.Errorf("source provider error: %w", err)
	}
	target, err := s.registry.Get(targetPlatform)
	if err != nil {
		return nil, fmt.Errorf("target provider error: %w", err)
	}

	s.logger.Info("fetching source playlist", "platform", sourcePlatform, "url", req.SourceURL)
	playlist, err := source.FetchPlaylist(ctx, req.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source playlist: %w", err)
	}
	if len(playlist.Tracks) == 0 {
		return nil, domain.ErrEmptyPlaylist
	}

	s.logger.Info("matching tracks", "count", len(playlist.Tracks), "target", targetPlatform)
	batch := s.engine.MatchAll(ctx, playlist.Tracks, s.supplier(target))
	stats := batch.Stats()
	s.logger.Info("matching complete",
		"matched", stats.Matched, "partial", stats.Partial, "not_found", stats.NotFound)

	mirror := s.assembler.Assemble(playlist, batch, targetPlatform)
	s.logger.Info("mirror playlist assembled", "id", mirror.ID, "tracks", len(mirror.Tracks))

	return &domain.ConversionResult{
		SourcePlaylist: *playlist,
		TargetPlaylist: mirror,
		Matches:        batch,
		ShareableURL:   mirror.ShareableURL,
		QRCode:         mirror.QRCode,
		Stats:          stats,
	}, nil
}

func (s *Service) MatchTracks(ctx context.Context, targetName string, tracks []domain.Track) (domain.MatchBatch, error) {
	targetPlatform, err := domain.ParsePlatform(targetName)
	if err != nil {
		return nil, fmt.Errorf("target platform %q: %w", targetName, err)
	}
	target, err := s.registry.Get(targetPlatform)
	if err != nil {
		return nil, err
	}
	return s.engine.MatchAll(ctx, tracks, s.supplier(target)), nil
}

func (s *Service) supplier(target ports.MusicProvider) matching.CandidateSupplier {
	return matching.SupplierFunc(func(ctx context.Context, track domain.Track) ([]domain.Track, error) {
		return target.SearchCandidates(ctx, track, s.searchLimit)
	})
}
