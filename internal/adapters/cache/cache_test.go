package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/linkport/internal/domain"
)

type countingProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingProvider) Name() domain.Platform { return domain.PlatformSpotify }

func (p *countingProvider) FetchPlaylist(_ context.Context, _ string) (*domain.Playlist, error) {
	return &domain.Playlist{Title: "passthrough"}, nil
}

func (p *countingProvider) SearchCandidates(_ context.Context, track domain.Track, _ int) ([]domain.Track, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return []domain.Track{{Title: track.Title, Artist: track.Artist, PlatformRef: "ref"}}, nil
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}

func TestCachedProvider_HitsCache(t *testing.T) {
	inner := &countingProvider{}
	c := NewCachedProvider(inner, NewMemoryStore(), time.Hour, nil)
	track := domain.Track{Title: "Flowers", Artist: "Miley Cyrus"}

	first, err := c.SearchCandidates(context.Background(), track, 5)
	require.NoError(t, err)
	second, err := c.SearchCandidates(context.Background(), domain.Track{Title: "FLOWERS", Artist: "miley cyrus"}, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)

	_, _ = c.SearchCandidates(context.Background(), track, 3)
	assert.Equal(t, 2, inner.calls, "limit is part of the key")
}

func TestCachedProvider_ErrorsAreNotCached(t *testing.T) {
	inner := &countingProvider{err: domain.ErrQuotaExceeded}
	c := NewCachedProvider(inner, NewMemoryStore(), time.Hour, nil)
	track := domain.Track{Title: "Flowers", Artist: "Miley Cyrus"}

	_, err := c.SearchCandidates(context.Background(), track, 5)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	_, err = c.SearchCandidates(context.Background(), track, 5)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_BrokenStoreDegrades(t *testing.T) {
	inner := &countingProvider{}
	c := NewCachedProvider(inner, brokenStore{}, time.Hour, nil)

	candidates, err := c.SearchCandidates(context.Background(), domain.Track{Title: "a", Artist: "b"}, 5)

	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestCachedProvider_PassesThroughPlaylist(t *testing.T) {
	c := NewCachedProvider(&countingProvider{}, NewMemoryStore(), time.Hour, nil)

	pl, err := c.FetchPlaylist(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "passthrough", pl.Title)
	assert.Equal(t, domain.PlatformSpotify, c.Name())
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))
	v, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	now = now.Add(time.Minute)
	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrMiss)
}
