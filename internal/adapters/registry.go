package adapters

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/ports"
)

// ProviderRegistry maps platforms to their MusicProvider implementations.
// It is safe for concurrent use.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[domain.Platform]ports.MusicProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[domain.Platform]ports.MusicProvider),
	}
}

// Register adds a provider to the registry, keyed by its Name(). A later
// registration for the same platform replaces the earlier one.
func (r *ProviderRegistry) Register(provider ports.MusicProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// Get returns the provider for the given platform, or an error wrapping
// domain.ErrUnsupportedPlatform if none is registered.
func (r *ProviderRegistry) Get(platform domain.Platform) (ports.MusicProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[platform]
	if !ok {
		return nil, fmt.Errorf("%w: no provider registered for %q", domain.ErrUnsupportedPlatform, platform)
	}
	return provider, nil
}

// Available returns the registered platforms in alphabetical order.
func (r *ProviderRegistry) Available() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]domain.Platform, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
