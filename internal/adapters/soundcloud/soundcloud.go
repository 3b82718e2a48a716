package soundcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jpp0ca/linkport/internal/adapters"
	"github.com/jpp0ca/linkport/internal/domain"
)

const (
	defaultBaseURL = "https://api.soundcloud.com"
	maxLimit       = 50
)

// Provider implements ports.MusicProvider for SoundCloud using a public
// client ID.
type Provider struct {
	client   *http.Client
	clientID string
	baseURL  string
}

// NewProvider creates a new SoundCloud provider with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewProvider(client *http.Client, clientID string) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{client: client, clientID: clientID, baseURL: defaultBaseURL}
}

// WithBaseURL points the provider at a different API root.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

func (p *Provider) Name() domain.Platform {
	return domain.PlatformSoundCloud
}

// -- API response types (internal) ------------------------------------------

type resolved struct {
	Kind        string      `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tracks      []trackData `json:"tracks"`
}

type trackData struct {
	Title        string   `json:"title"`
	User         userData `json:"user"`
	DurationMS   int      `json:"duration"`
	PermalinkURL string   `json:"permalink_url"`
}

type userData struct {
	Username string `json:"username"`
}

// -- MusicProvider implementation --------------------------------------------

func (p *Provider) FetchPlaylist(ctx context.Context, playlistURL string) (*domain.Playlist, error) {
	body, err := p.doGet(ctx, "resolve", url.Values{"url": {playlistURL}})
	if err != nil {
		return nil, fmt.Errorf("soundcloud: failed to resolve %s: %w", playlistURL, err)
	}

	var res resolved
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("soundcloud: failed to parse resolve response: %w", err)
	}
	if res.Kind != "playlist" {
		return nil, fmt.Errorf("soundcloud: %w: URL points to a %q, not a playlist", domain.ErrInvalidPlaylistURL, res.Kind)
	}

	playlist := &domain.Playlist{
		Title:       res.Title,
		Description: res.Description,
		Platform:    domain.PlatformSoundCloud,
		OriginalURL: playlistURL,
		Tracks:      make([]domain.Track, 0, len(res.Tracks)),
	}
	for _, t := range res.Tracks {
		track := toTrack(t)
		track.PlatformRef = ""
		playlist.Tracks = append(playlist.Tracks, track)
		playlist.TotalDuration += track.DurationSeconds
	}
	return playlist, nil
}

func (p *Provider) SearchCandidates(ctx context.Context, track domain.Track, limit int) ([]domain.Track, error) {
	if limit < 1 || limit > maxLimit {
		limit = maxLimit
	}

	params := url.Values{
		"q":     {track.Artist + " " + track.Title},
		"limit": {fmt.Sprint(limit)},
	}
	body, err := p.doGet(ctx, "tracks", params)
	if err != nil {
		return nil, fmt.Errorf("soundcloud: search failed: %w", err)
	}

	var items []trackData
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("soundcloud: failed to parse search response: %w", err)
	}

	candidates := make([]domain.Track, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, toTrack(item))
	}
	return candidates, nil
}

// -- HTTP helpers ------------------------------------------------------------

func (p *Provider) doGet(ctx context.Context, resource string, params url.Values) ([]byte, error) {
	if p.clientID == "" {
		return nil, fmt.Errorf("%w: soundcloud client ID", domain.ErrMissingCreds)
	}
	params.Set("client_id", p.clientID)

	endpoint := fmt.Sprintf("%s/%s?%s", p.baseURL, resource, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, adapters.StatusError(domain.PlatformSoundCloud, resp.StatusCode, body, false)
	}

	return body, nil
}

func toTrack(t trackData) domain.Track {
	return domain.Track{
		Title:           t.Title,
		Artist:          t.User.Username,
		DurationSeconds: (t.DurationMS + 500) / 1000,
		PlatformRef:     t.PermalinkURL,
	}
}
