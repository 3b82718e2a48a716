package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jpp0ca/linkport/internal/adapters"
	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/playlisturl"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	tokenURL       = "https://accounts.spotify.com/api/token"
	maxTracks      = 100
	maxSearchLimit = 50
)

// Provider implements ports.MusicProvider for Spotify using the Web API.
// Access tokens come from the injected token source, which is expected to
// cache and refresh them.
type Provider struct {
	client  *http.Client
	tokens  oauth2.TokenSource
	baseURL string
}

// NewProvider creates a new Spotify provider with the given HTTP client and
// token source. If client is nil, http.DefaultClient is used.
func NewProvider(client *http.Client, tokens oauth2.TokenSource) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{client: client, tokens: tokens, baseURL: defaultBaseURL}
}

// ClientCredentials returns a self-refreshing token source for the client
// credentials flow. Tokens are reused until shortly before they expire.
func ClientCredentials(ctx context.Context, client *http.Client, clientID, clientSecret string) oauth2.TokenSource {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	if client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, client)
	}
	return cfg.TokenSource(ctx)
}

// WithBaseURL points the provider at a different API root.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

func (p *Provider) Name() domain.Platform {
	return domain.PlatformSpotify
}

// -- API response types (internal) ------------------------------------------

type playlistResponse struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tracks      tracksPage `json:"tracks"`
}

type tracksPage struct {
	Items []trackItem `json:"items"`
	Next  string      `json:"next"`
}

type trackItem struct {
	Track *trackData `json:"track"`
}

type trackData struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []artistData `json:"artists"`
	Album        albumData    `json:"album"`
	DurationMS   int          `json:"duration_ms"`
	ExternalURLs externalURLs `json:"external_urls"`
}

type artistData struct {
	Name string `json:"name"`
}

type albumData struct {
	Name string `json:"name"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type searchResponse struct {
	Tracks searchTracks `json:"tracks"`
}

type searchTracks struct {
	Items []trackData `json:"items"`
}

// -- MusicProvider implementation --------------------------------------------

func (p *Provider) FetchPlaylist(ctx context.Context, playlistURL string) (*domain.Playlist, error) {
	playlistID, err := playlisturl.SpotifyPlaylistID(playlistURL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/playlists/%s", p.baseURL, url.PathEscape(playlistID))
	body, err := p.doGet(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("spotify: failed to get playlist %s: %w", playlistID, err)
	}

	var resp playlistResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("spotify: failed to parse playlist response: %w", err)
	}

	items := resp.Tracks.Items
	next := resp.Tracks.Next
	for next != "" && len(items) < maxTracks {
		body, err := p.doGet(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("spotify: failed to get playlist tracks: %w", err)
		}

		var page tracksPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("spotify: failed to parse tracks response: %w", err)
		}
		items = append(items, page.Items...)
		next = page.Next
	}

	playlist := &domain.Playlist{
		Title:       resp.Name,
		Description: resp.Description,
		Platform:    domain.PlatformSpotify,
		OriginalURL: playlistURL,
		Tracks:      make([]domain.Track, 0, len(items)),
	}
	for _, item := range items {
		if item.Track == nil || item.Track.Name == "" {
			continue // local or unavailable tracks
		}
		track := toTrack(*item.Track)
		track.PlatformRef = "" // originals never carry a ref
		playlist.Tracks = append(playlist.Tracks, track)
		playlist.TotalDuration += track.DurationSeconds
	}

	return playlist, nil
}

func (p *Provider) SearchCandidates(ctx context.Context, track domain.Track, limit int) ([]domain.Track, error) {
	if limit < 1 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	query := fmt.Sprintf("track:%q artist:%q", track.Title, track.Artist)
	endpoint := fmt.Sprintf("%s/search?type=track&limit=%d&q=%s", p.baseURL, limit, url.QueryEscape(query))

	body, err := p.doGet(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("spotify: search failed: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("spotify: failed to parse search response: %w", err)
	}

	candidates := make([]domain.Track, 0, len(resp.Tracks.Items))
	for _, item := range resp.Tracks.Items {
		candidates = append(candidates, toTrack(item))
	}
	return candidates, nil
}

// -- HTTP helpers ------------------------------------------------------------

func (p *Provider) doGet(ctx context.Context, endpoint string) ([]byte, error) {
	if p.tokens == nil {
		return nil, fmt.Errorf("%w: spotify client credentials", domain.ErrMissingCreds)
	}
	token, err := p.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: spotify token: %v", domain.ErrAuthFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	token.SetAuthHeader(req)

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
		return nil, adapters.StatusError(domain.PlatformSpotify, resp.StatusCode, body, false)
	}

	return body, nil
}

// -- Helpers -----------------------------------------------------------------

func toTrack(t trackData) domain.Track {
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}

	ref := t.ExternalURLs.Spotify
	if ref == "" && t.ID != "" {
		ref = "https://open.spotify.com/track/" + t.ID
	}

	return domain.Track{
		Title:           t.Name,
		Artist:          strings.Join(artists, ", "),
		Album:           t.Album.Name,
		DurationSeconds: (t.DurationMS + 500) / 1000,
		PlatformRef:     ref,
	}
}
