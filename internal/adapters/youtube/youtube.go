package youtube

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
	"github.com/jpp0ca/linkport/internal/playlisturl"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	watchURL       = "https://www.youtube.com/watch?v="
	maxResults     = 50
	maxTracks      = 200

	// YouTube does not expose durations on playlist items.
	estimatedTrackSeconds = 210
)

// Provider implements ports.MusicProvider for YouTube using the Data API v3
// with a server-side API key.
type Provider struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewProvider creates a new YouTube provider with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewProvider(client *http.Client, apiKey string) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{client: client, apiKey: apiKey, baseURL: defaultBaseURL}
}

// WithBaseURL points the provider at a different API root.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

func (p *Provider) Name() domain.Platform {
	return domain.PlatformYouTube
}

// -- API response types (internal) ------------------------------------------

type playlistListResponse struct {
	Items []playlistResource `json:"items"`
}

type playlistResource struct {
	ID      string          `json:"id"`
	Snippet playlistSnippet `json:"snippet"`
}

type playlistSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type playlistItemsResponse struct {
	Items         []playlistItemResource `json:"items"`
	NextPageToken string                 `json:"nextPageToken"`
}

type playlistItemResource struct {
	Snippet playlistItemSnippet `json:"snippet"`
}

type playlistItemSnippet struct {
	Title                  string     `json:"title"`
	VideoOwnerChannelTitle string     `json:"videoOwnerChannelTitle"`
	ResourceID             resourceID `json:"resourceId"`
}

type resourceID struct {
	VideoID string `json:"videoId"`
}

type searchListResponse struct {
	Items []searchResult `json:"items"`
}

type searchResult struct {
	ID      searchResultID `json:"id"`
	Snippet searchSnippet  `json:"snippet"`
}

type searchResultID struct {
	VideoID string `json:"videoId"`
}

type searchSnippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

// -- MusicProvider implementation --------------------------------------------

func (p *Provider) FetchPlaylist(ctx context.Context, playlistURL string) (*domain.Playlist, error) {
	playlistID, err := playlisturl.YouTubePlaylistID(playlistURL)
	if err != nil {
		return nil, err
	}

	params := url.Values{"part": {"snippet"}, "id": {playlistID}}
	body, err := p.doGet(ctx, "playlists", params)
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to get playlist %s: %w", playlistID, err)
	}

	var meta playlistListResponse
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("youtube: failed to parse playlist response: %w", err)
	}
	if len(meta.Items) == 0 {
		return nil, fmt.Errorf("youtube: %w: %s", domain.ErrPlaylistNotFound, playlistID)
	}

	playlist := &domain.Playlist{
		Title:       meta.Items[0].Snippet.Title,
		Description: meta.Items[0].Snippet.Description,
		Platform:    domain.PlatformYouTube,
		OriginalURL: playlistURL,
		Tracks:      []domain.Track{},
	}

	pageToken := ""
	for len(playlist.Tracks) < maxTracks {
		params := url.Values{
			"part":       {"snippet"},
			"playlistId": {playlistID},
			"maxResults": {fmt.Sprint(maxResults)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		body, err := p.doGet(ctx, "playlistItems", params)
		if err != nil {
			return nil, fmt.Errorf("youtube: failed to get playlist items: %w", err)
		}

		var resp playlistItemsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("youtube: failed to parse playlist items response: %w", err)
		}

		for _, item := range resp.Items {
			if item.Snippet.ResourceID.VideoID == "" || isUnavailable(item.Snippet.Title) {
				continue
			}

			// Playlist items only give us title and channel; we parse the
			// track name and artist from the video title heuristically.
			title, artist := parseVideoTitle(item.Snippet.Title)
			if artist == "" {
				artist = strings.TrimSuffix(item.Snippet.VideoOwnerChannelTitle, " - Topic")
			}

			playlist.Tracks = append(playlist.Tracks, domain.Track{Title: title, Artist: artist})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	playlist.TotalDuration = len(playlist.Tracks) * estimatedTrackSeconds
	return playlist, nil
}

func (p *Provider) SearchCandidates(ctx context.Context, track domain.Track, limit int) ([]domain.Track, error) {
	if limit < 1 || limit > maxResults {
		limit = maxResults
	}

	params := url.Values{
		"part":            {"snippet"},
		"type":            {"video"},
		"videoCategoryId": {"10"}, // Music
		"maxResults":      {fmt.Sprint(limit)},
		"q":               {track.Artist + " " + track.Title},
	}
	body, err := p.doGet(ctx, "search", params)
	if err != nil {
		return nil, fmt.Errorf("youtube: search failed: %w", err)
	}

	var resp searchListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("youtube: failed to parse search response: %w", err)
	}

	candidates := make([]domain.Track, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		title, artist := parseVideoTitle(item.Snippet.Title)
		if artist == "" {
			artist = item.Snippet.ChannelTitle
		}
		candidates = append(candidates, domain.Track{
			Title:       title,
			Artist:      artist,
			PlatformRef: watchURL + item.ID.VideoID,
		})
	}
	return candidates, nil
}

// -- HTTP helpers ------------------------------------------------------------

func (p *Provider) doGet(ctx context.Context, resource string, params url.Values) ([]byte, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: youtube API key", domain.ErrMissingCreds)
	}
	params.Set("key", p.apiKey)

	endpoint := fmt.Sprintf("%s/%s?%s", p.baseURL, resource, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

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
		return nil, adapters.StatusError(domain.PlatformYouTube, resp.StatusCode, body, true)
	}

	return body, nil
}

// -- Helpers -----------------------------------------------------------------

var titleSuffixes = []string{
	"(Official Video)", "(Official Music Video)", "(Official Audio)",
	"(Lyric Video)", "(Lyrics)", "(Audio)", "[Official Video]",
	"[Official Music Video]", "[Official Audio]", "(HD)", "(HQ)",
}

func isUnavailable(title string) bool {
	return title == "Private video" || title == "Deleted video"
}

// parseVideoTitle attempts to split a YouTube video title into track title and
// artist. Common formats: "Artist - Track", "Artist - Track (Official Video)".
// Artist is empty when the title has no separator.
func parseVideoTitle(raw string) (title, artist string) {
	cleaned := raw
	for _, suffix := range titleSuffixes {
		cleaned = strings.TrimSpace(strings.Replace(cleaned, suffix, "", 1))
	}

	parts := strings.SplitN(cleaned, " - ", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[0]) != "" && strings.TrimSpace(parts[1]) != "" {
		return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])
	}

	return cleaned, ""
}
