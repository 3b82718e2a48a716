package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/jpp0ca/linkport/internal/domain"
)

const playlistID = "37i9dQZF1DXcBWIGoYBM5M"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/playlists/"+playlistID, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprintf(w, `{
			"name": "Today's Top Hits",
			"description": "The most played songs right now",
			"tracks": {
				"items": [
					{"track": {"id": "t1", "name": "As It Was", "artists": [{"name": "Harry Styles"}],
					  "album": {"name": "Harry's House"}, "duration_ms": 167303,
					  "external_urls": {"spotify": "https://open.spotify.com/track/t1"}}},
					{"track": null}
				],
				"next": "%s/page2"
			}
		}`, srv.URL)
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"items": [
				{"track": {"id": "t2", "name": "Creepin'", "artists": [{"name": "Metro Boomin"}, {"name": "The Weeknd"}, {"name": "21 Savage"}],
				  "album": {"name": "Heroes & Villains"}, "duration_ms": 221520}}
			],
			"next": ""
		}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, `track:"As It Was" artist:"Harry Styles"`, r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"tracks": {"items": [
			{"id": "a", "name": "As It Was", "artists": [{"name": "Harry Styles"}], "album": {"name": "Harry's House"}, "duration_ms": 167000},
			{"id": "b", "name": "As It Was (Live)", "artists": [{"name": "Harry Styles"}], "album": {"name": "Live"}, "duration_ms": 170000}
		]}}`)
	})
	mux.HandleFunc("/playlists/privateplaylist01", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"status": 404}}`, http.StatusNotFound)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server) *Provider {
	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token", TokenType: "Bearer"})
	return NewProvider(srv.Client(), tokens).WithBaseURL(srv.URL)
}

func TestFetchPlaylist(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	pl, err := p.FetchPlaylist(context.Background(), "https://open.spotify.com/playlist/"+playlistID+"?si=x")

	require.NoError(t, err)
	assert.Equal(t, "Today's Top Hits", pl.Title)
	assert.Equal(t, domain.PlatformSpotify, pl.Platform)
	require.Len(t, pl.Tracks, 2)
	assert.Equal(t, domain.Track{Title: "As It Was", Artist: "Harry Styles", Album: "Harry's House", DurationSeconds: 167}, pl.Tracks[0])
	assert.Equal(t, "Metro Boomin, The Weeknd, 21 Savage", pl.Tracks[1].Artist)
	assert.Empty(t, pl.Tracks[1].PlatformRef)
	assert.Equal(t, 167+222, pl.TotalDuration)
}

func TestFetchPlaylist_NotFound(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	_, err := p.FetchPlaylist(context.Background(), "https://open.spotify.com/playlist/privateplaylist01")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestFetchPlaylist_InvalidURL(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	_, err := p.FetchPlaylist(context.Background(), "https://open.spotify.com/playlist/")

	assert.ErrorIs(t, err, domain.ErrInvalidPlaylistURL)
}

func TestSearchCandidates(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	candidates, err := p.SearchCandidates(context.Background(), domain.Track{Title: "As It Was", Artist: "Harry Styles"}, 3)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "As It Was", candidates[0].Title)
	assert.Equal(t, "https://open.spotify.com/track/a", candidates[0].PlatformRef)
	assert.Equal(t, "As It Was (Live)", candidates[1].Title)
}

func TestSearchCandidates_MissingCredentials(t *testing.T) {
	srv := newTestServer(t)
	p := NewProvider(srv.Client(), nil).WithBaseURL(srv.URL)

	_, err := p.SearchCandidates(context.Background(), domain.Track{Title: "x", Artist: "y"}, 5)

	assert.ErrorIs(t, err, domain.ErrMissingCreds)
}
