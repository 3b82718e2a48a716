package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/linkport/internal/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/playlists", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		if r.URL.Query().Get("id") != "PLtrending" {
			fmt.Fprint(w, `{"items": []}`)
			return
		}
		fmt.Fprint(w, `{"items": [{"id": "PLtrending", "snippet": {"title": "YouTube Music Trending", "description": "What's trending"}}]}`)
	})
	mux.HandleFunc("/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"items": [
				{"snippet": {"title": "Doja Cat - Paint The Town Red (Official Video)", "resourceId": {"videoId": "v1"}}},
				{"snippet": {"title": "Private video", "resourceId": {"videoId": "v2"}}},
				{"snippet": {"title": "Greedy", "videoOwnerChannelTitle": "Tate McRae - Topic", "resourceId": {"videoId": "v3"}}}
			], "nextPageToken": "p2"}`)
			return
		}
		fmt.Fprint(w, `{"items": [
			{"snippet": {"title": "Tyla - Water", "resourceId": {"videoId": "v4"}}}
		]}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Harry Styles As It Was", q.Get("q"))
		assert.Equal(t, "10", q.Get("videoCategoryId"))
		assert.Equal(t, "2", q.Get("maxResults"))
		if q.Get("key") == "exhausted" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"items": [
			{"id": {"videoId": "abc"}, "snippet": {"title": "As It Was", "channelTitle": "Harry Styles - Topic"}},
			{"id": {"videoId": "def"}, "snippet": {"title": "Harry Styles - As It Was (Official Video)", "channelTitle": "HarryStylesVEVO"}},
			{"id": {}, "snippet": {"title": "a channel result"}}
		]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPlaylist(t *testing.T) {
	srv := newTestServer(t)
	p := NewProvider(srv.Client(), "test-key").WithBaseURL(srv.URL)

	pl, err := p.FetchPlaylist(context.Background(), "https://music.youtube.com/playlist?list=PLtrending")

	require.NoError(t, err)
	assert.Equal(t, "YouTube Music Trending", pl.Title)
	assert.Equal(t, domain.PlatformYouTube, pl.Platform)
	assert.Equal(t, []domain.Track{
		{Title: "Paint The Town Red", Artist: "Doja Cat"},
		{Title: "Greedy", Artist: "Tate McRae"},
		{Title: "Water", Artist: "Tyla"},
	}, pl.Tracks)
	assert.Equal(t, 3*estimatedTrackSeconds, pl.TotalDuration)
}

func TestFetchPlaylist_Private(t *testing.T) {
	srv := newTestServer(t)
	p := NewProvider(srv.Client(), "test-key").WithBaseURL(srv.URL)

	_, err := p.FetchPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLhidden")

	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestSearchCandidates(t *testing.T) {
	srv := newTestServer(t)
	p := NewProvider(srv.Client(), "test-key").WithBaseURL(srv.URL)

	candidates, err := p.SearchCandidates(context.Background(), domain.Track{Title: "As It Was", Artist: "Harry Styles"}, 2)

	require.NoError(t, err)
	assert.Equal(t, []domain.Track{
		{Title: "As It Was", Artist: "Harry Styles - Topic", PlatformRef: "https://www.youtube.com/watch?v=abc"},
		{Title: "As It Was", Artist: "Harry Styles", PlatformRef: "https://www.youtube.com/watch?v=def"},
	}, candidates)
}

func TestSearchCandidates_QuotaExceeded(t *testing.T) {
	srv := newTestServer(t)
	p := NewProvider(srv.Client(), "exhausted").WithBaseURL(srv.URL)

	_, err := p.SearchCandidates(context.Background(), domain.Track{Title: "As It Was", Artist: "Harry Styles"}, 2)

	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestSearchCandidates_MissingKey(t *testing.T) {
	p := NewProvider(nil, "")

	_, err := p.SearchCandidates(context.Background(), domain.Track{Title: "x", Artist: "y"}, 2)

	assert.ErrorIs(t, err, domain.ErrMissingCreds)
}

func TestParseVideoTitle(t *testing.T) {
	cases := []struct {
		raw, title, artist string
	}{
		{"Queen - Bohemian Rhapsody (Official Video)", "Bohemian Rhapsody", "Queen"},
		{"Greedy", "Greedy", ""},
		{"Noah Kahan - Stick Season - Live", "Stick Season - Live", "Noah Kahan"},
		{" - Untitled", "- Untitled", ""},
	}
	for _, c := range cases {
		title, artist := parseVideoTitle(c.raw)
		assert.Equal(t, c.title, title, c.raw)
		assert.Equal(t, c.artist, artist, c.raw)
	}
}
