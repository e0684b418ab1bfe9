package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primeticket/primeticket-api/internal/model"
)

// fakeUpstream imitates the metadata service closely enough for the
// client: popular listing, per-movie details, videos, credits and
// search, all keyed by api_key.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/movie/popular":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"total_pages": 3,
				"results": []map[string]any{
					{"id": 603, "title": "The Matrix", "genre_ids": []int{28, 878},
						"original_language": "en", "poster_path": "/matrix.jpg",
						"overview": "A hacker learns the truth."},
					{"id": 604, "title": "", "original_title": "Reloaded",
						"genre_ids": []int{12345}, "original_language": "xx", "adult": true},
				},
			})
		case "/movie/603":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 603, "title": "The Matrix",
				"runtime": 136, "genre_ids": []int{28}, "original_language": "en"})
		case "/movie/603/videos":
			_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{
				{"key": "teaser1", "site": "YouTube", "type": "Teaser"},
				{"key": "trailer1", "site": "YouTube", "type": "Trailer"},
			}})
		case "/movie/603/credits":
			_ = json.NewEncoder(w).Encode(map[string]any{"cast": []map[string]any{
				{"name": "Keanu Reeves", "profile_path": "/keanu.jpg"},
				{"name": "Carrie-Anne Moss"},
				{"name": "Laurence Fishburne", "profile_path": "/fish.jpg"},
				{"name": "Hugo Weaving", "profile_path": "/hugo.jpg"},
			}})
		case "/search/movie":
			_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{
				{"id": 603, "title": "The Matrix", "poster_path": "/matrix.jpg",
					"vote_average": 8.2, "release_date": "1999-03-31"},
			}})
		default:
			// unknown movie ids: details/videos/credits all 404 so the
			// soft-default paths are exercised
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(baseURL, "test-key", "https://img.example/w500", "https://img.example/original",
		2*time.Second, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	c.Pace = 0
	return c
}

func TestFetchPage(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	page, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, "The Matrix", page.Movies[0].Title)
}

func TestFetchPageUpstreamErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.FetchPage(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstream, "a failed fetch must not look like an empty page")
}

func TestFetchDetail(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	d := c.FetchDetail(context.Background(), 603)
	assert.Equal(t, 136, d.Runtime)
	assert.Equal(t, "https://www.youtube.com/embed/trailer1", d.Trailer, "first YouTube trailer wins")
	require.Len(t, d.Cast, 3, "cast is capped at three")
	assert.Equal(t, "https://img.example/w500/keanu.jpg", d.Cast[0].Image)
	assert.Contains(t, d.Cast[1].Image, "placehold.co", "missing profile degrades to placeholder")
}

func TestFetchDetailSoftDefaults(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	d := c.FetchDetail(context.Background(), 999999)
	assert.Equal(t, defaultRuntime, d.Runtime)
	assert.Empty(t, d.Trailer)
	assert.Empty(t, d.Cast)
}

func TestConvertBatch(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	page, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)

	movies := c.ConvertBatch(context.Background(), page.Movies, model.RemoteIDStart, 10)
	require.Len(t, movies, 2, "limit is clamped to the batch")

	first := movies[0]
	assert.Equal(t, 100, first.ID)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, first.Genre)
	assert.Equal(t, "English", first.Language)
	assert.Equal(t, "UA", first.Rating)
	assert.Equal(t, "2h 16m", first.Duration)
	assert.Equal(t, "https://img.example/w500/matrix.jpg", first.Poster)

	second := movies[1]
	assert.Equal(t, 101, second.ID)
	assert.Equal(t, "Reloaded", second.Title, "original_title stands in for a blank title")
	assert.Equal(t, []string{defaultGenre}, second.Genre, "unknown genre code falls back")
	assert.Equal(t, defaultLanguage, second.Language, "unknown language code falls back")
	assert.Equal(t, "A", second.Rating)
	assert.Equal(t, "2h 0m", second.Duration, "missing runtime defaults to 120 minutes")
	assert.Equal(t, "No description available.", second.Description)
	require.Len(t, second.Cast, 1, "empty cast degrades to the stand-in member")
}

func TestSearchOffsetsIDs(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	results, err := c.Search(context.Background(), "matrix")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, model.SearchIDOffset+603, results[0].ID)
	assert.Equal(t, 603, results[0].RemoteID)
	assert.Equal(t, "8.2", results[0].Rating)
	assert.Equal(t, "1999", results[0].Year)
}

func TestSearchEmptyQuery(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	results, err := c.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFetchByID(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	m, err := c.FetchByID(context.Background(), model.SearchIDOffset+603)
	require.NoError(t, err)
	assert.Equal(t, model.SearchIDOffset+603, m.ID)
	assert.Equal(t, "The Matrix", m.Title)

	_, err = c.FetchByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrMovieNotFound, "ids below the search band are never remote")

	_, err = c.FetchByID(context.Background(), model.SearchIDOffset+999999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
