package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/primeticket/primeticket-api/internal/model"
)

// ErrUpstream is returned when the remote catalog service fails with
// a transport or status error. Listing callers must be able to tell
// "fetch failed" apart from "no more pages", so page fetches return
// this error instead of an empty page.
var ErrUpstream = errors.New("catalog: upstream error")

// ErrMovieNotFound is returned when the remote service has no record
// for the requested id.
var ErrMovieNotFound = errors.New("catalog: movie not found")

// Page is one page of the upstream popular-movies listing. An empty
// Movies slice with a nil error genuinely means the listing is
// exhausted.
type Page struct {
	Movies     []RawMovie
	TotalPages int
}

// Detail carries the per-movie lookups folded into a converted
// record. Each of the three underlying requests (details, videos,
// credits) fails independently: a partial failure degrades the
// corresponding field to its default instead of aborting.
type Detail struct {
	Runtime int
	Trailer string
	Cast    []model.CastMember
}

type RawMovie struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	OriginalTitle    string `json:"original_title"`
	GenreIDs         []int  `json:"genre_ids"`
	OriginalLanguage string `json:"original_language"`
	Adult            bool   `json:"adult"`
	PosterPath       string `json:"poster_path"`
	BackdropPath     string `json:"backdrop_path"`
	Overview         string `json:"overview"`
	VoteAverage      float64 `json:"vote_average"`
	ReleaseDate      string `json:"release_date"`
}

// Client talks to the third-party movie metadata service. Requests
// are authenticated by an api_key query parameter over HTTPS GET and
// return JSON.
//
// Rate shaping: converting a batch of listings issues the per-movie
// detail lookups strictly sequentially with a fixed inter-item pause
// (Pace). That throughput ceiling keeps the service under the
// upstream rate limit and must not be parallelized within a batch.
type Client struct {
	baseURL      *url.URL
	apiKey       string
	imageBase    string
	backdropBase string
	httpClient   *http.Client
	logger       *log.Logger

	// Pace is the pause between per-movie conversions in a batch.
	// Tests shorten it; production leaves the default.
	Pace time.Duration
}

// NewClient constructs a metadata client. A nil logger falls back to
// the default logger.
func NewClient(baseURL, apiKey, imageBase, backdropBase string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	return &Client{
		baseURL:      parsed,
		apiKey:       apiKey,
		imageBase:    imageBase,
		backdropBase: backdropBase,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
			},
		},
		logger: logger,
		Pace:   100 * time.Millisecond,
	}, nil
}

// get issues a GET for path with the api key and extra query values,
// decoding the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	endpoint := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return ErrMovieNotFound
	default:
		c.logger.Printf("catalog: upstream returned %d for %s", resp.StatusCode, path)
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
}

type pagePayload struct {
	Results    []RawMovie `json:"results"`
	TotalPages int        `json:"total_pages"`
}

// FetchPage retrieves one page of the popular listing. Unlike the
// softer per-movie lookups below, failures surface as errors so the
// caller can distinguish a transient fault from exhaustion.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("page", fmt.Sprint(page))
	var payload pagePayload
	if err := c.get(ctx, "/movie/popular", q, &payload); err != nil {
		return Page{}, err
	}
	return Page{Movies: payload.Results, TotalPages: payload.TotalPages}, nil
}

// FetchDetail gathers runtime, trailer and cast for one upstream
// movie id. Every lookup fails soft: the zero-ish defaults (120
// minutes, no trailer, empty cast) stand in for whatever could not be
// fetched.
func (c *Client) FetchDetail(ctx context.Context, remoteID int) Detail {
	d := Detail{Runtime: defaultRuntime}

	var details struct {
		Runtime int `json:"runtime"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", remoteID), nil, &details); err == nil && details.Runtime > 0 {
		d.Runtime = details.Runtime
	}

	var videos struct {
		Results []struct {
			Key  string `json:"key"`
			Site string `json:"site"`
			Type string `json:"type"`
		} `json:"results"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", remoteID), nil, &videos); err == nil {
		for _, v := range videos.Results {
			if v.Type == "Trailer" && v.Site == "YouTube" {
				d.Trailer = "https://www.youtube.com/embed/" + v.Key
				break
			}
		}
	}

	var credits struct {
		Cast []struct {
			Name        string `json:"name"`
			ProfilePath string `json:"profile_path"`
		} `json:"cast"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", remoteID), nil, &credits); err == nil {
		for i, actor := range credits.Cast {
			if i == 3 {
				break
			}
			image := placeholderImage("100x100", firstWord(actor.Name))
			if actor.ProfilePath != "" {
				image = c.imageBase + actor.ProfilePath
			}
			d.Cast = append(d.Cast, model.CastMember{Name: actor.Name, Image: image})
		}
	}

	return d
}

// ConvertBatch converts up to limit raw listings into full records,
// assigning ids from startID upward. Conversions run one at a time
// with a Pace-long pause between them; that serialization is the rate
// shaping contract with the upstream service.
func (c *Client) ConvertBatch(ctx context.Context, raws []RawMovie, startID, limit int) []model.Movie {
	if limit > len(raws) {
		limit = len(raws)
	}
	converted := make([]model.Movie, 0, limit)
	for i := 0; i < limit; i++ {
		detail := c.FetchDetail(ctx, raws[i].ID)
		converted = append(converted, convertMovie(raws[i], detail, startID+i, c.imageBase, c.backdropBase))
		if i < limit-1 && c.Pace > 0 {
			select {
			case <-time.After(c.Pace):
			case <-ctx.Done():
				return converted
			}
		}
	}
	return converted
}

// Search runs a title search and returns up to five lightweight
// results. Results skip the detail lookups for speed and carry the
// search id offset so they never collide with catalog records.
func (c *Client) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("query", query)
	q.Set("page", "1")
	q.Set("include_adult", "false")
	var payload pagePayload
	if err := c.get(ctx, "/search/movie", q, &payload); err != nil {
		return nil, err
	}

	results := payload.Results
	if len(results) > 5 {
		results = results[:5]
	}
	out := make([]model.SearchResult, 0, len(results))
	for _, raw := range results {
		title := raw.Title
		if title == "" {
			title = raw.OriginalTitle
		}
		poster := placeholderImage("100x150", title)
		if raw.PosterPath != "" {
			poster = c.imageBase + raw.PosterPath
		}
		rating := "N/A"
		if raw.VoteAverage > 0 {
			rating = fmt.Sprintf("%.1f", raw.VoteAverage)
		}
		year := ""
		if idx := strings.Index(raw.ReleaseDate, "-"); idx > 0 {
			year = raw.ReleaseDate[:idx]
		}
		out = append(out, model.SearchResult{
			ID:       model.SearchIDOffset + raw.ID,
			Title:    title,
			Poster:   poster,
			Rating:   rating,
			Year:     year,
			Remote:   true,
			RemoteID: raw.ID,
		})
	}
	return out, nil
}

// FetchByID fetches and converts a single movie. The id must carry
// the search offset; anything below it belongs to the catalog bands
// and is not a remote id.
func (c *Client) FetchByID(ctx context.Context, id int) (model.Movie, error) {
	if id < model.SearchIDOffset {
		return model.Movie{}, ErrMovieNotFound
	}
	remoteID := id - model.SearchIDOffset
	q := url.Values{}
	q.Set("language", "en-US")
	var raw RawMovie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", remoteID), q, &raw); err != nil {
		return model.Movie{}, err
	}
	detail := c.FetchDetail(ctx, remoteID)
	return convertMovie(raw, detail, id, c.imageBase, c.backdropBase), nil
}

func firstWord(s string) string {
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		return s[:idx]
	}
	return s
}
