package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/primeticket/primeticket-api/internal/model"
)

// upstreamPageSize is the fixed page size of the remote listing.
const upstreamPageSize = 20

// Service produces the catalog shown to users: the bundled local
// movies merged with remote records served cache-first. It owns the
// pagination contract for infinite scroll and the last-resort
// placeholder policy for lookups that miss every source.
type Service struct {
	client *Client
	cache  *Cache
	logger *log.Logger
}

// NewService wires the remote client and cache together.
func NewService(client *Client, cache *Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{client: client, cache: cache, logger: logger}
}

// Load returns up to count remote movies, consulting the cache before
// the network. A fetch that converts fewer than count records still
// succeeds; the snapshot is written back for the next load.
func (s *Service) Load(ctx context.Context, count int) ([]model.Movie, error) {
	if cached := s.cache.Read(ctx); len(cached) >= count {
		return cached[:count], nil
	}

	pages := (count + upstreamPageSize - 1) / upstreamPageSize
	var raws []RawMovie
	for page := 1; page <= pages; page++ {
		p, err := s.client.FetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		raws = append(raws, p.Movies...)
		if len(raws) >= count {
			break
		}
	}

	converted := s.client.ConvertBatch(ctx, raws, model.RemoteIDStart, count)
	if err := s.cache.Write(ctx, converted); err != nil {
		s.logger.Printf("catalog: cache write failed: %v", err)
	}
	return converted, nil
}

// FetchMore serves the next batch for infinite scroll. When the cache
// holds records beyond offset they are served as-is; otherwise the
// page containing offset is fetched fresh, converted and appended to
// the cache. An empty result with a nil error means the listing is
// exhausted and the caller must stop asking.
func (s *Service) FetchMore(ctx context.Context, offset, batchSize int) ([]model.Movie, error) {
	cached := s.cache.Read(ctx)
	if len(cached) > offset {
		end := offset + batchSize
		if end > len(cached) {
			end = len(cached)
		}
		return cached[offset:end], nil
	}

	page := offset/upstreamPageSize + 1
	p, err := s.client.FetchPage(ctx, page)
	if err != nil {
		return nil, err
	}

	converted := s.client.ConvertBatch(ctx, p.Movies, model.RemoteIDStart+offset, batchSize)
	if len(converted) == 0 {
		return nil, nil
	}
	if err := s.cache.Append(ctx, converted); err != nil {
		s.logger.Printf("catalog: cache append failed: %v", err)
	}
	return converted, nil
}

// All returns the full merged listing: local catalog first, then
// every cached remote record that does not duplicate a local title.
func (s *Service) All(ctx context.Context) []model.Movie {
	return MergeByTitle(LocalMovies(), s.cache.Read(ctx))
}

// Search proxies the remote title search.
func (s *Service) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	return s.client.Search(ctx, query)
}

// MovieByID resolves an id against every known source in order:
// local catalog, cached remote records, then a direct remote fetch
// for search-band ids. A miss everywhere yields a synthetic
// placeholder record rather than an error, so the booking flow can
// keep rendering.
func (s *Service) MovieByID(ctx context.Context, id int) model.Movie {
	for _, m := range LocalMovies() {
		if m.ID == id {
			return m
		}
	}
	for _, m := range s.cache.Read(ctx) {
		if m.ID == id {
			return m
		}
	}
	if id >= model.SearchIDOffset {
		m, err := s.client.FetchByID(ctx, id)
		if err == nil {
			return m
		}
		if !errors.Is(err, ErrMovieNotFound) {
			s.logger.Printf("catalog: fetch movie %d failed: %v", id, err)
		}
	}
	return placeholderMovie(id)
}

// placeholderMovie is the last-resort stand-in for an id absent from
// every source.
func placeholderMovie(id int) model.Movie {
	return model.Movie{
		ID:              id,
		Title:           "Unknown Movie",
		Genre:           []string{"N/A"},
		Language:        "N/A",
		Rating:          "N/A",
		Duration:        "N/A",
		Poster:          placeholderImage("300x450", "Movie Not Found"),
		BackgroundImage: placeholderImage("1920x1080", "Movie Not Found"),
		Description:     "No description available.",
		Price:           250,
	}
}
