package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/primeticket/primeticket-api/internal/catalog"
	"github.com/primeticket/primeticket-api/internal/model"
)

// CatalogHandler exposes the merged movie listing, pagination for
// infinite scroll, title search and per-movie detail.
type CatalogHandler struct {
	Catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// Movies handles GET /v1/movies.
//
// Without query parameters it returns the full merged listing (local
// catalog first, remote records de-duplicated by title). With
// ?offset=N&batch=M it serves the infinite-scroll contract instead:
// an empty page means the listing is exhausted and the client must
// stop asking; an upstream failure is a 502, never an empty page.
func (h *CatalogHandler) Movies(c echo.Context) error {
	ctx := c.Request().Context()

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid offset"})
		}
		batch := 20
		if batchStr := c.QueryParam("batch"); batchStr != "" {
			if b, err := strconv.Atoi(batchStr); err == nil && b > 0 {
				batch = b
			}
		}
		movies, err := h.Catalog.FetchMore(ctx, offset, batch)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "couldn't load movies"})
		}
		return c.JSON(http.StatusOK, echo.Map{"movies": movies, "exhausted": len(movies) == 0})
	}

	if count := c.QueryParam("count"); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid count"})
		}
		movies, err := h.Catalog.Load(ctx, n)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "couldn't load movies"})
		}
		return c.JSON(http.StatusOK, echo.Map{"movies": movies})
	}

	return c.JSON(http.StatusOK, echo.Map{"movies": h.Catalog.All(ctx)})
}

// Movie handles GET /v1/movies/:id. Ids absent from every source
// resolve to a placeholder record rather than a 404, so booking links
// keep working.
func (h *CatalogHandler) Movie(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	return c.JSON(http.StatusOK, h.Catalog.MovieByID(c.Request().Context(), id))
}

// Search handles GET /v1/search/movies?q=... with lightweight remote
// results.
func (h *CatalogHandler) Search(c echo.Context) error {
	results, err := h.Catalog.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, catalog.ErrUpstream) {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "search unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	if results == nil {
		results = []model.SearchResult{} // empty query or no hits render as []
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

// Genres handles GET /v1/genres: the merged listing fanned out by
// genre for display grouping.
func (h *CatalogHandler) Genres(c echo.Context) error {
	grouped := catalog.GroupByGenre(h.Catalog.All(c.Request().Context()))
	return c.JSON(http.StatusOK, grouped)
}
