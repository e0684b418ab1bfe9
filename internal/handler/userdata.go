package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/userdata"
)

// UserDataHandler exposes the per-user favorites and bookings
// collections. Routes are JWT-protected but the stores themselves
// resolve the current user through the session pointer, so the
// directory entry is always the one mutated.
type UserDataHandler struct {
	Data *userdata.Store
}

func NewUserDataHandler(data *userdata.Store) *UserDataHandler {
	return &UserDataHandler{Data: data}
}

// Favorites handles GET /v1/favorites.
func (h *UserDataHandler) Favorites(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	favorites, err := h.Data.Favorites(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load favorites failed"})
	}
	if favorites == nil {
		favorites = []model.Movie{}
	}
	return c.JSON(http.StatusOK, echo.Map{"favorites": favorites})
}

// AddFavorite handles POST /v1/favorites with a movie record body.
// Adding a movie that is already a favorite is a no-op reported as
// added=false.
func (h *UserDataHandler) AddFavorite(c echo.Context) error {
	var movie model.Movie
	if err := c.Bind(&movie); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	added, err := h.Data.AddFavorite(ctx, movie)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save favorite failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"added": added})
}

// RemoveFavorite handles DELETE /v1/favorites/:id.
func (h *UserDataHandler) RemoveFavorite(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	removed, err := h.Data.RemoveFavorite(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove favorite failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": removed})
}

// IsFavorite handles GET /v1/favorites/:id.
func (h *UserDataHandler) IsFavorite(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	return c.JSON(http.StatusOK, echo.Map{"favorite": h.Data.IsFavorite(ctx, id)})
}

// Bookings handles GET /v1/bookings, newest first.
func (h *UserDataHandler) Bookings(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	bookings, err := h.Data.Bookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}
