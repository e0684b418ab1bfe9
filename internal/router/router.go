package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/primeticket/primeticket-api/internal/handler"
	"github.com/primeticket/primeticket-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance. Currently it exposes only a health
// check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes and the protected
// profile endpoints. Unauthenticated operations live under /v1/auth;
// protected endpoints live under /v1 behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.PUT("/me", a.UpdateProfile)
}

// RegisterCatalog registers the public browse endpoints: the merged
// movie listing, per-movie detail, title search, genre grouping and
// the theater directory. No authentication is applied so guests can
// browse before logging in.
func RegisterCatalog(e *echo.Echo, cat *handler.CatalogHandler, th *handler.TheaterHandler, b *handler.BookingHandler) {
	e.GET("/v1/movies", cat.Movies)
	e.GET("/v1/movies/:id", cat.Movie)
	e.GET("/v1/search/movies", cat.Search)
	e.GET("/v1/genres", cat.Genres)

	e.GET("/v1/theaters", th.Locations)
	e.GET("/v1/theaters/preference", th.Preference)
	e.GET("/v1/theaters/:id", th.Theater)

	// Seat layout is public so guests can preview availability before
	// committing to a login.
	e.GET("/v1/shows/seats", b.SeatLayout)
}

// RegisterUserData registers the per-user collections and checkout,
// all behind the JWT middleware.
func RegisterUserData(e *echo.Echo, u *handler.UserDataHandler, b *handler.BookingHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	auth.GET("/favorites", u.Favorites)
	auth.POST("/favorites", u.AddFavorite)
	auth.GET("/favorites/:id", u.IsFavorite)
	auth.DELETE("/favorites/:id", u.RemoveFavorite)

	auth.GET("/bookings", u.Bookings)
	auth.POST("/bookings", b.Checkout)
}
