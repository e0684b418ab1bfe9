package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/primeticket/primeticket-api/internal/booking"
	"github.com/primeticket/primeticket-api/internal/catalog"
	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/queue"
	queue_publisher "github.com/primeticket/primeticket-api/internal/service"
	"github.com/primeticket/primeticket-api/internal/theater"
	"github.com/primeticket/primeticket-api/internal/userdata"
)

// BookingHandler drives the seat-selection flow over HTTP. Each
// checkout request runs the full state machine: build the grid,
// select the requested seats, proceed (which enforces the session)
// and pay through the authorizer.
type BookingHandler struct {
	Catalog    *catalog.Service
	Theaters   *theater.Directory
	Identity   *identity.Store
	Data       *userdata.Store
	Authorizer booking.Authorizer
}

func NewBookingHandler(cat *catalog.Service, dir *theater.Directory, ids *identity.Store, data *userdata.Store, authorizer booking.Authorizer) *BookingHandler {
	return &BookingHandler{Catalog: cat, Theaters: dir, Identity: ids, Data: data, Authorizer: authorizer}
}

// SeatLayout handles GET /v1/shows/seats: the grid dimensions and the
// booked seat codes for rendering availability.
func (h *BookingHandler) SeatLayout(c echo.Context) error {
	grid := booking.NewGrid(booking.DefaultBookedSeats())
	return c.JSON(http.StatusOK, echo.Map{
		"rows":   booking.GridRows,
		"cols":   booking.GridCols,
		"booked": grid.BookedCodes(),
	})
}

type checkoutReq struct {
	MovieID       int      `json:"movieId"`
	TheaterID     int      `json:"theaterId"`
	Showtime      string   `json:"showtime"`
	Seats         []string `json:"seats"`
	PaymentMethod string   `json:"paymentMethod"` // "card" or "upi"
}

// Checkout handles POST /v1/bookings. Seats already in the booked set
// are no-ops, so a request consisting only of booked seats fails with
// "no seats selected". A missing session suspends at the auth step
// and reports 401 with authRequired=true; the client retries the same
// request after logging in, selection intact.
func (h *BookingHandler) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats required"})
	}

	ctx := c.Request().Context()
	movie := h.Catalog.MovieByID(ctx, req.MovieID)
	hall := h.Theaters.Find(req.TheaterID, req.Showtime)

	grid := booking.NewGrid(booking.DefaultBookedSeats())
	flow := booking.NewFlow(movie, hall, req.Showtime, grid,
		h.Identity, h.Data, h.Authorizer, h.publishConfirmed)

	for _, code := range req.Seats {
		if err := flow.ToggleSeat(code); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}

	if err := flow.Proceed(ctx); err != nil {
		switch {
		case errors.Is(err, booking.ErrNoSeats):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats selected"})
		case errors.Is(err, booking.ErrAuthRequired):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required", "authRequired": true})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}

	method := "Credit/Debit Card"
	if req.PaymentMethod == "upi" {
		method = "UPI"
	}
	conf, err := flow.Pay(ctx, method)
	if err != nil {
		if errors.Is(err, booking.ErrAuthRequired) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required", "authRequired": true})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment failed"})
	}
	return c.JSON(http.StatusCreated, conf)
}

// publishConfirmed fires the booking.confirmed event. Best effort:
// the confirmation must reach the user even when the broker is down.
func (h *BookingHandler) publishConfirmed(ctx context.Context, b model.Booking) {
	sess, err := h.Identity.Current(ctx)
	userID := ""
	if err == nil && sess != nil {
		userID = sess.ID
	}
	_ = queue_publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingID:     b.ID,
		UserID:        userID,
		MovieTitle:    b.MovieTitle,
		Theater:       b.Theater,
		Showtime:      b.Time,
		Seats:         b.Seats,
		Amount:        b.Amount,
		PaymentMethod: b.PaymentMethod,
		PaymentRef:    b.PaymentRef,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// TheaterHandler serves the static location directory and the
// last-chosen state/city preference.
type TheaterHandler struct {
	Theaters *theater.Directory
}

func NewTheaterHandler(dir *theater.Directory) *TheaterHandler {
	return &TheaterHandler{Theaters: dir}
}

// Locations handles GET /v1/theaters?state=&city=. Without query
// params it lists states; with a state it lists cities; with both it
// lists theaters and remembers the choice.
func (h *TheaterHandler) Locations(c echo.Context) error {
	state := c.QueryParam("state")
	city := c.QueryParam("city")
	switch {
	case state == "":
		return c.JSON(http.StatusOK, echo.Map{"states": h.Theaters.States()})
	case city == "":
		return c.JSON(http.StatusOK, echo.Map{"cities": h.Theaters.Cities(state)})
	default:
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.Theaters.SavePreference(ctx, state, city); err != nil {
			log.Printf("theater: save preference failed: %v", err)
		}
		theaters := h.Theaters.Theaters(state, city)
		if theaters == nil {
			theaters = []model.Theater{}
		}
		return c.JSON(http.StatusOK, echo.Map{"theaters": theaters})
	}
}

// Preference handles GET /v1/theaters/preference.
func (h *TheaterHandler) Preference(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	state, city := h.Theaters.Preference(ctx)
	return c.JSON(http.StatusOK, echo.Map{"state": state, "city": city})
}

// Theater handles GET /v1/theaters/:id; unknown ids resolve to the
// placeholder so booking links keep working.
func (h *TheaterHandler) Theater(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	return c.JSON(http.StatusOK, h.Theaters.Find(id, c.QueryParam("showtime")))
}
