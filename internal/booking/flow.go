// Package booking implements the seat-selection flow that turns a
// chosen movie, theater and showtime into a confirmed booking record.
package booking

import (
	"context"
	"errors"

	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/userdata"
)

// State is the flow's position in
// Browsing -> SelectingSeats -> AuthRequired? -> ConfirmingPayment -> Booked.
type State string

const (
	StateSelectingSeats    State = "SELECTING_SEATS"
	StateAuthRequired      State = "AUTH_REQUIRED"
	StateConfirmingPayment State = "CONFIRMING_PAYMENT"
	StateBooked            State = "BOOKED"
)

var (
	// ErrNoSeats means Proceed was called with an empty selection.
	ErrNoSeats = errors.New("booking: no seats selected")
	// ErrAuthRequired means the flow suspended waiting for a login.
	// The selection survives; Resume continues where it left off.
	ErrAuthRequired = errors.New("booking: authentication required")
	// ErrWrongState means an operation does not apply to the flow's
	// current state.
	ErrWrongState = errors.New("booking: operation not valid in current state")
)

// DefaultUnitPrice stands in when the movie record carries no price.
const DefaultUnitPrice = 250

// Confirmation is what the Booked state hands to the confirmation
// display.
type Confirmation struct {
	Booking  model.Booking `json:"booking"`
	Movie    model.Movie   `json:"movie"`
	Theater  model.Theater `json:"theater"`
	Showtime string        `json:"showtime"`
}

// Flow is one user's in-progress booking. It is single-user,
// in-memory state: abandoning it simply drops the value.
type Flow struct {
	state    State
	movie    model.Movie
	theater  model.Theater
	showtime string
	grid     *Grid

	identity   *identity.Store
	userdata   *userdata.Store
	authorizer Authorizer
	onBooked   func(context.Context, model.Booking)
}

// NewFlow starts a flow at seat selection for the given showing. The
// onBooked hook, if non-nil, runs after a successful checkout (used
// to publish the confirmation event); it must not fail the flow.
func NewFlow(movie model.Movie, theater model.Theater, showtime string, grid *Grid,
	ids *identity.Store, ud *userdata.Store, authorizer Authorizer,
	onBooked func(context.Context, model.Booking)) *Flow {
	if grid == nil {
		grid = NewGrid(DefaultBookedSeats())
	}
	return &Flow{
		state:      StateSelectingSeats,
		movie:      movie,
		theater:    theater,
		showtime:   showtime,
		grid:       grid,
		identity:   ids,
		userdata:   ud,
		authorizer: authorizer,
		onBooked:   onBooked,
	}
}

// State returns the flow's current state.
func (f *Flow) State() State { return f.state }

// Grid exposes the seat grid for rendering and toggling.
func (f *Flow) Grid() *Grid { return f.grid }

// UnitPrice is the per-seat price, falling back to the default when
// the movie record has none.
func (f *Flow) UnitPrice() int {
	if f.movie.Price > 0 {
		return f.movie.Price
	}
	return DefaultUnitPrice
}

// Total is always selected-count times unit price.
func (f *Flow) Total() int {
	return f.grid.SelectedCount() * f.UnitPrice()
}

// ToggleSeat flips a seat by code during selection (or while
// suspended at auth, where changing one's mind is still allowed).
func (f *Flow) ToggleSeat(code string) error {
	if f.state != StateSelectingSeats && f.state != StateAuthRequired {
		return ErrWrongState
	}
	seat, ok := ParseSeat(code)
	if !ok {
		return errors.New("booking: invalid seat code " + code)
	}
	f.grid.Toggle(seat)
	return nil
}

// Proceed moves from seat selection toward payment. It requires a
// non-empty selection and an active session; without a session the
// flow suspends at AuthRequired and keeps the selection for Resume.
func (f *Flow) Proceed(ctx context.Context) error {
	if f.state != StateSelectingSeats && f.state != StateAuthRequired {
		return ErrWrongState
	}
	if f.grid.SelectedCount() == 0 {
		return ErrNoSeats
	}
	if !f.identity.IsLoggedIn(ctx) {
		f.state = StateAuthRequired
		return ErrAuthRequired
	}
	f.state = StateConfirmingPayment
	return nil
}

// Resume continues a flow suspended at AuthRequired after the user
// authenticated. Theater, showtime and selected seats are exactly as
// left.
func (f *Flow) Resume(ctx context.Context) error {
	if f.state != StateAuthRequired {
		return ErrWrongState
	}
	f.state = StateSelectingSeats
	return f.Proceed(ctx)
}

// Pay runs the payment step: authorize, persist the booking via the
// user data store, fire the onBooked hook and land in Booked. The
// authorizer decides how long this takes; the simulation always
// approves.
func (f *Flow) Pay(ctx context.Context, method string) (*Confirmation, error) {
	if f.state != StateConfirmingPayment {
		return nil, ErrWrongState
	}
	amount := f.Total()
	auth, err := f.authorizer.Authorize(ctx, amount, method)
	if err != nil {
		return nil, err
	}

	booking, err := f.userdata.AddBooking(ctx, userdata.BookingInput{
		MovieTitle:    f.movie.Title,
		MoviePoster:   f.movie.Poster,
		Theater:       f.theater.Name,
		Time:          f.showtime,
		Seats:         f.grid.SelectedCodes(),
		Amount:        amount,
		PaymentMethod: auth.Method,
		PaymentRef:    auth.Reference,
	})
	if err != nil {
		return nil, err
	}
	if booking == nil {
		// session vanished between Proceed and Pay
		f.state = StateAuthRequired
		return nil, ErrAuthRequired
	}

	if f.onBooked != nil {
		f.onBooked(ctx, *booking)
	}

	f.state = StateBooked
	return &Confirmation{
		Booking:  *booking,
		Movie:    f.movie,
		Theater:  f.theater,
		Showtime: f.showtime,
	}, nil
}

// Abandon clears the selection; the flow returns to seat selection.
func (f *Flow) Abandon() {
	f.grid.Clear()
	f.state = StateSelectingSeats
}
