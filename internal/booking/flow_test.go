package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/storage"
	"github.com/primeticket/primeticket-api/internal/userdata"
)

func newTestFlow(t *testing.T, price int, onBooked func(context.Context, model.Booking)) (*Flow, *identity.Store, *userdata.Store) {
	t.Helper()
	ids := identity.NewStore(storage.NewMemory(), nil, bcrypt.MinCost)
	ud := userdata.NewStore(ids, nil)
	movie := model.Movie{ID: 1, Title: "Jawan", Price: price}
	theater := model.Theater{ID: 101, Name: "PVR Phoenix Palladium"}
	f := NewFlow(movie, theater, "06:30 PM", NewGrid(DefaultBookedSeats()),
		ids, ud, &SimulatedAuthorizer{Delay: 0}, onBooked)
	return f, ids, ud
}

func signIn(t *testing.T, ids *identity.Store) {
	t.Helper()
	res, err := ids.Register(context.Background(), identity.Registration{
		Name: "Asha", Email: "asha@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
}

func TestTotalIsCountTimesUnitPrice(t *testing.T) {
	f, _, _ := newTestFlow(t, 300, nil)

	require.NoError(t, f.ToggleSeat("B2"))
	require.NoError(t, f.ToggleSeat("B3"))
	assert.Equal(t, 600, f.Total())

	// deselect one
	require.NoError(t, f.ToggleSeat("B3"))
	assert.Equal(t, 300, f.Total())
}

func TestUnitPriceFallback(t *testing.T) {
	f, _, _ := newTestFlow(t, 0, nil)
	assert.Equal(t, DefaultUnitPrice, f.UnitPrice())
}

func TestProceedRequiresSeats(t *testing.T) {
	f, ids, _ := newTestFlow(t, 250, nil)
	signIn(t, ids)

	err := f.Proceed(context.Background())
	assert.ErrorIs(t, err, ErrNoSeats)
	assert.Equal(t, StateSelectingSeats, f.State())
}

func TestProceedSuspendsWithoutSession(t *testing.T) {
	f, ids, _ := newTestFlow(t, 250, nil)
	ctx := context.Background()

	require.NoError(t, f.ToggleSeat("B2"))
	require.NoError(t, f.ToggleSeat("B3"))

	err := f.Proceed(ctx)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, StateAuthRequired, f.State())

	// the user signs in; the suspended flow resumes with the
	// selection exactly as left
	signIn(t, ids)
	require.NoError(t, f.Resume(ctx))
	assert.Equal(t, StateConfirmingPayment, f.State())
	assert.Equal(t, []string{"B2", "B3"}, f.Grid().SelectedCodes())
}

func TestResumeOnlyFromAuthRequired(t *testing.T) {
	f, _, _ := newTestFlow(t, 250, nil)
	assert.ErrorIs(t, f.Resume(context.Background()), ErrWrongState)
}

func TestPayPersistsBooking(t *testing.T) {
	var hooked *model.Booking
	f, ids, ud := newTestFlow(t, 250, func(_ context.Context, b model.Booking) { hooked = &b })
	ctx := context.Background()

	signIn(t, ids)
	require.NoError(t, f.ToggleSeat("B2"))
	require.NoError(t, f.ToggleSeat("B3"))
	require.NoError(t, f.Proceed(ctx))

	conf, err := f.Pay(ctx, "UPI")
	require.NoError(t, err)
	assert.Equal(t, StateBooked, f.State())

	assert.Equal(t, "Jawan", conf.Booking.MovieTitle)
	assert.Equal(t, "PVR Phoenix Palladium", conf.Booking.Theater)
	assert.Equal(t, []string{"B2", "B3"}, conf.Booking.Seats)
	assert.Equal(t, 500, conf.Booking.Amount)
	assert.Equal(t, "UPI", conf.Booking.PaymentMethod)
	assert.NotEmpty(t, conf.Booking.PaymentRef)
	assert.Equal(t, "06:30 PM", conf.Showtime)

	require.NotNil(t, hooked, "the onBooked hook fires after checkout")
	assert.Equal(t, conf.Booking.ID, hooked.ID)

	bookings, err := ud.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, conf.Booking.ID, bookings[0].ID)
}

func TestPayOutsideConfirmingState(t *testing.T) {
	f, _, _ := newTestFlow(t, 250, nil)
	_, err := f.Pay(context.Background(), "UPI")
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestPayWithVanishedSessionSuspends(t *testing.T) {
	f, ids, _ := newTestFlow(t, 250, nil)
	ctx := context.Background()

	signIn(t, ids)
	require.NoError(t, f.ToggleSeat("B2"))
	require.NoError(t, f.Proceed(ctx))

	// session evaporates between Proceed and Pay
	require.NoError(t, ids.Logout(ctx))

	_, err := f.Pay(ctx, "UPI")
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, StateAuthRequired, f.State())
}

func TestAbandonResetsSelection(t *testing.T) {
	f, _, _ := newTestFlow(t, 250, nil)

	require.NoError(t, f.ToggleSeat("B2"))
	f.Abandon()

	assert.Equal(t, StateSelectingSeats, f.State())
	assert.Zero(t, f.Grid().SelectedCount())
	assert.Equal(t, 0, f.Total())
}
