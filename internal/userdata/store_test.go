package userdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/primeticket/primeticket-api/internal/event"
	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/storage"
)

func newTestStores(t *testing.T) (*Store, *identity.Store) {
	t.Helper()
	mem := storage.NewMemory()
	bus := event.NewBus()
	ids := identity.NewStore(mem, bus, bcrypt.MinCost)
	s := NewStore(ids, bus)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	return s, ids
}

func login(t *testing.T, ids *identity.Store) {
	t.Helper()
	res, err := ids.Register(context.Background(), identity.Registration{
		Name: "Asha", Email: "asha@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
}

func TestFavoritesFollowTheSession(t *testing.T) {
	s, ids := newTestStores(t)
	ctx := context.Background()

	login(t, ids)
	fav := model.Movie{ID: 7, Title: "12th Fail"}

	added, err := s.AddFavorite(ctx, fav)
	require.NoError(t, err)
	require.True(t, added)
	assert.True(t, s.IsFavorite(ctx, 7))

	// logging out hides the collection without touching it
	require.NoError(t, ids.Logout(ctx))
	assert.False(t, s.IsFavorite(ctx, 7))
	favs, err := s.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)

	// logging back in reveals it again
	res, err := ids.Login(ctx, "asha@example.com", "secret1")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.True(t, s.IsFavorite(ctx, 7))
}

func TestAddFavoriteIsASet(t *testing.T) {
	s, ids := newTestStores(t)
	ctx := context.Background()

	login(t, ids)
	fav := model.Movie{ID: 7, Title: "12th Fail"}

	added, err := s.AddFavorite(ctx, fav)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddFavorite(ctx, fav)
	require.NoError(t, err)
	assert.False(t, added, "a duplicate add must not grow the set")

	favs, err := s.Favorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestAddFavoriteWithoutSession(t *testing.T) {
	s, _ := newTestStores(t)

	added, err := s.AddFavorite(context.Background(), model.Movie{ID: 7})
	require.NoError(t, err)
	assert.False(t, added)
}

func TestRemoveFavorite(t *testing.T) {
	s, ids := newTestStores(t)
	ctx := context.Background()

	login(t, ids)
	_, err := s.AddFavorite(ctx, model.Movie{ID: 7, Title: "12th Fail"})
	require.NoError(t, err)
	_, err = s.AddFavorite(ctx, model.Movie{ID: 4, Title: "Dune"})
	require.NoError(t, err)

	removed, err := s.RemoveFavorite(ctx, 7)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.IsFavorite(ctx, 7))
	assert.True(t, s.IsFavorite(ctx, 4))
}

func TestAddBookingPrependsNewestFirst(t *testing.T) {
	s, ids := newTestStores(t)
	ctx := context.Background()

	login(t, ids)

	first, err := s.AddBooking(ctx, BookingInput{MovieTitle: "Jawan", Seats: []string{"B2"}, Amount: 250})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Date)

	second, err := s.AddBooking(ctx, BookingInput{MovieTitle: "Dune", Seats: []string{"D4", "D5"}, Amount: 700})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	bookings, err := s.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Dune", bookings[0].MovieTitle, "latest booking leads the list")
	assert.Equal(t, "Jawan", bookings[1].MovieTitle)
}

func TestAddBookingWithoutSession(t *testing.T) {
	s, _ := newTestStores(t)

	booking, err := s.AddBooking(context.Background(), BookingInput{MovieTitle: "Jawan"})
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestBookingsSurviveRelogin(t *testing.T) {
	s, ids := newTestStores(t)
	ctx := context.Background()

	login(t, ids)
	_, err := s.AddBooking(ctx, BookingInput{MovieTitle: "Jawan", Amount: 250})
	require.NoError(t, err)

	require.NoError(t, ids.Logout(ctx))
	res, err := ids.Login(ctx, "asha@example.com", "secret1")
	require.NoError(t, err)
	require.True(t, res.Success)

	bookings, err := s.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Jawan", bookings[0].MovieTitle)
}
