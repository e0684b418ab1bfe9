// Package userdata manages the per-user collections (favorites and
// bookings) nested inside the identity directory. Reads and writes go
// through the directory entry, never the session pointer, so the
// authoritative record is always the one mutated. Every mutation is a
// whole-directory read-modify-write; two concurrent writers can lose
// an update (last write wins). That is a known limitation of the slot
// model, accepted for a single active user, not something to silently
// fix here.
package userdata

import (
	"context"
	"strconv"
	"time"

	"github.com/primeticket/primeticket-api/internal/event"
	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/model"
)

// BookingInput is what the booking flow hands over at checkout; the
// store stamps the id and creation date itself.
type BookingInput struct {
	MovieTitle    string   `json:"movieTitle"`
	MoviePoster   string   `json:"moviePoster"`
	Theater       string   `json:"theater"`
	Time          string   `json:"time"`
	Seats         []string `json:"seats"`
	Amount        int      `json:"amount"`
	PaymentMethod string   `json:"paymentMethod"`
	PaymentRef    string   `json:"paymentRef"`
}

// Store layers favorites and bookings on the identity store.
type Store struct {
	identity *identity.Store
	bus      *event.Bus
	now      func() time.Time
}

// NewStore builds a userdata store; bus may be nil.
func NewStore(ids *identity.Store, bus *event.Bus) *Store {
	return &Store{identity: ids, bus: bus, now: time.Now}
}

// current resolves the session to the authoritative directory entry.
// ok is false when no one is logged in or the entry vanished.
func (s *Store) current(ctx context.Context) (model.User, bool, error) {
	sess, err := s.identity.Current(ctx)
	if err != nil || sess == nil {
		return model.User{}, false, err
	}
	return s.identity.Lookup(ctx, sess.ID)
}

// Favorites returns the current user's favorites; no session means an
// empty list.
func (s *Store) Favorites(ctx context.Context) ([]model.Movie, error) {
	user, ok, err := s.current(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return user.Favorites, nil
}

// AddFavorite adds a movie to the set. Returns false without writing
// when there is no session or the movie is already present.
func (s *Store) AddFavorite(ctx context.Context, movie model.Movie) (bool, error) {
	user, ok, err := s.current(ctx)
	if err != nil || !ok {
		return false, err
	}
	for _, fav := range user.Favorites {
		if fav.ID == movie.ID {
			return false, nil
		}
	}
	user.Favorites = append(user.Favorites, movie)
	if _, err := s.identity.Replace(ctx, user); err != nil {
		return false, err
	}
	s.publish(event.FavoritesChanged)
	return true, nil
}

// RemoveFavorite filters a movie out of the set by id.
func (s *Store) RemoveFavorite(ctx context.Context, movieID int) (bool, error) {
	user, ok, err := s.current(ctx)
	if err != nil || !ok {
		return false, err
	}
	kept := user.Favorites[:0]
	for _, fav := range user.Favorites {
		if fav.ID != movieID {
			kept = append(kept, fav)
		}
	}
	user.Favorites = kept
	if _, err := s.identity.Replace(ctx, user); err != nil {
		return false, err
	}
	s.publish(event.FavoritesChanged)
	return true, nil
}

// IsFavorite reports membership for the current user; always false
// without a session.
func (s *Store) IsFavorite(ctx context.Context, movieID int) bool {
	favorites, err := s.Favorites(ctx)
	if err != nil {
		return false
	}
	for _, fav := range favorites {
		if fav.ID == movieID {
			return true
		}
	}
	return false
}

// Bookings returns the current user's bookings, newest first.
func (s *Store) Bookings(ctx context.Context) ([]model.Booking, error) {
	user, ok, err := s.current(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return user.Bookings, nil
}

// AddBooking stamps a fresh id and creation date on the input and
// prepends it to the current user's bookings. Newest-first ordering
// is part of the contract with the bookings display.
func (s *Store) AddBooking(ctx context.Context, in BookingInput) (*model.Booking, error) {
	user, ok, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	booking := model.Booking{
		ID:            strconv.FormatInt(s.now().UnixMilli(), 10),
		MovieTitle:    in.MovieTitle,
		MoviePoster:   in.MoviePoster,
		Theater:       in.Theater,
		Date:          s.now().UTC().Format(time.RFC3339),
		Time:          in.Time,
		Seats:         in.Seats,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		PaymentRef:    in.PaymentRef,
	}
	user.Bookings = append([]model.Booking{booking}, user.Bookings...)
	if _, err := s.identity.Replace(ctx, user); err != nil {
		return nil, err
	}
	s.publish(event.BookingsChanged)
	return &booking, nil
}

func (s *Store) publish(topic event.Topic) {
	if s.bus != nil {
		s.bus.Publish(topic)
	}
}
