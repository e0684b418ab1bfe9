// Package identity owns the user directory and the current-session
// pointer. Validation failures come back as structured results, never
// as errors; errors are reserved for storage trouble. Every
// successful state change publishes AuthChanged so interested readers
// re-query the store.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/primeticket/primeticket-api/internal/event"
	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/storage"
	"github.com/primeticket/primeticket-api/internal/utils"
)

// MinPasswordLen is the registration password floor.
const MinPasswordLen = 6

// Result is the outcome of a registration, login or profile update.
// Success=false with a message is a normal validation outcome.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	User    *model.Session `json:"user,omitempty"`
}

// Registration is the input to Register.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// ProfileUpdate carries the fields UpdateProfile may change. The id
// is never caller-supplied; nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Store is the identity store over slot storage.
type Store struct {
	store      storage.Store
	bus        *event.Bus
	bcryptCost int
	now        func() time.Time
}

// NewStore builds an identity store. bus may be nil when no one
// listens for changes.
func NewStore(store storage.Store, bus *event.Bus, bcryptCost int) *Store {
	return &Store{store: store, bus: bus, bcryptCost: bcryptCost, now: time.Now}
}

// directory loads the full user directory; an absent slot is an empty
// directory.
func (s *Store) directory(ctx context.Context) ([]model.User, error) {
	raw, err := s.store.Get(ctx, storage.SlotUsers)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) saveDirectory(ctx context.Context, users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, storage.SlotUsers, raw)
}

func (s *Store) saveSession(ctx context.Context, sess model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, storage.SlotSession, raw)
}

// Register validates and creates a new user. Validation order:
// required fields, password length, email uniqueness. On success the
// user is persisted and immediately becomes the current session
// (auto-login on signup).
func (s *Store) Register(ctx context.Context, reg Registration) (Result, error) {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return Result{Message: "All fields are required"}, nil
	}
	if len(reg.Password) < MinPasswordLen {
		return Result{Message: "Password must be at least 6 characters"}, nil
	}

	users, err := s.directory(ctx)
	if err != nil {
		return Result{}, err
	}
	for _, u := range users {
		if u.Email == reg.Email {
			return Result{Message: "Email already registered"}, nil
		}
	}

	hash, err := utils.HashPassword(reg.Password, s.bcryptCost)
	if err != nil {
		return Result{}, err
	}
	user := model.User{
		ID:           strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
		Phone:        reg.Phone,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.saveDirectory(ctx, append(users, user)); err != nil {
		return Result{}, err
	}

	sess := model.SessionOf(user)
	if err := s.saveSession(ctx, sess); err != nil {
		return Result{}, err
	}
	s.publish()
	return Result{Success: true, Message: "Registration successful", User: &sess}, nil
}

// Login matches email and password against the directory. A match
// stores the password-stripped session pointer; a miss returns a
// validation result and leaves any existing session untouched.
func (s *Store) Login(ctx context.Context, email, password string) (Result, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Result{Message: "Email and password are required"}, nil
	}

	users, err := s.directory(ctx)
	if err != nil {
		return Result{}, err
	}
	for _, u := range users {
		if u.Email == email && utils.VerifyPassword(u.PasswordHash, password) {
			sess := model.SessionOf(u)
			if err := s.saveSession(ctx, sess); err != nil {
				return Result{}, err
			}
			s.publish()
			return Result{Success: true, Message: "Login successful", User: &sess}, nil
		}
	}
	return Result{Message: "Invalid email or password"}, nil
}

// Logout clears the session pointer only; the directory is untouched.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.SlotSession); err != nil {
		return err
	}
	s.publish()
	return nil
}

// Current returns the session pointer, or nil when no one is logged
// in.
func (s *Store) Current(ctx context.Context) (*model.Session, error) {
	raw, err := s.store.Get(ctx, storage.SlotSession)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// IsLoggedIn reports whether a session pointer exists.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	sess, err := s.Current(ctx)
	return err == nil && sess != nil
}

// UpdateProfile merges the non-nil fields of upd into the current
// user's directory entry and refreshes the session pointer. The id is
// never overwritten.
func (s *Store) UpdateProfile(ctx context.Context, upd ProfileUpdate) (Result, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return Result{}, err
	}
	if sess == nil {
		return Result{Message: "No user logged in"}, nil
	}

	users, err := s.directory(ctx)
	if err != nil {
		return Result{}, err
	}
	for i := range users {
		if users[i].ID != sess.ID {
			continue
		}
		if upd.Name != nil {
			users[i].Name = *upd.Name
		}
		if upd.Email != nil {
			users[i].Email = strings.ToLower(strings.TrimSpace(*upd.Email))
		}
		if upd.Phone != nil {
			users[i].Phone = *upd.Phone
		}
		if err := s.saveDirectory(ctx, users); err != nil {
			return Result{}, err
		}
		updated := model.SessionOf(users[i])
		if err := s.saveSession(ctx, updated); err != nil {
			return Result{}, err
		}
		s.publish()
		return Result{Success: true, Message: "Profile updated successfully", User: &updated}, nil
	}
	return Result{Message: "User not found"}, nil
}

// Lookup returns the full directory entry for an id; userdata builds
// on this to always read the authoritative record, never the session
// pointer.
func (s *Store) Lookup(ctx context.Context, id string) (model.User, bool, error) {
	users, err := s.directory(ctx)
	if err != nil {
		return model.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

// Replace writes an updated directory entry back, whole-directory
// read-modify-write. Concurrent writers lose updates (last write
// wins); accepted for the single-active-user assumption.
func (s *Store) Replace(ctx context.Context, user model.User) (bool, error) {
	users, err := s.directory(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].ID != user.ID {
			continue
		}
		users[i] = user
		if err := s.saveDirectory(ctx, users); err != nil {
			return false, err
		}
		// keep the session pointer in sync when it references this user
		if sess, err := s.Current(ctx); err == nil && sess != nil && sess.ID == user.ID {
			if err := s.saveSession(ctx, model.SessionOf(user)); err != nil {
				return false, err
			}
		}
		return true, nil
	}
	return false, nil
}

func (s *Store) publish() {
	if s.bus != nil {
		s.bus.Publish(event.AuthChanged)
	}
}
