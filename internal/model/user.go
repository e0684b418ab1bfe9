package model

// User is a directory entry in the user slot. The full record,
// including the password hash and the per-user collections, is only
// handled by the identity and userdata stores; everything that leaves
// those stores is a Session (password-stripped view).
//
// Fields:
//  ID           – opaque time-derived identifier (unix milliseconds).
//  Name         – display name.
//  Email        – unique across the directory, stored lowercased.
//  PasswordHash – bcrypt hash of the password.
//  Phone        – optional phone number.
//  CreatedAt    – RFC 3339 creation timestamp.
//  Favorites    – favorite movies, set semantics keyed by movie id.
//  Bookings     – bookings, newest first.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Phone        string    `json:"phone"`
	CreatedAt    string    `json:"createdAt"`
	Favorites    []Movie   `json:"favorites,omitempty"`
	Bookings     []Booking `json:"bookings,omitempty"`
}

// Session is the "who is currently logged in" pointer persisted in
// its own slot, separate from the directory. It never carries the
// password hash.
type Session struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// SessionOf strips a directory entry down to its session view.
func SessionOf(u User) Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, CreatedAt: u.CreatedAt}
}
