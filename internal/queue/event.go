// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a checkout completes. It
// carries enough for downstream consumers (notifications, analytics)
// to act without querying the user directory.
type BookingConfirmedEvent struct {
	BookingID     string   `json:"booking_id"`
	UserID        string   `json:"user_id"`
	MovieTitle    string   `json:"movie_title"`
	Theater       string   `json:"theater"`
	Showtime      string   `json:"showtime"`
	Seats         []string `json:"seats"`
	Amount        int      `json:"amount"`
	PaymentMethod string   `json:"payment_method"`
	PaymentRef    string   `json:"payment_ref"`
	ConfirmedAt   string   `json:"confirmed_at"`
}
