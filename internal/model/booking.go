package model

// Booking is one confirmed booking, immutable once created and
// prepended to the owning user's bookings list (newest first).
//
// Fields:
//  ID            – opaque time-derived identifier.
//  MovieTitle    – title at booking time.
//  MoviePoster   – poster URL at booking time.
//  Theater       – theater display name.
//  Date          – RFC 3339 creation timestamp.
//  Time          – showtime string as displayed (e.g. "06:30 PM").
//  Seats         – ordered seat codes ("A5", "C12", ...).
//  Amount        – total amount paid.
//  PaymentMethod – display name of the payment method used.
//  PaymentRef    – reference issued by the payment authorizer.
type Booking struct {
	ID            string   `json:"id"`
	MovieTitle    string   `json:"movieTitle"`
	MoviePoster   string   `json:"moviePoster"`
	Theater       string   `json:"theater"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Seats         []string `json:"seats"`
	Amount        int      `json:"amount"`
	PaymentMethod string   `json:"paymentMethod"`
	PaymentRef    string   `json:"paymentRef,omitempty"`
}
