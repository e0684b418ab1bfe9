package model

// Theater is one entry in the static state -> city -> theaters
// directory consumed by the booking flow and theater selection.
//
// Fields:
//  ID        – directory-unique identifier.
//  Name      – display name.
//  Location  – human-readable address line.
//  Showtimes – available showtime strings.
type Theater struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Showtimes []string `json:"showtimes"`
}
