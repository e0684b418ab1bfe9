package booking

import (
	"fmt"
	"sort"
)

// Grid dimensions for one showtime. Seats are coded
// "<RowLetter><ColumnNumber>", rows A..J and columns 1..12.
const (
	GridRows = 10
	GridCols = 12
)

// Seat is one coordinate on the grid.
type Seat struct {
	Row int // 0-based, row A is 0
	Col int // 0-based, column 1 is 0
}

// Code renders the seat in display form, e.g. {0,4} -> "A5".
func (s Seat) Code() string {
	return fmt.Sprintf("%c%d", 'A'+s.Row, s.Col+1)
}

// ParseSeat turns a display code back into a coordinate. ok is false
// for malformed codes or coordinates outside the grid.
func ParseSeat(code string) (Seat, bool) {
	if len(code) < 2 {
		return Seat{}, false
	}
	row := int(code[0] - 'A')
	col := 0
	for i := 1; i < len(code); i++ {
		d := code[i]
		if d < '0' || d > '9' {
			return Seat{}, false
		}
		col = col*10 + int(d-'0')
	}
	col--
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return Seat{}, false
	}
	return Seat{Row: row, Col: col}, true
}

// SeatStatus is the availability of one grid position.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatBooked    SeatStatus = "BOOKED"
	SeatSelected  SeatStatus = "SELECTED"
)

// Grid tracks the disjoint Booked/Selected/Available partition of the
// seat matrix for one showtime. Booked membership is fixed at
// construction; Selected is the caller's ephemeral working set.
// Lookups are O(1) by coordinate.
type Grid struct {
	booked   map[Seat]struct{}
	selected map[Seat]struct{}
	order    []Seat // selection order, preserved for display
}

// NewGrid builds a grid with the given pre-booked seat codes.
// Malformed codes are ignored.
func NewGrid(bookedCodes []string) *Grid {
	g := &Grid{
		booked:   make(map[Seat]struct{}),
		selected: make(map[Seat]struct{}),
	}
	for _, code := range bookedCodes {
		if seat, ok := ParseSeat(code); ok {
			g.booked[seat] = struct{}{}
		}
	}
	return g
}

// DefaultBookedSeats is the static pre-booked set used when no
// inventory backend supplies one.
func DefaultBookedSeats() []string {
	return []string{"A5", "A6", "C4", "C5", "F8", "F9"}
}

// Toggle flips membership of a seat in the selected set. Booked seats
// are a no-op and report false; otherwise the returned bool is the
// seat's new selected state.
func (g *Grid) Toggle(seat Seat) bool {
	if _, taken := g.booked[seat]; taken {
		return false
	}
	if _, on := g.selected[seat]; on {
		delete(g.selected, seat)
		for i, s := range g.order {
			if s == seat {
				g.order = append(g.order[:i], g.order[i+1:]...)
				break
			}
		}
		return false
	}
	g.selected[seat] = struct{}{}
	g.order = append(g.order, seat)
	return true
}

// Status reports which partition a seat currently belongs to.
func (g *Grid) Status(seat Seat) SeatStatus {
	if _, ok := g.booked[seat]; ok {
		return SeatBooked
	}
	if _, ok := g.selected[seat]; ok {
		return SeatSelected
	}
	return SeatAvailable
}

// SelectedCount returns the size of the selected set.
func (g *Grid) SelectedCount() int { return len(g.selected) }

// SelectedCodes returns the selected seat codes in selection order.
func (g *Grid) SelectedCodes() []string {
	codes := make([]string, 0, len(g.order))
	for _, s := range g.order {
		codes = append(codes, s.Code())
	}
	return codes
}

// BookedCodes returns the booked seat codes sorted row-major, mainly
// for rendering the layout.
func (g *Grid) BookedCodes() []string {
	seats := make([]Seat, 0, len(g.booked))
	for s := range g.booked {
		seats = append(seats, s)
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Col < seats[j].Col
	})
	codes := make([]string, len(seats))
	for i, s := range seats {
		codes[i] = s.Code()
	}
	return codes
}

// Clear empties the selected set; booked seats are untouched.
func (g *Grid) Clear() {
	g.selected = make(map[Seat]struct{})
	g.order = nil
}
