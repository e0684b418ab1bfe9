package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCodeRoundTrip(t *testing.T) {
	cases := map[string]Seat{
		"A1":  {Row: 0, Col: 0},
		"A5":  {Row: 0, Col: 4},
		"F9":  {Row: 5, Col: 8},
		"J12": {Row: 9, Col: 11},
	}
	for code, want := range cases {
		seat, ok := ParseSeat(code)
		require.True(t, ok, code)
		assert.Equal(t, want, seat)
		assert.Equal(t, code, seat.Code())
	}
}

func TestParseSeatRejectsOutOfGrid(t *testing.T) {
	for _, code := range []string{"", "A", "K1", "A13", "A0", "5A", "AA", "a5"} {
		_, ok := ParseSeat(code)
		assert.False(t, ok, "code %q must not parse", code)
	}
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	g := NewGrid(nil)
	seat, _ := ParseSeat("B2")

	assert.True(t, g.Toggle(seat))
	assert.Equal(t, SeatSelected, g.Status(seat))
	assert.Equal(t, 1, g.SelectedCount())

	assert.False(t, g.Toggle(seat))
	assert.Equal(t, SeatAvailable, g.Status(seat))
	assert.Zero(t, g.SelectedCount())
}

func TestToggleBookedSeatIsNoOp(t *testing.T) {
	g := NewGrid(DefaultBookedSeats())
	seat, _ := ParseSeat("A5")

	assert.False(t, g.Toggle(seat))
	assert.Equal(t, SeatBooked, g.Status(seat))
	assert.Zero(t, g.SelectedCount())
}

func TestSelectedCodesKeepSelectionOrder(t *testing.T) {
	g := NewGrid(nil)
	for _, code := range []string{"C3", "A1", "B2"} {
		seat, _ := ParseSeat(code)
		g.Toggle(seat)
	}
	assert.Equal(t, []string{"C3", "A1", "B2"}, g.SelectedCodes())

	// deselecting the middle seat closes the gap
	seat, _ := ParseSeat("A1")
	g.Toggle(seat)
	assert.Equal(t, []string{"C3", "B2"}, g.SelectedCodes())
}

func TestBookedCodesSortedRowMajor(t *testing.T) {
	g := NewGrid([]string{"F9", "A6", "C4", "A5", "F8", "C5", "bogus"})
	assert.Equal(t, []string{"A5", "A6", "C4", "C5", "F8", "F9"}, g.BookedCodes())
}

func TestClearLeavesBookedAlone(t *testing.T) {
	g := NewGrid(DefaultBookedSeats())
	seat, _ := ParseSeat("B2")
	g.Toggle(seat)

	g.Clear()

	assert.Zero(t, g.SelectedCount())
	booked, _ := ParseSeat("A5")
	assert.Equal(t, SeatBooked, g.Status(booked))
}
