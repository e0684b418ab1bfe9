// Package theater serves the static state -> city -> theaters
// directory consumed by the booking flow and theater selection, plus
// the persisted last-chosen state/city preferences.
package theater

import (
	"context"

	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/storage"
)

// byLocation is the read-only directory data. Ids are unique across
// the whole directory, not per city.
var byLocation = map[string]map[string][]model.Theater{
	"Maharashtra": {
		"Mumbai": {
			{ID: 101, Name: "PVR Phoenix Palladium", Location: "Lower Parel",
				Showtimes: []string{"10:00 AM", "01:30 PM", "06:30 PM", "10:00 PM"}},
			{ID: 102, Name: "INOX Nariman Point", Location: "Nariman Point",
				Showtimes: []string{"11:00 AM", "02:30 PM", "07:00 PM"}},
		},
		"Pune": {
			{ID: 103, Name: "Cinepolis Seasons Mall", Location: "Magarpatta",
				Showtimes: []string{"09:30 AM", "01:00 PM", "05:30 PM", "09:30 PM"}},
		},
	},
	"Karnataka": {
		"Bengaluru": {
			{ID: 201, Name: "PVR Forum Mall", Location: "Koramangala",
				Showtimes: []string{"10:15 AM", "01:45 PM", "06:15 PM", "10:15 PM"}},
			{ID: 202, Name: "INOX Garuda Mall", Location: "Magrath Road",
				Showtimes: []string{"11:30 AM", "03:00 PM", "07:30 PM"}},
		},
	},
	"Delhi": {
		"New Delhi": {
			{ID: 301, Name: "PVR Select Citywalk", Location: "Saket",
				Showtimes: []string{"10:00 AM", "01:30 PM", "05:00 PM", "08:30 PM"}},
		},
	},
	"Tamil Nadu": {
		"Chennai": {
			{ID: 401, Name: "Sathyam Cinemas", Location: "Royapettah",
				Showtimes: []string{"09:00 AM", "12:30 PM", "04:00 PM", "07:30 PM", "11:00 PM"}},
		},
	},
}

// Directory answers location and lookup queries over the static data
// and persists the UI's last-chosen state/city in their own slots.
type Directory struct {
	store storage.Store
}

// NewDirectory builds a directory over the given preference store.
func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store}
}

// States lists the available states.
func (d *Directory) States() []string {
	states := make([]string, 0, len(byLocation))
	for state := range byLocation {
		states = append(states, state)
	}
	return states
}

// Cities lists the cities of a state; nil for unknown states.
func (d *Directory) Cities(state string) []string {
	cities := make([]string, 0, len(byLocation[state]))
	for city := range byLocation[state] {
		cities = append(cities, city)
	}
	return cities
}

// Theaters lists the theaters of a city.
func (d *Directory) Theaters(state, city string) []model.Theater {
	return byLocation[state][city]
}

// Find scans every location for a theater id. A miss yields a
// placeholder so the booking flow never blocks on an unknown theater.
func (d *Directory) Find(id int, showtime string) model.Theater {
	for _, cities := range byLocation {
		for _, theaters := range cities {
			for _, t := range theaters {
				if t.ID == id {
					return t
				}
			}
		}
	}
	return model.Theater{
		ID:        id,
		Name:      "Selected Theater",
		Location:  "Unknown Location",
		Showtimes: []string{showtime},
	}
}

// Preference returns the persisted state/city choice; empty strings
// when nothing was saved yet.
func (d *Directory) Preference(ctx context.Context) (state, city string) {
	if raw, err := d.store.Get(ctx, storage.SlotPrefState); err == nil {
		state = string(raw)
	}
	if raw, err := d.store.Get(ctx, storage.SlotPrefCity); err == nil {
		city = string(raw)
	}
	return state, city
}

// SavePreference persists the last-chosen state and city.
func (d *Directory) SavePreference(ctx context.Context, state, city string) error {
	if err := d.store.Put(ctx, storage.SlotPrefState, []byte(state)); err != nil {
		return err
	}
	return d.store.Put(ctx, storage.SlotPrefCity, []byte(city))
}
