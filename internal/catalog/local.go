package catalog

import "github.com/primeticket/primeticket-api/internal/model"

// localMovies is the static catalog bundled with the application. It
// is the read-only "local" source merged ahead of remote records; its
// ids stay below model.RemoteIDStart so the two sources never collide.
var localMovies = []model.Movie{
	{
		ID: 1, Title: "Jawan", Genre: []string{"Action", "Thriller"},
		Language: "Hindi", Rating: "UA", Duration: "2h 49m",
		Poster:      "https://image.tmdb.org/t/p/w500/jFt1gS4BGHlK8xt76Y81Alp4dbt.jpg",
		Description: "A high-octane action thriller about a man driven by a personal vendetta.",
		Price:       250,
	},
	{
		ID: 2, Title: "Oppenheimer", Genre: []string{"Drama", "History"},
		Language: "English", Rating: "A", Duration: "3h 0m",
		Poster:      "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
		Description: "The story of J. Robert Oppenheimer and the making of the atomic bomb.",
		Price:       300,
	},
	{
		ID: 3, Title: "Leo", Genre: []string{"Action", "Drama"},
		Language: "Tamil", Rating: "UA", Duration: "2h 44m",
		Poster:      "https://image.tmdb.org/t/p/w500/pA9QsfPJt6cIzNYWSlPvZnLmO6p.jpg",
		Description: "A mild-mannered cafe owner's past catches up with him.",
		Price:       220,
	},
	{
		ID: 4, Title: "Dune", Genre: []string{"Sci-Fi", "Adventure"},
		Language: "English", Rating: "UA", Duration: "2h 35m",
		Poster:      "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
		Description: "Paul Atreides leads nomadic tribes in a battle for Arrakis.",
		Price:       280,
	},
	{
		ID: 5, Title: "RRR", Genre: []string{"Action", "Drama"},
		Language: "Telugu", Rating: "UA", Duration: "3h 7m",
		Poster:      "https://image.tmdb.org/t/p/w500/nEufeZlyAOLqO2brrs0yeF1lgXO.jpg",
		Description: "A fictitious story about two legendary revolutionaries.",
		Price:       240,
	},
	{
		ID: 6, Title: "Kantara", Genre: []string{"Action", "Thriller"},
		Language: "Kannada", Rating: "UA", Duration: "2h 28m",
		Poster:      "https://image.tmdb.org/t/p/w500/aC4q55BStG1bMPVYzpIWlUjdHXM.jpg",
		Description: "A conflict between villagers and the forces of nature.",
		Price:       200,
	},
	{
		ID: 7, Title: "12th Fail", Genre: []string{"Drama"},
		Language: "Hindi", Rating: "U", Duration: "2h 27m",
		Poster:      "https://image.tmdb.org/t/p/w500/sXZMOULcMnzF1wnDGYoDKaSmFFb.jpg",
		Description: "The real-life struggle of aspirants who dare to restart.",
		Price:       180,
	},
	{
		ID: 8, Title: "Manjummel Boys", Genre: []string{"Thriller", "Drama"},
		Language: "Malayalam", Rating: "UA", Duration: "2h 15m",
		Poster:      "https://image.tmdb.org/t/p/w500/kJb22Ye1M4fj0bXTPWuHikLqHAr.jpg",
		Description: "A group of friends on a trip that turns into a rescue mission.",
		Price:       190,
	},
}

// LocalMovies returns a copy of the bundled catalog so callers cannot
// mutate the seed data.
func LocalMovies() []model.Movie {
	out := make([]model.Movie, len(localMovies))
	copy(out, localMovies)
	return out
}
