package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/primeticket/primeticket-api/internal/model"
)

// genreNames maps upstream numeric genre codes to display names.
// Unknown codes fall back to "Drama"; fallback, not error, is the
// policy for every mapping in this file.
var genreNames = map[int]string{
	28: "Action", 12: "Adventure", 16: "Animation", 35: "Comedy",
	80: "Crime", 99: "Documentary", 18: "Drama", 10751: "Family",
	14: "Fantasy", 36: "History", 27: "Horror", 10402: "Music",
	9648: "Mystery", 10749: "Romance", 878: "Sci-Fi", 10770: "TV Movie",
	53: "Thriller", 10752: "War", 37: "Western",
}

// languageNames maps ISO 639-1 codes to display names. Unknown codes
// fall back to "English".
var languageNames = map[string]string{
	"en": "English", "hi": "Hindi", "ta": "Tamil", "te": "Telugu",
	"ml": "Malayalam", "kn": "Kannada", "es": "Spanish", "fr": "French",
	"de": "German", "ja": "Japanese", "ko": "Korean", "zh": "Chinese",
}

const (
	defaultGenre    = "Drama"
	defaultLanguage = "English"
	defaultRuntime  = 120
)

func genreName(code int) string {
	if name, ok := genreNames[code]; ok {
		return name
	}
	return defaultGenre
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return defaultLanguage
}

// formatRuntime renders minutes as "<H>h <M>m".
func formatRuntime(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// placeholderImage builds a placehold.co URL for records missing art.
func placeholderImage(size, text string) string {
	return "https://placehold.co/" + size + "?text=" + url.QueryEscape(text)
}

// convertMovie maps one raw upstream listing entry plus its detail
// into the application record shape. Every missing upstream field
// degrades to a stand-in value rather than failing the conversion.
func convertMovie(raw RawMovie, detail Detail, id int, imageBase, backdropBase string) model.Movie {
	title := raw.Title
	if title == "" {
		title = raw.OriginalTitle
	}

	genres := []string{defaultGenre}
	if len(raw.GenreIDs) > 0 {
		genres = genres[:0]
		for _, code := range raw.GenreIDs {
			genres = append(genres, genreName(code))
			if len(genres) == 2 {
				break
			}
		}
	}

	rating := "UA"
	if raw.Adult {
		rating = "A"
	}

	poster := placeholderImage("300x450", title)
	if raw.PosterPath != "" {
		poster = imageBase + raw.PosterPath
	}
	backdrop := ""
	if raw.BackdropPath != "" {
		backdrop = backdropBase + raw.BackdropPath
	}

	description := raw.Overview
	if description == "" {
		description = "No description available."
	}

	cast := detail.Cast
	if len(cast) == 0 {
		cast = []model.CastMember{{Name: "Cast Member", Image: placeholderImage("100x100", "Cast")}}
	}

	return model.Movie{
		ID:              id,
		Title:           title,
		Genre:           genres,
		Language:        languageName(strings.ToLower(raw.OriginalLanguage)),
		Rating:          rating,
		Duration:        formatRuntime(detail.Runtime),
		Poster:          poster,
		BackgroundImage: backdrop,
		Trailer:         detail.Trailer,
		Description:     description,
		Cast:            cast,
	}
}
