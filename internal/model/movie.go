package model

// Movie is the application's movie record. Records come from two
// sources: the bundled local catalog and the remote catalog service.
// Ids are only unique per source, so each source writes into its own
// id band: local records stay below 100, paginated remote records
// start at 100 and search-only lightweight records are offset by
// 10000 to avoid colliding with either.
//
// Fields:
//  ID              – listing-unique identifier (see id bands above).
//  Title           – display title.
//  Genre           – ordered genre names; display shows the first one or two.
//  Language        – display language name (mapped from ISO codes).
//  Rating          – certification token ("A", "UA", ...).
//  Duration        – formatted "<H>h <M>m" runtime.
//  Poster          – poster image URL (placeholder when missing).
//  BackgroundImage – backdrop URL, empty when the source has none.
//  Trailer         – embeddable trailer URL, empty when none found.
//  Description     – synopsis text.
//  Cast            – up to three top-billed cast members.
//  Price           – ticket price; zero means "use the default".
type Movie struct {
	ID              int          `json:"id"`
	Title           string       `json:"title"`
	Genre           []string     `json:"genre"`
	Language        string       `json:"language"`
	Rating          string       `json:"rating"`
	Duration        string       `json:"duration"`
	Poster          string       `json:"poster"`
	BackgroundImage string       `json:"backgroundImage,omitempty"`
	Trailer         string       `json:"trailer,omitempty"`
	Description     string       `json:"description"`
	Cast            []CastMember `json:"cast,omitempty"`
	Price           int          `json:"price,omitempty"`
}

// CastMember is one top-billed actor on a movie record.
type CastMember struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// SearchResult is the lightweight record returned by title search.
// It skips the per-movie detail lookups so search stays fast; the id
// carries the 10000 search offset and RemoteID keeps the upstream id
// so the full record can be fetched later.
type SearchResult struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Poster   string `json:"poster"`
	Rating   string `json:"rating"`
	Year     string `json:"year"`
	Remote   bool   `json:"remote"`
	RemoteID int    `json:"remoteId"`
}

// SearchIDOffset is the id band reserved for search results. A movie
// id at or above this value is a remote id plus the offset.
const SearchIDOffset = 10000

// RemoteIDStart is the first id assigned to paginated remote records.
const RemoteIDStart = 100
