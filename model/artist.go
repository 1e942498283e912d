package model

// Artist is the artist object. The API embeds a reduced form in albums and
// tracks; the extra fields are simply absent there.
type Artist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers,omitempty"`
	Genres       []string     `json:"genres,omitempty"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images,omitempty"`
	Name         string       `json:"name"`
	Popularity   int          `json:"popularity,omitempty"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// Artists is the envelope of the several-artists endpoint.
type Artists struct {
	Artists []Artist `json:"artists"`
}

// FollowedArtists is the envelope of the followed-artists endpoint.
type FollowedArtists struct {
	Artists CursorPage[Artist] `json:"artists"`
}
