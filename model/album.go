package model

// SimpleAlbum is the simplified album object embedded in tracks, search
// results and new releases.
type SimpleAlbum struct {
	AlbumType            string        `json:"album_type"`
	TotalTracks          int           `json:"total_tracks"`
	AvailableMarkets     []string      `json:"available_markets"`
	ExternalURLs         ExternalURLs  `json:"external_urls"`
	Href                 string        `json:"href"`
	ID                   string        `json:"id"`
	Images               []Image       `json:"images"`
	Name                 string        `json:"name"`
	ReleaseDate          string        `json:"release_date"`
	ReleaseDatePrecision string        `json:"release_date_precision"`
	Restrictions         *Restrictions `json:"restrictions,omitempty"`
	Type                 string        `json:"type"`
	URI                  string        `json:"uri"`
	Artists              []Artist      `json:"artists"`
}

// Album is the full album object.
type Album struct {
	SimpleAlbum

	Tracks      Page[SimpleTrack] `json:"tracks"`
	Copyrights  []Copyright       `json:"copyrights"`
	ExternalIDs ExternalIDs       `json:"external_ids"`
	Genres      []string          `json:"genres"`
	Label       string            `json:"label"`
	Popularity  int               `json:"popularity"`
}

// Albums is the envelope of the several-albums endpoint.
type Albums struct {
	Albums []Album `json:"albums"`
}

// SavedAlbum is an album in the user's library.
type SavedAlbum struct {
	AddedAt string `json:"added_at"`
	Album   Album  `json:"album"`
}

// NewReleases is the envelope of the new-releases endpoint.
type NewReleases struct {
	Albums Page[SimpleAlbum] `json:"albums"`
}
