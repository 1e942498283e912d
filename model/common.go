package model

// Page is the offset-based paging container wrapped around list results.
type Page[T any] struct {
	Href     string `json:"href"`
	Items    []T    `json:"items"`
	Limit    int    `json:"limit"`
	Next     string `json:"next"`
	Offset   int    `json:"offset"`
	Previous string `json:"previous"`
	Total    int    `json:"total"`
}

// CursorPage is the cursor-based paging container used by the follow and
// listening-history endpoints.
type CursorPage[T any] struct {
	Href    string  `json:"href"`
	Items   []T     `json:"items"`
	Limit   int     `json:"limit"`
	Next    string  `json:"next"`
	Cursors Cursors `json:"cursors"`
	Total   int     `json:"total"`
}

// Cursors point at the neighbours of a CursorPage.
type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

// Image is a cover image in one of the sizes the API offers.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers carries a follower count. The href field is always null in the
// current API and omitted here.
type Followers struct {
	Total int `json:"total"`
}

// ExternalURLs maps a platform key, usually "spotify", to a canonical URL.
type ExternalURLs map[string]string

// ExternalIDs holds known external identifiers of a track or album.
type ExternalIDs struct {
	ISRC string `json:"isrc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	UPC  string `json:"upc,omitempty"`
}

// Copyright is one copyright statement of an album or show.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Restrictions explains why content is unavailable in the request market.
type Restrictions struct {
	Reason string `json:"reason"`
}

// ResumePoint is the user's position in an episode or audiobook chapter.
type ResumePoint struct {
	FullyPlayed      bool `json:"fully_played"`
	ResumePositionMs int  `json:"resume_position_ms"`
}

// Snapshot identifies a playlist revision after a mutating call.
type Snapshot struct {
	SnapshotID string `json:"snapshot_id"`
}

// Markets is the envelope of the available-markets endpoint.
type Markets struct {
	Markets []string `json:"markets"`
}

// Genres is the envelope of the available-genre-seeds endpoint.
type Genres struct {
	Genres []string `json:"genres"`
}
