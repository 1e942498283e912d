package model

// Author is an audiobook author name.
type Author struct {
	Name string `json:"name"`
}

// Narrator is an audiobook narrator name.
type Narrator struct {
	Name string `json:"name"`
}

// SimpleAudiobook is the simplified audiobook object.
type SimpleAudiobook struct {
	Authors          []Author     `json:"authors"`
	AvailableMarkets []string     `json:"available_markets"`
	Copyrights       []Copyright  `json:"copyrights"`
	Description      string       `json:"description"`
	HTMLDescription  string       `json:"html_description"`
	Edition          string       `json:"edition"`
	Explicit         bool         `json:"explicit"`
	ExternalURLs     ExternalURLs `json:"external_urls"`
	Href             string       `json:"href"`
	ID               string       `json:"id"`
	Images           []Image      `json:"images"`
	Languages        []string     `json:"languages"`
	MediaType        string       `json:"media_type"`
	Name             string       `json:"name"`
	Narrators        []Narrator   `json:"narrators"`
	Publisher        string       `json:"publisher"`
	TotalChapters    int          `json:"total_chapters"`
	Type             string       `json:"type"`
	URI              string       `json:"uri"`
}

// Audiobook is the full audiobook object.
type Audiobook struct {
	SimpleAudiobook

	Chapters Page[SimpleChapter] `json:"chapters"`
}

// Audiobooks is the envelope of the several-audiobooks endpoint.
type Audiobooks struct {
	Audiobooks []Audiobook `json:"audiobooks"`
}

// SavedAudiobook is an audiobook in the user's library.
type SavedAudiobook struct {
	AddedAt   string          `json:"added_at"`
	Audiobook SimpleAudiobook `json:"audiobook"`
}

// SimpleChapter is the simplified chapter object embedded in audiobooks.
type SimpleChapter struct {
	AvailableMarkets     []string      `json:"available_markets"`
	ChapterNumber        int           `json:"chapter_number"`
	Description          string        `json:"description"`
	HTMLDescription      string        `json:"html_description"`
	DurationMs           int           `json:"duration_ms"`
	Explicit             bool          `json:"explicit"`
	ExternalURLs         ExternalURLs  `json:"external_urls"`
	Href                 string        `json:"href"`
	ID                   string        `json:"id"`
	Images               []Image       `json:"images"`
	IsPlayable           bool          `json:"is_playable"`
	Languages            []string      `json:"languages"`
	Name                 string        `json:"name"`
	ReleaseDate          string        `json:"release_date"`
	ReleaseDatePrecision string        `json:"release_date_precision"`
	ResumePoint          *ResumePoint  `json:"resume_point,omitempty"`
	Restrictions         *Restrictions `json:"restrictions,omitempty"`
	Type                 string        `json:"type"`
	URI                  string        `json:"uri"`
}

// Chapter is the full chapter object.
type Chapter struct {
	SimpleChapter

	Audiobook SimpleAudiobook `json:"audiobook"`
}

// Chapters is the envelope of the several-chapters endpoint.
type Chapters struct {
	Chapters []Chapter `json:"chapters"`
}
