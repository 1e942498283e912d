package model

// SimpleShow is the simplified show object.
type SimpleShow struct {
	AvailableMarkets   []string     `json:"available_markets"`
	Copyrights         []Copyright  `json:"copyrights"`
	Description        string       `json:"description"`
	HTMLDescription    string       `json:"html_description"`
	Explicit           bool         `json:"explicit"`
	ExternalURLs       ExternalURLs `json:"external_urls"`
	Href               string       `json:"href"`
	ID                 string       `json:"id"`
	Images             []Image      `json:"images"`
	IsExternallyHosted bool         `json:"is_externally_hosted"`
	Languages          []string     `json:"languages"`
	MediaType          string       `json:"media_type"`
	Name               string       `json:"name"`
	Publisher          string       `json:"publisher"`
	TotalEpisodes      int          `json:"total_episodes"`
	Type               string       `json:"type"`
	URI                string       `json:"uri"`
}

// Show is the full show object.
type Show struct {
	SimpleShow

	Episodes Page[SimpleEpisode] `json:"episodes"`
}

// Shows is the envelope of the several-shows endpoint.
type Shows struct {
	Shows []SimpleShow `json:"shows"`
}

// SavedShow is a show in the user's library.
type SavedShow struct {
	AddedAt string     `json:"added_at"`
	Show    SimpleShow `json:"show"`
}

// SimpleEpisode is the simplified episode object embedded in shows.
type SimpleEpisode struct {
	Description          string        `json:"description"`
	HTMLDescription      string        `json:"html_description"`
	DurationMs           int           `json:"duration_ms"`
	Explicit             bool          `json:"explicit"`
	ExternalURLs         ExternalURLs  `json:"external_urls"`
	Href                 string        `json:"href"`
	ID                   string        `json:"id"`
	Images               []Image       `json:"images"`
	IsExternallyHosted   bool          `json:"is_externally_hosted"`
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

// Episode is the full episode object.
type Episode struct {
	SimpleEpisode

	Show SimpleShow `json:"show"`
}

// Episodes is the envelope of the several-episodes endpoint.
type Episodes struct {
	Episodes []Episode `json:"episodes"`
}

// SavedEpisode is an episode in the user's library.
type SavedEpisode struct {
	AddedAt string  `json:"added_at"`
	Episode Episode `json:"episode"`
}
