package model

// SimplePlaylist is the simplified playlist object used in listings.
type SimplePlaylist struct {
	Collaborative bool         `json:"collaborative"`
	Description   string       `json:"description"`
	ExternalURLs  ExternalURLs `json:"external_urls"`
	Href          string       `json:"href"`
	ID            string       `json:"id"`
	Images        []Image      `json:"images"`
	Name          string       `json:"name"`
	Owner         PublicUser   `json:"owner"`
	Public        bool         `json:"public"`
	SnapshotID    string       `json:"snapshot_id"`
	Tracks        TracksRef    `json:"tracks"`
	Type          string       `json:"type"`
	URI           string       `json:"uri"`
}

// TracksRef is the track-count stub embedded in simplified playlists.
type TracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// Playlist is the full playlist object, items included.
type Playlist struct {
	Collaborative bool               `json:"collaborative"`
	Description   string             `json:"description"`
	ExternalURLs  ExternalURLs       `json:"external_urls"`
	Followers     Followers          `json:"followers"`
	Href          string             `json:"href"`
	ID            string             `json:"id"`
	Images        []Image            `json:"images"`
	Name          string             `json:"name"`
	Owner         PublicUser         `json:"owner"`
	Public        bool               `json:"public"`
	SnapshotID    string             `json:"snapshot_id"`
	Tracks        Page[PlaylistItem] `json:"tracks"`
	Type          string             `json:"type"`
	URI           string             `json:"uri"`
}

// PlaylistItem is one entry of a playlist.
type PlaylistItem struct {
	AddedAt string     `json:"added_at"`
	AddedBy PublicUser `json:"added_by"`
	IsLocal bool       `json:"is_local"`
	Track   Track      `json:"track"`
}

// FeaturedPlaylists is the envelope of the featured-playlists and
// category-playlists endpoints.
type FeaturedPlaylists struct {
	Message   string               `json:"message,omitempty"`
	Playlists Page[SimplePlaylist] `json:"playlists"`
}
