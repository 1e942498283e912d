package model

// SearchResult bundles the per-type pages of a search. Only the pages
// matching the requested item types are present.
type SearchResult struct {
	Tracks     *Page[Track]           `json:"tracks,omitempty"`
	Artists    *Page[Artist]          `json:"artists,omitempty"`
	Albums     *Page[SimpleAlbum]     `json:"albums,omitempty"`
	Playlists  *Page[SimplePlaylist]  `json:"playlists,omitempty"`
	Shows      *Page[SimpleShow]      `json:"shows,omitempty"`
	Episodes   *Page[SimpleEpisode]   `json:"episodes,omitempty"`
	Audiobooks *Page[SimpleAudiobook] `json:"audiobooks,omitempty"`
}
