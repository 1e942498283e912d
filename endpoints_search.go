package melodine

import (
	"context"
	"net/http"
	"strings"

	"github.com/melodine/melodine/model"
)

// SearchType selects which catalog item types a search covers.
type SearchType string

// Searchable item types.
const (
	SearchAlbum     SearchType = "album"
	SearchArtist    SearchType = "artist"
	SearchPlaylist  SearchType = "playlist"
	SearchTrack     SearchType = "track"
	SearchShow      SearchType = "show"
	SearchEpisode   SearchType = "episode"
	SearchAudiobook SearchType = "audiobook"
)

// SearchRequest queries the catalog across one or more item types.
type SearchRequest struct {
	c      *Client
	query  string
	types  []SearchType
	market string
	limit  *Bounded
	offset *int
}

// Search begins a catalog search for the given query across the given item
// types. The query supports the field filters documented by Spotify, e.g.
// "artist:Boards of Canada year:1998".
func (c *Client) Search(query string, types ...SearchType) *SearchRequest {
	return &SearchRequest{c: c, query: query, types: types}
}

// Market restricts the response to content playable in the given market.
func (r *SearchRequest) Market(market string) *SearchRequest {
	r.market = market
	return r
}

// Limit sets the page size per item type, clamped to [MinLimit, MaxLimit].
func (r *SearchRequest) Limit(n int) *SearchRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first result per item type.
func (r *SearchRequest) Offset(n int) *SearchRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *SearchRequest) Get(ctx context.Context) (*model.SearchResult, error) {
	types := make([]string, len(r.types))
	for i, t := range r.types {
		types[i] = string(t)
	}

	spec := newSpec(http.MethodGet, "/search")
	spec.set("q", r.query)
	spec.set("type", strings.Join(types, ","))
	spec.set("market", r.market)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	result, err := dispatch[model.SearchResult](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
