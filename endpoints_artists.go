package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// Artist fetches a single artist.
func (c *Client) Artist(ctx context.Context, id string) (*model.Artist, error) {
	spec := newSpec(http.MethodGet, "/artists/"+id)
	artist, err := dispatch[model.Artist](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// Artists fetches several artists at once.
func (c *Client) Artists(ctx context.Context, ids ...string) ([]model.Artist, error) {
	spec := newSpec(http.MethodGet, "/artists")
	spec.set("ids", joinIDs(ids))
	artists, err := dispatch[model.Artists](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return artists.Artists, nil
}

// AlbumGroup filters an artist's discography by the artist's relationship
// to the album.
type AlbumGroup string

const (
	GroupAlbum       AlbumGroup = "album"
	GroupSingle      AlbumGroup = "single"
	GroupAppearsOn   AlbumGroup = "appears_on"
	GroupCompilation AlbumGroup = "compilation"
)

// ArtistAlbumsRequest fetches an artist's discography page by page.
type ArtistAlbumsRequest struct {
	c      *Client
	id     string
	groups []AlbumGroup
	market string
	limit  *Bounded
	offset *int
}

// ArtistAlbums begins a request for the albums of the given artist.
func (c *Client) ArtistAlbums(artistID string) *ArtistAlbumsRequest {
	return &ArtistAlbumsRequest{c: c, id: artistID}
}

// IncludeGroups restricts the listing to the given album groups; the API
// defaults to all of them.
func (r *ArtistAlbumsRequest) IncludeGroups(groups ...AlbumGroup) *ArtistAlbumsRequest {
	r.groups = groups
	return r
}

// Market restricts the response to content playable in the given market.
func (r *ArtistAlbumsRequest) Market(market string) *ArtistAlbumsRequest {
	r.market = market
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *ArtistAlbumsRequest) Limit(n int) *ArtistAlbumsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first album to return.
func (r *ArtistAlbumsRequest) Offset(n int) *ArtistAlbumsRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *ArtistAlbumsRequest) Get(ctx context.Context) (*model.Page[model.SimpleAlbum], error) {
	spec := newSpec(http.MethodGet, "/artists/"+r.id+"/albums")
	if len(r.groups) > 0 {
		groups := make([]string, len(r.groups))
		for i, g := range r.groups {
			groups[i] = string(g)
		}
		spec.set("include_groups", joinIDs(groups))
	}
	spec.set("market", r.market)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[model.SimpleAlbum]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ArtistTopTracks fetches an artist's top tracks in the given market.
func (c *Client) ArtistTopTracks(ctx context.Context, artistID, market string) ([]model.Track, error) {
	spec := newSpec(http.MethodGet, "/artists/"+artistID+"/top-tracks")
	spec.set("market", market)
	tracks, err := dispatch[model.Tracks](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return tracks.Tracks, nil
}

// RelatedArtists fetches artists similar to the given one, as computed from
// listening history.
func (c *Client) RelatedArtists(ctx context.Context, artistID string) ([]model.Artist, error) {
	spec := newSpec(http.MethodGet, "/artists/"+artistID+"/related-artists")
	artists, err := dispatch[model.Artists](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return artists.Artists, nil
}
