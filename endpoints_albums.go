package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// AlbumRequest fetches a single album from the catalog.
type AlbumRequest struct {
	c      *Client
	id     string
	market string
}

// Album begins a request for the album with the given id.
func (c *Client) Album(id string) *AlbumRequest {
	return &AlbumRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market
// (an ISO 3166-1 alpha-2 country code).
func (r *AlbumRequest) Market(market string) *AlbumRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *AlbumRequest) Get(ctx context.Context) (*model.Album, error) {
	spec := newSpec(http.MethodGet, "/albums/"+r.id)
	spec.set("market", r.market)
	album, err := dispatch[model.Album](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// AlbumsRequest fetches several albums at once.
type AlbumsRequest struct {
	c      *Client
	ids    []string
	market string
}

// Albums begins a request for the albums with the given ids.
func (c *Client) Albums(ids ...string) *AlbumsRequest {
	return &AlbumsRequest{c: c, ids: ids}
}

// Market restricts the response to content playable in the given market.
func (r *AlbumsRequest) Market(market string) *AlbumsRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *AlbumsRequest) Get(ctx context.Context) ([]model.Album, error) {
	spec := newSpec(http.MethodGet, "/albums")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	albums, err := dispatch[model.Albums](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return albums.Albums, nil
}

// AlbumTracksRequest fetches an album's tracks page by page.
type AlbumTracksRequest struct {
	c      *Client
	id     string
	market string
	limit  *Bounded
	offset *int
}

// AlbumTracks begins a request for the tracks of the given album.
func (c *Client) AlbumTracks(albumID string) *AlbumTracksRequest {
	return &AlbumTracksRequest{c: c, id: albumID}
}

// Market restricts the response to content playable in the given market.
func (r *AlbumTracksRequest) Market(market string) *AlbumTracksRequest {
	r.market = market
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *AlbumTracksRequest) Limit(n int) *AlbumTracksRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first track to return.
func (r *AlbumTracksRequest) Offset(n int) *AlbumTracksRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *AlbumTracksRequest) Get(ctx context.Context) (*model.Page[model.SimpleTrack], error) {
	spec := newSpec(http.MethodGet, "/albums/"+r.id+"/tracks")
	spec.set("market", r.market)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[model.SimpleTrack]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// NewReleasesRequest lists newly released albums.
type NewReleasesRequest struct {
	c      *Client
	limit  *Bounded
	offset *int
}

// NewReleases begins a request for new album releases.
func (c *Client) NewReleases() *NewReleasesRequest {
	return &NewReleasesRequest{c: c}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *NewReleasesRequest) Limit(n int) *NewReleasesRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first album to return.
func (r *NewReleasesRequest) Offset(n int) *NewReleasesRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *NewReleasesRequest) Get(ctx context.Context) (*model.Page[model.SimpleAlbum], error) {
	spec := newSpec(http.MethodGet, "/browse/new-releases")
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	releases, err := dispatch[model.NewReleases](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &releases.Albums, nil
}
