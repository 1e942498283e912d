package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// Me fetches the profile of the user the client is authorized as.
func (u *UserClient) Me(ctx context.Context) (*model.User, error) {
	spec := newSpec(http.MethodGet, "/me")
	me, err := dispatch[model.User](ctx, &u.Client, spec)
	if err != nil {
		return nil, err
	}
	return &me, nil
}

// TimeRange selects the window over which the user's top items are
// computed.
type TimeRange string

const (
	ShortTerm  TimeRange = "short_term"  // roughly the last four weeks
	MediumTerm TimeRange = "medium_term" // roughly the last six months
	LongTerm   TimeRange = "long_term"   // several years of listening
)

// TopItemsRequest lists the user's most listened artists or tracks.
type TopItemsRequest[T any] struct {
	c         *Client
	path      string
	timeRange TimeRange
	limit     *Bounded
	offset    *int
}

// TopArtists begins a request for the user's top artists.
func (u *UserClient) TopArtists() *TopItemsRequest[model.Artist] {
	return &TopItemsRequest[model.Artist]{c: &u.Client, path: "/me/top/artists"}
}

// TopTracks begins a request for the user's top tracks.
func (u *UserClient) TopTracks() *TopItemsRequest[model.Track] {
	return &TopItemsRequest[model.Track]{c: &u.Client, path: "/me/top/tracks"}
}

// TimeRange sets the window the ranking is computed over.
func (r *TopItemsRequest[T]) TimeRange(tr TimeRange) *TopItemsRequest[T] {
	r.timeRange = tr
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *TopItemsRequest[T]) Limit(n int) *TopItemsRequest[T] {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first item to return.
func (r *TopItemsRequest[T]) Offset(n int) *TopItemsRequest[T] {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *TopItemsRequest[T]) Get(ctx context.Context) (*model.Page[T], error) {
	spec := newSpec(http.MethodGet, r.path)
	spec.set("time_range", string(r.timeRange))
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[T]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// CurrentUserPlaylistsRequest lists the playlists the user owns or follows.
type CurrentUserPlaylistsRequest struct {
	c      *Client
	limit  *Bounded
	offset *int
}

// CurrentUserPlaylists begins a request for the user's playlists.
func (u *UserClient) CurrentUserPlaylists() *CurrentUserPlaylistsRequest {
	return &CurrentUserPlaylistsRequest{c: &u.Client}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *CurrentUserPlaylistsRequest) Limit(n int) *CurrentUserPlaylistsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first playlist to return.
func (r *CurrentUserPlaylistsRequest) Offset(n int) *CurrentUserPlaylistsRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *CurrentUserPlaylistsRequest) Get(ctx context.Context) (*model.Page[model.SimplePlaylist], error) {
	spec := newSpec(http.MethodGet, "/me/playlists")
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[model.SimplePlaylist]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// FollowPlaylistRequest makes the user follow a playlist.
type FollowPlaylistRequest struct {
	c      *Client
	id     string
	public *bool
}

// FollowPlaylist begins a follow of the given playlist.
func (u *UserClient) FollowPlaylist(playlistID string) *FollowPlaylistRequest {
	return &FollowPlaylistRequest{c: &u.Client, id: playlistID}
}

// Public sets whether the follow shows on the user's public profile; the
// API defaults to true.
func (r *FollowPlaylistRequest) Public(public bool) *FollowPlaylistRequest {
	r.public = &public
	return r
}

// Do executes the follow.
func (r *FollowPlaylistRequest) Do(ctx context.Context) error {
	spec := newSpec(http.MethodPut, "/playlists/"+r.id+"/followers")
	if r.public != nil {
		spec.body = map[string]any{"public": *r.public}
	}
	return dispatchNil(ctx, r.c, spec)
}

// UnfollowPlaylist makes the user unfollow the given playlist.
func (u *UserClient) UnfollowPlaylist(ctx context.Context, playlistID string) error {
	spec := newSpec(http.MethodDelete, "/playlists/"+playlistID+"/followers")
	return dispatchNil(ctx, &u.Client, spec)
}

// FollowedArtistsRequest lists the artists the user follows, paged by
// cursor.
type FollowedArtistsRequest struct {
	c     *Client
	after string
	limit *Bounded
}

// FollowedArtists begins a request for the artists the user follows.
func (u *UserClient) FollowedArtists() *FollowedArtistsRequest {
	return &FollowedArtistsRequest{c: &u.Client}
}

// After resumes the listing from the given artist id cursor.
func (r *FollowedArtistsRequest) After(id string) *FollowedArtistsRequest {
	r.after = id
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *FollowedArtistsRequest) Limit(n int) *FollowedArtistsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Get executes the request.
func (r *FollowedArtistsRequest) Get(ctx context.Context) (*model.CursorPage[model.Artist], error) {
	spec := newSpec(http.MethodGet, "/me/following")
	spec.set("type", "artist")
	spec.set("after", r.after)
	spec.setBounded("limit", r.limit)
	followed, err := dispatch[model.FollowedArtists](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &followed.Artists, nil
}

// FollowArtists makes the user follow the given artists.
func (u *UserClient) FollowArtists(ctx context.Context, ids ...string) error {
	return u.setFollowing(ctx, http.MethodPut, "artist", ids)
}

// UnfollowArtists makes the user unfollow the given artists.
func (u *UserClient) UnfollowArtists(ctx context.Context, ids ...string) error {
	return u.setFollowing(ctx, http.MethodDelete, "artist", ids)
}

// FollowUsers makes the user follow the given users.
func (u *UserClient) FollowUsers(ctx context.Context, ids ...string) error {
	return u.setFollowing(ctx, http.MethodPut, "user", ids)
}

// UnfollowUsers makes the user unfollow the given users.
func (u *UserClient) UnfollowUsers(ctx context.Context, ids ...string) error {
	return u.setFollowing(ctx, http.MethodDelete, "user", ids)
}

func (u *UserClient) setFollowing(ctx context.Context, method, kind string, ids []string) error {
	spec := newSpec(method, "/me/following")
	spec.set("type", kind)
	spec.body = map[string]any{"ids": ids}
	return dispatchNil(ctx, &u.Client, spec)
}

// CheckFollowsArtists reports, per given id, whether the user follows the
// artist.
func (u *UserClient) CheckFollowsArtists(ctx context.Context, ids ...string) ([]bool, error) {
	return u.checkFollowing(ctx, "artist", ids)
}

// CheckFollowsUsers reports, per given id, whether the user follows the
// user.
func (u *UserClient) CheckFollowsUsers(ctx context.Context, ids ...string) ([]bool, error) {
	return u.checkFollowing(ctx, "user", ids)
}

func (u *UserClient) checkFollowing(ctx context.Context, kind string, ids []string) ([]bool, error) {
	spec := newSpec(http.MethodGet, "/me/following/contains")
	spec.set("type", kind)
	spec.set("ids", joinIDs(ids))
	return dispatch[[]bool](ctx, &u.Client, spec)
}
