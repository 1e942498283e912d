package melodine

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/melodine/melodine/model"
)

// PlaylistRequest fetches a single playlist.
type PlaylistRequest struct {
	c      *Client
	id     string
	market string
	fields string
}

// Playlist begins a request for the playlist with the given id.
func (c *Client) Playlist(id string) *PlaylistRequest {
	return &PlaylistRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market.
func (r *PlaylistRequest) Market(market string) *PlaylistRequest {
	r.market = market
	return r
}

// Fields filters the response to the given fields, using Spotify's fields
// syntax, e.g. "items(added_at,track(name,href))".
func (r *PlaylistRequest) Fields(fields string) *PlaylistRequest {
	r.fields = fields
	return r
}

// Get executes the request.
func (r *PlaylistRequest) Get(ctx context.Context) (*model.Playlist, error) {
	spec := newSpec(http.MethodGet, "/playlists/"+r.id)
	spec.set("market", r.market)
	spec.set("fields", r.fields)
	playlist, err := dispatch[model.Playlist](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// PlaylistItemsRequest fetches a playlist's items page by page.
type PlaylistItemsRequest struct {
	c      *Client
	id     string
	market string
	fields string
	limit  *Bounded
	offset *int
}

// PlaylistItems begins a request for the items of the given playlist.
func (c *Client) PlaylistItems(playlistID string) *PlaylistItemsRequest {
	return &PlaylistItemsRequest{c: c, id: playlistID}
}

// Market restricts the response to content playable in the given market.
func (r *PlaylistItemsRequest) Market(market string) *PlaylistItemsRequest {
	r.market = market
	return r
}

// Fields filters the response to the given fields.
func (r *PlaylistItemsRequest) Fields(fields string) *PlaylistItemsRequest {
	r.fields = fields
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *PlaylistItemsRequest) Limit(n int) *PlaylistItemsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first item to return.
func (r *PlaylistItemsRequest) Offset(n int) *PlaylistItemsRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *PlaylistItemsRequest) Get(ctx context.Context) (*model.Page[model.PlaylistItem], error) {
	spec := newSpec(http.MethodGet, "/playlists/"+r.id+"/tracks")
	spec.set("market", r.market)
	spec.set("fields", r.fields)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[model.PlaylistItem]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ChangePlaylistDetailsRequest updates a playlist's name, description or
// visibility.
type ChangePlaylistDetailsRequest struct {
	c             *Client
	id            string
	name          *string
	public        *bool
	collaborative *bool
	description   *string
}

// ChangePlaylistDetails begins an update of the given playlist's details.
// Only the fields explicitly set are sent.
func (u *UserClient) ChangePlaylistDetails(playlistID string) *ChangePlaylistDetailsRequest {
	return &ChangePlaylistDetailsRequest{c: &u.Client, id: playlistID}
}

// Name renames the playlist.
func (r *ChangePlaylistDetailsRequest) Name(name string) *ChangePlaylistDetailsRequest {
	r.name = &name
	return r
}

// Public sets whether the playlist appears on the owner's public profile.
func (r *ChangePlaylistDetailsRequest) Public(public bool) *ChangePlaylistDetailsRequest {
	r.public = &public
	return r
}

// Collaborative sets whether other users may modify the playlist.
func (r *ChangePlaylistDetailsRequest) Collaborative(collaborative bool) *ChangePlaylistDetailsRequest {
	r.collaborative = &collaborative
	return r
}

// Description sets the playlist description.
func (r *ChangePlaylistDetailsRequest) Description(description string) *ChangePlaylistDetailsRequest {
	r.description = &description
	return r
}

// Do executes the update.
func (r *ChangePlaylistDetailsRequest) Do(ctx context.Context) error {
	spec := newSpec(http.MethodPut, "/playlists/"+r.id)
	spec.body = map[string]any{}
	body := spec.body.(map[string]any)
	if r.name != nil {
		body["name"] = *r.name
	}
	if r.public != nil {
		body["public"] = *r.public
	}
	if r.collaborative != nil {
		body["collaborative"] = *r.collaborative
	}
	if r.description != nil {
		body["description"] = *r.description
	}
	return dispatchNil(ctx, r.c, spec)
}

// UpdatePlaylistItemsRequest reorders a range of playlist items.
type UpdatePlaylistItemsRequest struct {
	c            *Client
	id           string
	rangeStart   int
	insertBefore int
	rangeLength  *int
	snapshotID   string
}

// UpdatePlaylistItems begins a reorder of the given playlist: the items
// starting at rangeStart are moved before position insertBefore.
func (u *UserClient) UpdatePlaylistItems(playlistID string, rangeStart, insertBefore int) *UpdatePlaylistItemsRequest {
	return &UpdatePlaylistItemsRequest{c: &u.Client, id: playlistID, rangeStart: rangeStart, insertBefore: insertBefore}
}

// RangeLength sets how many items to move; the API defaults to one.
func (r *UpdatePlaylistItemsRequest) RangeLength(n int) *UpdatePlaylistItemsRequest {
	r.rangeLength = &n
	return r
}

// SnapshotID pins the reorder against a known playlist revision.
func (r *UpdatePlaylistItemsRequest) SnapshotID(id string) *UpdatePlaylistItemsRequest {
	r.snapshotID = id
	return r
}

// Do executes the reorder and returns the new snapshot.
func (r *UpdatePlaylistItemsRequest) Do(ctx context.Context) (*model.Snapshot, error) {
	body := map[string]any{
		"range_start":   r.rangeStart,
		"insert_before": r.insertBefore,
	}
	if r.rangeLength != nil {
		body["range_length"] = *r.rangeLength
	}
	if r.snapshotID != "" {
		body["snapshot_id"] = r.snapshotID
	}

	spec := newSpec(http.MethodPut, "/playlists/"+r.id+"/tracks")
	spec.body = body
	snapshot, err := dispatch[model.Snapshot](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// AddPlaylistItemsRequest appends items to a playlist.
type AddPlaylistItemsRequest struct {
	c        *Client
	id       string
	uris     []string
	position *int
}

// AddPlaylistItems begins an append of the given item URIs to a playlist.
func (u *UserClient) AddPlaylistItems(playlistID string, uris ...string) *AddPlaylistItemsRequest {
	return &AddPlaylistItemsRequest{c: &u.Client, id: playlistID, uris: uris}
}

// Position inserts the items at the given index instead of appending.
func (r *AddPlaylistItemsRequest) Position(n int) *AddPlaylistItemsRequest {
	r.position = &n
	return r
}

// Do executes the append and returns the new snapshot.
func (r *AddPlaylistItemsRequest) Do(ctx context.Context) (*model.Snapshot, error) {
	body := map[string]any{"uris": r.uris}
	if r.position != nil {
		body["position"] = *r.position
	}

	spec := newSpec(http.MethodPost, "/playlists/"+r.id+"/tracks")
	spec.body = body
	snapshot, err := dispatch[model.Snapshot](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// RemovePlaylistItems removes all occurrences of the given item URIs from a
// playlist and returns the new snapshot.
func (u *UserClient) RemovePlaylistItems(ctx context.Context, playlistID string, uris ...string) (*model.Snapshot, error) {
	tracks := make([]map[string]string, len(uris))
	for i, uri := range uris {
		tracks[i] = map[string]string{"uri": uri}
	}

	spec := newSpec(http.MethodDelete, "/playlists/"+playlistID+"/tracks")
	spec.body = map[string]any{"tracks": tracks}
	snapshot, err := dispatch[model.Snapshot](ctx, &u.Client, spec)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// UserPlaylistsRequest lists a user's public playlists.
type UserPlaylistsRequest struct {
	c      *Client
	userID string
	limit  *Bounded
	offset *int
}

// UserPlaylists begins a request for the given user's playlists.
func (c *Client) UserPlaylists(userID string) *UserPlaylistsRequest {
	return &UserPlaylistsRequest{c: c, userID: userID}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *UserPlaylistsRequest) Limit(n int) *UserPlaylistsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first playlist to return.
func (r *UserPlaylistsRequest) Offset(n int) *UserPlaylistsRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *UserPlaylistsRequest) Get(ctx context.Context) (*model.Page[model.SimplePlaylist], error) {
	spec := newSpec(http.MethodGet, "/users/"+r.userID+"/playlists")
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

// CreatePlaylistRequest creates a playlist and, optionally, fills it with
// an initial set of tracks in the same call chain.
type CreatePlaylistRequest struct {
	u           *UserClient
	userID      string
	name        string
	public      *bool
	collab      *bool
	description *string
	trackURIs   []string
}

// CreatePlaylist begins creation of a playlist owned by the given user.
func (u *UserClient) CreatePlaylist(userID, name string) *CreatePlaylistRequest {
	return &CreatePlaylistRequest{u: u, userID: userID, name: name}
}

// Public sets whether the playlist appears on the owner's public profile.
func (r *CreatePlaylistRequest) Public(public bool) *CreatePlaylistRequest {
	r.public = &public
	return r
}

// Collaborative sets whether other users may modify the playlist.
func (r *CreatePlaylistRequest) Collaborative(collaborative bool) *CreatePlaylistRequest {
	r.collab = &collaborative
	return r
}

// Description sets the playlist description.
func (r *CreatePlaylistRequest) Description(description string) *CreatePlaylistRequest {
	r.description = &description
	return r
}

// Tracks seeds the new playlist with the given track URIs. The tracks are
// added with a second call after the playlist exists; see Create for the
// partial-failure behavior.
func (r *CreatePlaylistRequest) Tracks(uris ...string) *CreatePlaylistRequest {
	r.trackURIs = uris
	return r
}

// Create executes the request. Without Tracks it is a single POST. With
// Tracks it is a composite: the playlist is created first, then the tracks
// are added, then the final playlist details are fetched and returned. If
// adding the tracks fails the playlist is NOT rolled back - the error of the
// failed step is returned and the playlist remains, created but empty, for
// the caller to keep or clean up.
func (r *CreatePlaylistRequest) Create(ctx context.Context) (*model.Playlist, error) {
	body := map[string]any{"name": r.name}
	if r.public != nil {
		body["public"] = *r.public
	}
	if r.collab != nil {
		body["collaborative"] = *r.collab
	}
	if r.description != nil {
		body["description"] = *r.description
	}

	spec := newSpec(http.MethodPost, "/users/"+r.userID+"/playlists")
	spec.body = body
	created, err := dispatch[model.Playlist](ctx, &r.u.Client, spec)
	if err != nil {
		return nil, err
	}
	if len(r.trackURIs) == 0 {
		return &created, nil
	}

	if _, err := r.u.AddPlaylistItems(created.ID, r.trackURIs...).Do(ctx); err != nil {
		return nil, fmt.Errorf("playlist %s created but adding tracks failed: %w", created.ID, err)
	}
	return r.u.Playlist(created.ID).Get(ctx)
}

// FeaturedPlaylistsRequest lists Spotify's featured playlists.
type FeaturedPlaylistsRequest struct {
	c      *Client
	locale string
	limit  *Bounded
	offset *int
}

// FeaturedPlaylists begins a request for the featured playlists.
func (c *Client) FeaturedPlaylists() *FeaturedPlaylistsRequest {
	return &FeaturedPlaylistsRequest{c: c}
}

// Locale requests results in the given locale.
func (r *FeaturedPlaylistsRequest) Locale(locale string) *FeaturedPlaylistsRequest {
	r.locale = locale
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *FeaturedPlaylistsRequest) Limit(n int) *FeaturedPlaylistsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first playlist to return.
func (r *FeaturedPlaylistsRequest) Offset(n int) *FeaturedPlaylistsRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *FeaturedPlaylistsRequest) Get(ctx context.Context) (*model.FeaturedPlaylists, error) {
	spec := newSpec(http.MethodGet, "/browse/featured-playlists")
	spec.set("locale", r.locale)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	featured, err := dispatch[model.FeaturedPlaylists](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &featured, nil
}

// CategoryPlaylistsRequest lists the playlists of a browse category.
type CategoryPlaylistsRequest struct {
	c      *Client
	id     string
	limit  *Bounded
	offset *int
}

// CategoryPlaylists begins a request for the playlists of the given
// category.
func (c *Client) CategoryPlaylists(categoryID string) *CategoryPlaylistsRequest {
	return &CategoryPlaylistsRequest{c: c, id: categoryID}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *CategoryPlaylistsRequest) Limit(n int) *CategoryPlaylistsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first playlist to return.
func (r *CategoryPlaylistsRequest) Offset(n int) *CategoryPlaylistsRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *CategoryPlaylistsRequest) Get(ctx context.Context) (*model.FeaturedPlaylists, error) {
	spec := newSpec(http.MethodGet, "/browse/categories/"+r.id+"/playlists")
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	playlists, err := dispatch[model.FeaturedPlaylists](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &playlists, nil
}

// PlaylistCoverImages fetches the cover images of a playlist.
func (c *Client) PlaylistCoverImages(ctx context.Context, playlistID string) ([]model.Image, error) {
	spec := newSpec(http.MethodGet, "/playlists/"+playlistID+"/images")
	return dispatch[[]model.Image](ctx, c, spec)
}

// AddPlaylistCoverImage replaces the cover image of a playlist. The image
// must be a JPEG of at most 256 KB; it is base64-encoded on the wire.
func (u *UserClient) AddPlaylistCoverImage(ctx context.Context, playlistID string, jpeg []byte) error {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(jpeg)))
	base64.StdEncoding.Encode(encoded, jpeg)

	spec := newSpec(http.MethodPut, "/playlists/"+playlistID+"/images")
	spec.raw = encoded
	return dispatchNil(ctx, &u.Client, spec)
}

// CheckUsersFollowPlaylist reports, per given user id, whether that user
// follows the playlist.
func (c *Client) CheckUsersFollowPlaylist(ctx context.Context, playlistID string, userIDs ...string) ([]bool, error) {
	spec := newSpec(http.MethodGet, "/playlists/"+playlistID+"/followers/contains")
	spec.set("ids", joinIDs(userIDs))
	return dispatch[[]bool](ctx, c, spec)
}

// User fetches the public profile of any user.
func (c *Client) User(ctx context.Context, id string) (*model.PublicUser, error) {
	spec := newSpec(http.MethodGet, "/users/"+id)
	user, err := dispatch[model.PublicUser](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
