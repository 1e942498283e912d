package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// savedPageRequest is the shared shape of the "list saved X" builders.
// Each saved-content kind gets its own exported wrapper so the fluent API
// stays concrete, but the paging plumbing lives once, here.
type savedPageRequest struct {
	c      *Client
	path   string
	market string
	limit  *Bounded
	offset *int
}

func (r *savedPageRequest) setMarket(market string) { r.market = market }

func (r *savedPageRequest) setLimit(n int) {
	b := NewLimit(n)
	r.limit = &b
}

func (r *savedPageRequest) setOffset(n int) {
	n = max(n, 0)
	r.offset = &n
}

func savedPage[T any](ctx context.Context, r *savedPageRequest) (*model.Page[T], error) {
	spec := newSpec(http.MethodGet, r.path)
	spec.set("market", r.market)
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

// saveByQuery adds or removes library entries for endpoints that take the
// ids as a query parameter.
func saveByQuery(ctx context.Context, c *Client, method, path string, ids []string) error {
	spec := newSpec(method, path)
	spec.set("ids", joinIDs(ids))
	return dispatchNil(ctx, c, spec)
}

// saveByBody adds or removes library entries for endpoints that take the
// ids in a JSON body.
func saveByBody(ctx context.Context, c *Client, method, path string, ids []string) error {
	spec := newSpec(method, path)
	spec.body = map[string]any{"ids": ids}
	return dispatchNil(ctx, c, spec)
}

// checkSaved asks the library-contains endpoint and returns one bool per id,
// in the order the ids were given.
func checkSaved(ctx context.Context, c *Client, path string, ids []string) ([]bool, error) {
	spec := newSpec(http.MethodGet, path)
	spec.set("ids", joinIDs(ids))
	return dispatch[[]bool](ctx, c, spec)
}

// SavedAlbumsRequest lists the albums in the user's library.
type SavedAlbumsRequest struct{ savedPageRequest }

// SavedAlbums begins a request for the user's saved albums.
func (u *UserClient) SavedAlbums() *SavedAlbumsRequest {
	return &SavedAlbumsRequest{savedPageRequest{c: &u.Client, path: "/me/albums"}}
}

// Market restricts the response to content playable in the given market.
func (r *SavedAlbumsRequest) Market(market string) *SavedAlbumsRequest {
	r.setMarket(market)
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *SavedAlbumsRequest) Limit(n int) *SavedAlbumsRequest {
	r.setLimit(n)
	return r
}

// Offset sets the index of the first album to return.
func (r *SavedAlbumsRequest) Offset(n int) *SavedAlbumsRequest {
	r.setOffset(n)
	return r
}

// Get executes the request.
func (r *SavedAlbumsRequest) Get(ctx context.Context) (*model.Page[model.SavedAlbum], error) {
	return savedPage[model.SavedAlbum](ctx, &r.savedPageRequest)
}

// SaveAlbums adds the given albums to the user's library.
func (u *UserClient) SaveAlbums(ctx context.Context, ids ...string) error {
	return saveByBody(ctx, &u.Client, http.MethodPut, "/me/albums", ids)
}

// RemoveSavedAlbums removes the given albums from the user's library.
func (u *UserClient) RemoveSavedAlbums(ctx context.Context, ids ...string) error {
	return saveByBody(ctx, &u.Client, http.MethodDelete, "/me/albums", ids)
}

// CheckSavedAlbums reports, per given id, whether the album is saved.
func (u *UserClient) CheckSavedAlbums(ctx context.Context, ids ...string) ([]bool, error) {
	return checkSaved(ctx, &u.Client, "/me/albums/contains", ids)
}

// SavedAudiobooksRequest lists the audiobooks in the user's library.
type SavedAudiobooksRequest struct{ savedPageRequest }

// SavedAudiobooks begins a request for the user's saved audiobooks.
func (u *UserClient) SavedAudiobooks() *SavedAudiobooksRequest {
	return &SavedAudiobooksRequest{savedPageRequest{c: &u.Client, path: "/me/audiobooks"}}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *SavedAudiobooksRequest) Limit(n int) *SavedAudiobooksRequest {
	r.setLimit(n)
	return r
}

// Offset sets the index of the first audiobook to return.
func (r *SavedAudiobooksRequest) Offset(n int) *SavedAudiobooksRequest {
	r.setOffset(n)
	return r
}

// Get executes the request.
func (r *SavedAudiobooksRequest) Get(ctx context.Context) (*model.Page[model.SimpleAudiobook], error) {
	return savedPage[model.SimpleAudiobook](ctx, &r.savedPageRequest)
}

// SaveAudiobooks adds the given audiobooks to the user's library.
func (u *UserClient) SaveAudiobooks(ctx context.Context, ids ...string) error {
	return saveByQuery(ctx, &u.Client, http.MethodPut, "/me/audiobooks", ids)
}

// RemoveSavedAudiobooks removes the given audiobooks from the user's library.
func (u *UserClient) RemoveSavedAudiobooks(ctx context.Context, ids ...string) error {
	return saveByQuery(ctx, &u.Client, http.MethodDelete, "/me/audiobooks", ids)
}

// CheckSavedAudiobooks reports, per given id, whether the audiobook is saved.
func (u *UserClient) CheckSavedAudiobooks(ctx context.Context, ids ...string) ([]bool, error) {
	return checkSaved(ctx, &u.Client, "/me/audiobooks/contains", ids)
}

// SavedEpisodesRequest lists the episodes in the user's library.
type SavedEpisodesRequest struct{ savedPageRequest }

// SavedEpisodes begins a request for the user's saved episodes.
func (u *UserClient) SavedEpisodes() *SavedEpisodesRequest {
	return &SavedEpisodesRequest{savedPageRequest{c: &u.Client, path: "/me/episodes"}}
}

// Market restricts the response to content playable in the given market.
func (r *SavedEpisodesRequest) Market(market string) *SavedEpisodesRequest {
	r.setMarket(market)
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *SavedEpisodesRequest) Limit(n int) *SavedEpisodesRequest {
	r.setLimit(n)
	return r
}

// Offset sets the index of the first episode to return.
func (r *SavedEpisodesRequest) Offset(n int) *SavedEpisodesRequest {
	r.setOffset(n)
	return r
}

// Get executes the request.
func (r *SavedEpisodesRequest) Get(ctx context.Context) (*model.Page[model.SavedEpisode], error) {
	return savedPage[model.SavedEpisode](ctx, &r.savedPageRequest)
}

// SaveEpisodes adds the given episodes to the user's library.
func (u *UserClient) SaveEpisodes(ctx context.Context, ids ...string) error {
	return saveByBody(ctx, &u.Client, http.MethodPut, "/me/episodes", ids)
}

// RemoveSavedEpisodes removes the given episodes from the user's library.
func (u *UserClient) RemoveSavedEpisodes(ctx context.Context, ids ...string) error {
	return saveByBody(ctx, &u.Client, http.MethodDelete, "/me/episodes", ids)
}

// CheckSavedEpisodes reports, per given id, whether the episode is saved.
func (u *UserClient) CheckSavedEpisodes(ctx context.Context, ids ...string) ([]bool, error) {
	return checkSaved(ctx, &u.Client, "/me/episodes/contains", ids)
}

// SavedShowsRequest lists the shows in the user's library.
type SavedShowsRequest struct{ savedPageRequest }

// SavedShows begins a request for the user's saved shows.
func (u *UserClient) SavedShows() *SavedShowsRequest {
	return &SavedShowsRequest{savedPageRequest{c: &u.Client, path: "/me/shows"}}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *SavedShowsRequest) Limit(n int) *SavedShowsRequest {
	r.setLimit(n)
	return r
}

// Offset sets the index of the first show to return.
func (r *SavedShowsRequest) Offset(n int) *SavedShowsRequest {
	r.setOffset(n)
	return r
}

// Get executes the request.
func (r *SavedShowsRequest) Get(ctx context.Context) (*model.Page[model.SavedShow], error) {
	return savedPage[model.SavedShow](ctx, &r.savedPageRequest)
}

// SaveShows adds the given shows to the user's library.
func (u *UserClient) SaveShows(ctx context.Context, ids ...string) error {
	return saveByQuery(ctx, &u.Client, http.MethodPut, "/me/shows", ids)
}

// RemoveSavedShowsRequest removes shows from the user's library.
type RemoveSavedShowsRequest struct {
	c      *Client
	ids    []string
	market string
}

// RemoveSavedShows begins removal of the given shows from the user's
// library.
func (u *UserClient) RemoveSavedShows(ids ...string) *RemoveSavedShowsRequest {
	return &RemoveSavedShowsRequest{c: &u.Client, ids: ids}
}

// Market scopes the removal to content available in the given market.
func (r *RemoveSavedShowsRequest) Market(market string) *RemoveSavedShowsRequest {
	r.market = market
	return r
}

// Do executes the removal.
func (r *RemoveSavedShowsRequest) Do(ctx context.Context) error {
	spec := newSpec(http.MethodDelete, "/me/shows")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	return dispatchNil(ctx, r.c, spec)
}

// CheckSavedShows reports, per given id, whether the show is saved.
func (u *UserClient) CheckSavedShows(ctx context.Context, ids ...string) ([]bool, error) {
	return checkSaved(ctx, &u.Client, "/me/shows/contains", ids)
}

// SavedTracksRequest lists the tracks in the user's library.
type SavedTracksRequest struct{ savedPageRequest }

// SavedTracks begins a request for the user's saved tracks.
func (u *UserClient) SavedTracks() *SavedTracksRequest {
	return &SavedTracksRequest{savedPageRequest{c: &u.Client, path: "/me/tracks"}}
}

// Market restricts the response to content playable in the given market.
func (r *SavedTracksRequest) Market(market string) *SavedTracksRequest {
	r.setMarket(market)
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *SavedTracksRequest) Limit(n int) *SavedTracksRequest {
	r.setLimit(n)
	return r
}

// Offset sets the index of the first track to return.
func (r *SavedTracksRequest) Offset(n int) *SavedTracksRequest {
	r.setOffset(n)
	return r
}

// Get executes the request.
func (r *SavedTracksRequest) Get(ctx context.Context) (*model.Page[model.SavedTrack], error) {
	return savedPage[model.SavedTrack](ctx, &r.savedPageRequest)
}

// SaveTracks adds the given tracks to the user's library.
func (u *UserClient) SaveTracks(ctx context.Context, ids ...string) error {
	return saveByBody(ctx, &u.Client, http.MethodPut, "/me/tracks", ids)
}

// RemoveSavedTracks removes the given tracks from the user's library.
func (u *UserClient) RemoveSavedTracks(ctx context.Context, ids ...string) error {
	return saveByBody(ctx, &u.Client, http.MethodDelete, "/me/tracks", ids)
}

// CheckSavedTracks reports, per given id, whether the track is saved.
func (u *UserClient) CheckSavedTracks(ctx context.Context, ids ...string) ([]bool, error) {
	return checkSaved(ctx, &u.Client, "/me/tracks/contains", ids)
}
