package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// ShowRequest fetches a single show.
type ShowRequest struct {
	c      *Client
	id     string
	market string
}

// Show begins a request for the show with the given id.
func (c *Client) Show(id string) *ShowRequest {
	return &ShowRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market.
func (r *ShowRequest) Market(market string) *ShowRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *ShowRequest) Get(ctx context.Context) (*model.Show, error) {
	spec := newSpec(http.MethodGet, "/shows/"+r.id)
	spec.set("market", r.market)
	show, err := dispatch[model.Show](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

// ShowsRequest fetches several shows at once.
type ShowsRequest struct {
	c      *Client
	ids    []string
	market string
}

// Shows begins a request for the shows with the given ids.
func (c *Client) Shows(ids ...string) *ShowsRequest {
	return &ShowsRequest{c: c, ids: ids}
}

// Market restricts the response to content playable in the given market.
func (r *ShowsRequest) Market(market string) *ShowsRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *ShowsRequest) Get(ctx context.Context) ([]model.SimpleShow, error) {
	spec := newSpec(http.MethodGet, "/shows")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	shows, err := dispatch[model.Shows](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return shows.Shows, nil
}

// ShowEpisodesRequest fetches a show's episodes page by page.
type ShowEpisodesRequest struct {
	c      *Client
	id     string
	market string
	limit  *Bounded
	offset *int
}

// ShowEpisodes begins a request for the episodes of the given show.
func (c *Client) ShowEpisodes(showID string) *ShowEpisodesRequest {
	return &ShowEpisodesRequest{c: c, id: showID}
}

// Market restricts the response to content playable in the given market.
func (r *ShowEpisodesRequest) Market(market string) *ShowEpisodesRequest {
	r.market = market
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *ShowEpisodesRequest) Limit(n int) *ShowEpisodesRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first episode to return.
func (r *ShowEpisodesRequest) Offset(n int) *ShowEpisodesRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *ShowEpisodesRequest) Get(ctx context.Context) (*model.Page[model.SimpleEpisode], error) {
	spec := newSpec(http.MethodGet, "/shows/"+r.id+"/episodes")
	spec.set("market", r.market)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[model.SimpleEpisode]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// EpisodeRequest fetches a single episode.
type EpisodeRequest struct {
	c      *Client
	id     string
	market string
}

// Episode begins a request for the episode with the given id.
func (c *Client) Episode(id string) *EpisodeRequest {
	return &EpisodeRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market.
func (r *EpisodeRequest) Market(market string) *EpisodeRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *EpisodeRequest) Get(ctx context.Context) (*model.Episode, error) {
	spec := newSpec(http.MethodGet, "/episodes/"+r.id)
	spec.set("market", r.market)
	episode, err := dispatch[model.Episode](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

// EpisodesRequest fetches several episodes at once.
type EpisodesRequest struct {
	c      *Client
	ids    []string
	market string
}

// Episodes begins a request for the episodes with the given ids.
func (c *Client) Episodes(ids ...string) *EpisodesRequest {
	return &EpisodesRequest{c: c, ids: ids}
}

// Market restricts the response to content playable in the given market.
func (r *EpisodesRequest) Market(market string) *EpisodesRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *EpisodesRequest) Get(ctx context.Context) ([]model.Episode, error) {
	spec := newSpec(http.MethodGet, "/episodes")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	episodes, err := dispatch[model.Episodes](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return episodes.Episodes, nil
}
