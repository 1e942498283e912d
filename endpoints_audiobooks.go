package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// AudiobookRequest fetches a single audiobook.
type AudiobookRequest struct {
	c      *Client
	id     string
	market string
}

// Audiobook begins a request for the audiobook with the given id.
func (c *Client) Audiobook(id string) *AudiobookRequest {
	return &AudiobookRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market.
func (r *AudiobookRequest) Market(market string) *AudiobookRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *AudiobookRequest) Get(ctx context.Context) (*model.Audiobook, error) {
	spec := newSpec(http.MethodGet, "/audiobooks/"+r.id)
	spec.set("market", r.market)
	book, err := dispatch[model.Audiobook](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// AudiobooksRequest fetches several audiobooks at once.
type AudiobooksRequest struct {
	c      *Client
	ids    []string
	market string
}

// Audiobooks begins a request for the audiobooks with the given ids.
func (c *Client) Audiobooks(ids ...string) *AudiobooksRequest {
	return &AudiobooksRequest{c: c, ids: ids}
}

// Market restricts the response to content playable in the given market.
func (r *AudiobooksRequest) Market(market string) *AudiobooksRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *AudiobooksRequest) Get(ctx context.Context) ([]model.Audiobook, error) {
	spec := newSpec(http.MethodGet, "/audiobooks")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	books, err := dispatch[model.Audiobooks](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return books.Audiobooks, nil
}

// AudiobookChaptersRequest fetches an audiobook's chapters page by page.
type AudiobookChaptersRequest struct {
	c      *Client
	id     string
	market string
	limit  *Bounded
	offset *int
}

// AudiobookChapters begins a request for the chapters of the given audiobook.
func (c *Client) AudiobookChapters(audiobookID string) *AudiobookChaptersRequest {
	return &AudiobookChaptersRequest{c: c, id: audiobookID}
}

// Market restricts the response to content playable in the given market.
func (r *AudiobookChaptersRequest) Market(market string) *AudiobookChaptersRequest {
	r.market = market
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *AudiobookChaptersRequest) Limit(n int) *AudiobookChaptersRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first chapter to return.
func (r *AudiobookChaptersRequest) Offset(n int) *AudiobookChaptersRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *AudiobookChaptersRequest) Get(ctx context.Context) (*model.Page[model.SimpleChapter], error) {
	spec := newSpec(http.MethodGet, "/audiobooks/"+r.id+"/chapters")
	spec.set("market", r.market)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	page, err := dispatch[model.Page[model.SimpleChapter]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ChapterRequest fetches a single audiobook chapter.
type ChapterRequest struct {
	c      *Client
	id     string
	market string
}

// Chapter begins a request for the chapter with the given id.
func (c *Client) Chapter(id string) *ChapterRequest {
	return &ChapterRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market.
func (r *ChapterRequest) Market(market string) *ChapterRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *ChapterRequest) Get(ctx context.Context) (*model.Chapter, error) {
	spec := newSpec(http.MethodGet, "/chapters/"+r.id)
	spec.set("market", r.market)
	chapter, err := dispatch[model.Chapter](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// ChaptersRequest fetches several chapters at once.
type ChaptersRequest struct {
	c      *Client
	ids    []string
	market string
}

// Chapters begins a request for the chapters with the given ids.
func (c *Client) Chapters(ids ...string) *ChaptersRequest {
	return &ChaptersRequest{c: c, ids: ids}
}

// Market restricts the response to content playable in the given market.
func (r *ChaptersRequest) Market(market string) *ChaptersRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *ChaptersRequest) Get(ctx context.Context) ([]model.Chapter, error) {
	spec := newSpec(http.MethodGet, "/chapters")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	chapters, err := dispatch[model.Chapters](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return chapters.Chapters, nil
}
