package melodine

import (
	"context"
	"net/http"

	"github.com/melodine/melodine/model"
)

// BrowseCategoryRequest fetches a single browse category.
type BrowseCategoryRequest struct {
	c      *Client
	id     string
	locale string
}

// BrowseCategory begins a request for the category with the given id.
func (c *Client) BrowseCategory(id string) *BrowseCategoryRequest {
	return &BrowseCategoryRequest{c: c, id: id}
}

// Locale requests category names in the given locale, e.g. "sv_SE".
func (r *BrowseCategoryRequest) Locale(locale string) *BrowseCategoryRequest {
	r.locale = locale
	return r
}

// Get executes the request.
func (r *BrowseCategoryRequest) Get(ctx context.Context) (*model.Category, error) {
	spec := newSpec(http.MethodGet, "/browse/categories/"+r.id)
	spec.set("locale", r.locale)
	category, err := dispatch[model.Category](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// BrowseCategoriesRequest lists browse categories page by page.
type BrowseCategoriesRequest struct {
	c      *Client
	locale string
	limit  *Bounded
	offset *int
}

// BrowseCategories begins a request for the category listing.
func (c *Client) BrowseCategories() *BrowseCategoriesRequest {
	return &BrowseCategoriesRequest{c: c}
}

// Locale requests category names in the given locale.
func (r *BrowseCategoriesRequest) Locale(locale string) *BrowseCategoriesRequest {
	r.locale = locale
	return r
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *BrowseCategoriesRequest) Limit(n int) *BrowseCategoriesRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Offset sets the index of the first category to return.
func (r *BrowseCategoriesRequest) Offset(n int) *BrowseCategoriesRequest {
	n = max(n, 0)
	r.offset = &n
	return r
}

// Get executes the request.
func (r *BrowseCategoriesRequest) Get(ctx context.Context) (*model.Page[model.Category], error) {
	spec := newSpec(http.MethodGet, "/browse/categories")
	spec.set("locale", r.locale)
	spec.setBounded("limit", r.limit)
	if r.offset != nil {
		spec.setInt("offset", *r.offset)
	}
	categories, err := dispatch[model.Categories](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &categories.Categories, nil
}

// AvailableMarkets lists the markets the API serves.
func (c *Client) AvailableMarkets(ctx context.Context) ([]string, error) {
	spec := newSpec(http.MethodGet, "/markets")
	markets, err := dispatch[model.Markets](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return markets.Markets, nil
}

// GenreSeeds lists the genres the recommendations endpoint accepts as seeds.
func (c *Client) GenreSeeds(ctx context.Context) ([]string, error) {
	spec := newSpec(http.MethodGet, "/recommendations/available-genre-seeds")
	genres, err := dispatch[model.Genres](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return genres.Genres, nil
}
