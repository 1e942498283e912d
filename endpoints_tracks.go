package melodine

import (
	"context"
	"net/http"
	"strconv"

	"github.com/melodine/melodine/model"
)

// TrackRequest fetches a single track.
type TrackRequest struct {
	c      *Client
	id     string
	market string
}

// Track begins a request for the track with the given id.
func (c *Client) Track(id string) *TrackRequest {
	return &TrackRequest{c: c, id: id}
}

// Market restricts the response to content playable in the given market.
func (r *TrackRequest) Market(market string) *TrackRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *TrackRequest) Get(ctx context.Context) (*model.Track, error) {
	spec := newSpec(http.MethodGet, "/tracks/"+r.id)
	spec.set("market", r.market)
	track, err := dispatch[model.Track](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// TracksRequest fetches several tracks at once.
type TracksRequest struct {
	c      *Client
	ids    []string
	market string
}

// Tracks begins a request for the tracks with the given ids.
func (c *Client) Tracks(ids ...string) *TracksRequest {
	return &TracksRequest{c: c, ids: ids}
}

// Market restricts the response to content playable in the given market.
func (r *TracksRequest) Market(market string) *TracksRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *TracksRequest) Get(ctx context.Context) ([]model.Track, error) {
	spec := newSpec(http.MethodGet, "/tracks")
	spec.set("ids", joinIDs(r.ids))
	spec.set("market", r.market)
	tracks, err := dispatch[model.Tracks](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return tracks.Tracks, nil
}

// TrackAudioFeatures fetches the audio features of one track.
func (c *Client) TrackAudioFeatures(ctx context.Context, id string) (*model.AudioFeatures, error) {
	spec := newSpec(http.MethodGet, "/audio-features/"+id)
	features, err := dispatch[model.AudioFeatures](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return &features, nil
}

// TracksAudioFeatures fetches the audio features of several tracks at once.
func (c *Client) TracksAudioFeatures(ctx context.Context, ids ...string) ([]model.AudioFeatures, error) {
	spec := newSpec(http.MethodGet, "/audio-features")
	spec.set("ids", joinIDs(ids))
	features, err := dispatch[model.AudioFeaturesList](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return features.AudioFeatures, nil
}

// TrackAudioAnalysis fetches the low-level audio analysis of one track.
func (c *Client) TrackAudioAnalysis(ctx context.Context, id string) (*model.AudioAnalysis, error) {
	spec := newSpec(http.MethodGet, "/audio-analysis/"+id)
	analysis, err := dispatch[model.AudioAnalysis](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Feature is a tunable track attribute of the recommendations endpoint.
type Feature string

// Tunable features.
const (
	FeatureAcousticness     Feature = "acousticness"
	FeatureDanceability     Feature = "danceability"
	FeatureDurationMs       Feature = "duration_ms"
	FeatureEnergy           Feature = "energy"
	FeatureInstrumentalness Feature = "instrumentalness"
	FeatureKey              Feature = "key"
	FeatureLiveness         Feature = "liveness"
	FeatureLoudness         Feature = "loudness"
	FeatureMode             Feature = "mode"
	FeaturePopularity       Feature = "popularity"
	FeatureSpeechiness      Feature = "speechiness"
	FeatureTempo            Feature = "tempo"
	FeatureTimeSignature    Feature = "time_signature"
	FeatureValence          Feature = "valence"
)

// RecommendationsRequest asks for tracks similar to a set of seeds. Up to
// five seed values may be supplied across artists, genres and tracks
// combined; at least one is required.
type RecommendationsRequest struct {
	c           *Client
	seedArtists []string
	seedGenres  []string
	seedTracks  []string
	market      string
	limit       *Bounded
	tunables    map[string]float64
}

// Recommendations begins a recommendations request. Seed it with
// SeedArtists, SeedGenres or SeedTracks before executing.
func (c *Client) Recommendations() *RecommendationsRequest {
	return &RecommendationsRequest{c: c, tunables: map[string]float64{}}
}

// SeedArtists seeds the request with artist ids.
func (r *RecommendationsRequest) SeedArtists(ids ...string) *RecommendationsRequest {
	r.seedArtists = ids
	return r
}

// SeedGenres seeds the request with genres from GenreSeeds.
func (r *RecommendationsRequest) SeedGenres(genres ...string) *RecommendationsRequest {
	r.seedGenres = genres
	return r
}

// SeedTracks seeds the request with track ids.
func (r *RecommendationsRequest) SeedTracks(ids ...string) *RecommendationsRequest {
	r.seedTracks = ids
	return r
}

// Market restricts the response to content playable in the given market.
func (r *RecommendationsRequest) Market(market string) *RecommendationsRequest {
	r.market = market
	return r
}

// Limit sets the number of recommendations, clamped to [MinLimit, MaxLimit].
func (r *RecommendationsRequest) Limit(n int) *RecommendationsRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// Min constrains a tunable feature from below.
func (r *RecommendationsRequest) Min(f Feature, v float64) *RecommendationsRequest {
	r.tunables["min_"+string(f)] = v
	return r
}

// Max constrains a tunable feature from above.
func (r *RecommendationsRequest) Max(f Feature, v float64) *RecommendationsRequest {
	r.tunables["max_"+string(f)] = v
	return r
}

// Target expresses a preferred value for a tunable feature.
func (r *RecommendationsRequest) Target(f Feature, v float64) *RecommendationsRequest {
	r.tunables["target_"+string(f)] = v
	return r
}

// Get executes the request.
func (r *RecommendationsRequest) Get(ctx context.Context) (*model.Recommendations, error) {
	spec := newSpec(http.MethodGet, "/recommendations")
	spec.set("seed_artists", joinIDs(r.seedArtists))
	spec.set("seed_genres", joinIDs(r.seedGenres))
	spec.set("seed_tracks", joinIDs(r.seedTracks))
	spec.set("market", r.market)
	spec.setBounded("limit", r.limit)
	for key, v := range r.tunables {
		spec.set(key, strconv.FormatFloat(v, 'f', -1, 64))
	}
	recs, err := dispatch[model.Recommendations](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &recs, nil
}
