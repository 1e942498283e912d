package melodine

import (
	"context"
	"net/http"
	"strconv"

	"github.com/melodine/melodine/model"
)

// RepeatMode is the playback repeat setting.
type RepeatMode string

const (
	RepeatTrack   RepeatMode = "track"
	RepeatContext RepeatMode = "context"
	RepeatOff     RepeatMode = "off"
)

// PlaybackStateRequest fetches the user's current playback state.
type PlaybackStateRequest struct {
	c      *Client
	market string
}

// PlaybackState begins a request for the current playback state.
func (u *UserClient) PlaybackState() *PlaybackStateRequest {
	return &PlaybackStateRequest{c: &u.Client}
}

// Market restricts the response to content playable in the given market.
func (r *PlaybackStateRequest) Market(market string) *PlaybackStateRequest {
	r.market = market
	return r
}

// Get executes the request. When nothing is playing the API responds with
// an empty body, which surfaces here as a ParseError wrapping
// io.ErrUnexpectedEOF.
func (r *PlaybackStateRequest) Get(ctx context.Context) (*model.PlaybackState, error) {
	spec := newSpec(http.MethodGet, "/me/player")
	spec.set("market", r.market)
	spec.set("additional_types", "track,episode")
	state, err := dispatch[model.PlaybackState](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// TransferPlayback moves playback to the given device. When play is true
// playback starts on the new device immediately; otherwise the current
// play/pause state is kept.
func (u *UserClient) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	spec := newSpec(http.MethodPut, "/me/player")
	spec.body = map[string]any{
		"device_ids": []string{deviceID},
		"play":       play,
	}
	return dispatchNil(ctx, &u.Client, spec)
}

// Devices lists the devices available for playback.
func (u *UserClient) Devices(ctx context.Context) ([]model.Device, error) {
	spec := newSpec(http.MethodGet, "/me/player/devices")
	devices, err := dispatch[model.Devices](ctx, &u.Client, spec)
	if err != nil {
		return nil, err
	}
	return devices.Devices, nil
}

// CurrentlyPlayingRequest fetches the item currently playing.
type CurrentlyPlayingRequest struct {
	c      *Client
	market string
}

// CurrentlyPlaying begins a request for the currently playing item.
func (u *UserClient) CurrentlyPlaying() *CurrentlyPlayingRequest {
	return &CurrentlyPlayingRequest{c: &u.Client}
}

// Market restricts the response to content playable in the given market.
func (r *CurrentlyPlayingRequest) Market(market string) *CurrentlyPlayingRequest {
	r.market = market
	return r
}

// Get executes the request.
func (r *CurrentlyPlayingRequest) Get(ctx context.Context) (*model.PlaybackState, error) {
	spec := newSpec(http.MethodGet, "/me/player/currently-playing")
	spec.set("market", r.market)
	spec.set("additional_types", "track,episode")
	state, err := dispatch[model.PlaybackState](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// PlayRequest starts or resumes playback.
type PlayRequest struct {
	c          *Client
	deviceID   string
	contextURI string
	uris       []string
	offsetPos  *int
	offsetURI  string
	positionMS *int
}

// Play begins a request to start or resume playback. Without any of the
// optional setters it resumes whatever was playing.
func (u *UserClient) Play() *PlayRequest {
	return &PlayRequest{c: &u.Client}
}

// Device targets a specific device instead of the active one.
func (r *PlayRequest) Device(deviceID string) *PlayRequest {
	r.deviceID = deviceID
	return r
}

// Context plays from a context URI (album, artist or playlist).
func (r *PlayRequest) Context(uri string) *PlayRequest {
	r.contextURI = uri
	return r
}

// URIs plays the given item URIs in order. Mutually exclusive with Context
// on the API side.
func (r *PlayRequest) URIs(uris ...string) *PlayRequest {
	r.uris = uris
	return r
}

// OffsetPosition starts playback at the given index within the context.
func (r *PlayRequest) OffsetPosition(n int) *PlayRequest {
	r.offsetPos = &n
	return r
}

// OffsetURI starts playback at the given item URI within the context.
func (r *PlayRequest) OffsetURI(uri string) *PlayRequest {
	r.offsetURI = uri
	return r
}

// PositionMS starts playback at the given position in the item.
func (r *PlayRequest) PositionMS(ms int) *PlayRequest {
	r.positionMS = &ms
	return r
}

// Do executes the request.
func (r *PlayRequest) Do(ctx context.Context) error {
	spec := newSpec(http.MethodPut, "/me/player/play")
	spec.set("device_id", r.deviceID)

	body := map[string]any{}
	if r.contextURI != "" {
		body["context_uri"] = r.contextURI
	}
	if len(r.uris) > 0 {
		body["uris"] = r.uris
	}
	switch {
	case r.offsetPos != nil:
		body["offset"] = map[string]any{"position": *r.offsetPos}
	case r.offsetURI != "":
		body["offset"] = map[string]any{"uri": r.offsetURI}
	}
	if r.positionMS != nil {
		body["position_ms"] = *r.positionMS
	}
	if len(body) > 0 {
		spec.body = body
	}
	return dispatchNil(ctx, r.c, spec)
}

// Pause pauses playback, optionally on a specific device. Pass an empty
// deviceID to target the active device.
func (u *UserClient) Pause(ctx context.Context, deviceID string) error {
	spec := newSpec(http.MethodPut, "/me/player/pause")
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// SkipNext skips playback to the next item in the queue.
func (u *UserClient) SkipNext(ctx context.Context, deviceID string) error {
	spec := newSpec(http.MethodPost, "/me/player/next")
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// SkipPrevious skips playback to the previous item.
func (u *UserClient) SkipPrevious(ctx context.Context, deviceID string) error {
	spec := newSpec(http.MethodPost, "/me/player/previous")
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// SeekToPosition seeks to the given position in the currently playing
// item. Negative positions are treated as zero.
func (u *UserClient) SeekToPosition(ctx context.Context, positionMS int, deviceID string) error {
	spec := newSpec(http.MethodPut, "/me/player/seek")
	spec.setInt("position_ms", max(positionMS, 0))
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// SetRepeatMode sets the repeat mode for playback.
func (u *UserClient) SetRepeatMode(ctx context.Context, mode RepeatMode, deviceID string) error {
	spec := newSpec(http.MethodPut, "/me/player/repeat")
	spec.set("state", string(mode))
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// SetVolume sets the playback volume as a percentage, clamped to
// [MinVolume, MaxVolume].
func (u *UserClient) SetVolume(ctx context.Context, percent int, deviceID string) error {
	volume := NewVolume(percent)
	spec := newSpec(http.MethodPut, "/me/player/volume")
	spec.setInt("volume_percent", volume.Value())
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// ToggleShuffle turns shuffle on or off.
func (u *UserClient) ToggleShuffle(ctx context.Context, shuffle bool, deviceID string) error {
	spec := newSpec(http.MethodPut, "/me/player/shuffle")
	spec.setBool("state", shuffle)
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}

// RecentlyPlayedRequest lists the user's recently played tracks, paged by
// millisecond timestamp cursors.
type RecentlyPlayedRequest struct {
	c      *Client
	limit  *Bounded
	after  *int64
	before *int64
}

// RecentlyPlayed begins a request for the recently played tracks.
func (u *UserClient) RecentlyPlayed() *RecentlyPlayedRequest {
	return &RecentlyPlayedRequest{c: &u.Client}
}

// Limit sets the page size, clamped to [MinLimit, MaxLimit].
func (r *RecentlyPlayedRequest) Limit(n int) *RecentlyPlayedRequest {
	b := NewLimit(n)
	r.limit = &b
	return r
}

// After returns items played after the given Unix millisecond timestamp.
func (r *RecentlyPlayedRequest) After(ms int64) *RecentlyPlayedRequest {
	r.after = &ms
	return r
}

// Before returns items played before the given Unix millisecond timestamp.
func (r *RecentlyPlayedRequest) Before(ms int64) *RecentlyPlayedRequest {
	r.before = &ms
	return r
}

// Get executes the request.
func (r *RecentlyPlayedRequest) Get(ctx context.Context) (*model.CursorPage[model.PlayHistory], error) {
	spec := newSpec(http.MethodGet, "/me/player/recently-played")
	spec.setBounded("limit", r.limit)
	if r.after != nil {
		spec.set("after", strconv.FormatInt(*r.after, 10))
	}
	if r.before != nil {
		spec.set("before", strconv.FormatInt(*r.before, 10))
	}
	page, err := dispatch[model.CursorPage[model.PlayHistory]](ctx, r.c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Queue fetches the currently playing item and the upcoming queue.
func (u *UserClient) Queue(ctx context.Context) (*model.Queue, error) {
	spec := newSpec(http.MethodGet, "/me/player/queue")
	queue, err := dispatch[model.Queue](ctx, &u.Client, spec)
	if err != nil {
		return nil, err
	}
	return &queue, nil
}

// AddToQueue appends the given item URI to the playback queue. Pass an
// empty deviceID to target the active device.
func (u *UserClient) AddToQueue(ctx context.Context, uri, deviceID string) error {
	spec := newSpec(http.MethodPost, "/me/player/queue")
	spec.set("uri", uri)
	spec.set("device_id", deviceID)
	return dispatchNil(ctx, &u.Client, spec)
}
