package model

// Device is one playback device registered with the user's account.
type Device struct {
	ID               string `json:"id"`
	IsActive         bool   `json:"is_active"`
	IsPrivateSession bool   `json:"is_private_session"`
	IsRestricted     bool   `json:"is_restricted"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	VolumePercent    int    `json:"volume_percent"`
	SupportsVolume   bool   `json:"supports_volume"`
}

// Devices is the envelope of the available-devices endpoint.
type Devices struct {
	Devices []Device `json:"devices"`
}

// PlaybackContext is the context playback happens in, e.g. a playlist.
type PlaybackContext struct {
	Type         string       `json:"type"`
	Href         string       `json:"href"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// PlaybackState describes the user's current playback.
type PlaybackState struct {
	Device       Device           `json:"device"`
	RepeatState  string           `json:"repeat_state"`
	ShuffleState bool             `json:"shuffle_state"`
	Context      *PlaybackContext `json:"context"`
	Timestamp    int64            `json:"timestamp"`
	ProgressMs   int              `json:"progress_ms"`
	IsPlaying    bool             `json:"is_playing"`
	Item         *Track           `json:"item"`
	// CurrentlyPlayingType is "track", "episode", "ad" or "unknown".
	CurrentlyPlayingType string `json:"currently_playing_type"`
}

// Queue is the user's playback queue.
type Queue struct {
	CurrentlyPlaying *Track  `json:"currently_playing"`
	Queue            []Track `json:"queue"`
}

// PlayHistory is one entry of the recently-played list.
type PlayHistory struct {
	Track    Track            `json:"track"`
	PlayedAt string           `json:"played_at"`
	Context  *PlaybackContext `json:"context"`
}
