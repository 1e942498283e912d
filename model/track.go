package model

// SimpleTrack is the simplified track object embedded in albums.
type SimpleTrack struct {
	Artists          []Artist      `json:"artists"`
	AvailableMarkets []string      `json:"available_markets"`
	DiscNumber       int           `json:"disc_number"`
	DurationMs       int           `json:"duration_ms"`
	Explicit         bool          `json:"explicit"`
	ExternalURLs     ExternalURLs  `json:"external_urls"`
	Href             string        `json:"href"`
	ID               string        `json:"id"`
	IsPlayable       bool          `json:"is_playable,omitempty"`
	Restrictions     *Restrictions `json:"restrictions,omitempty"`
	Name             string        `json:"name"`
	PreviewURL       string        `json:"preview_url"`
	TrackNumber      int           `json:"track_number"`
	Type             string        `json:"type"`
	URI              string        `json:"uri"`
	IsLocal          bool          `json:"is_local"`
}

// Track is the full track object.
type Track struct {
	SimpleTrack

	Album       SimpleAlbum `json:"album"`
	ExternalIDs ExternalIDs `json:"external_ids"`
	Popularity  int         `json:"popularity"`
}

// Tracks is the envelope of the several-tracks endpoint.
type Tracks struct {
	Tracks []Track `json:"tracks"`
}

// SavedTrack is a track in the user's library.
type SavedTrack struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

// AudioFeatures describes the acoustic profile of one track.
type AudioFeatures struct {
	Acousticness     float64 `json:"acousticness"`
	AnalysisURL      string  `json:"analysis_url"`
	Danceability     float64 `json:"danceability"`
	DurationMs       int     `json:"duration_ms"`
	Energy           float64 `json:"energy"`
	ID               string  `json:"id"`
	Instrumentalness float64 `json:"instrumentalness"`
	Key              int     `json:"key"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
	TrackHref        string  `json:"track_href"`
	Type             string  `json:"type"`
	URI              string  `json:"uri"`
	Valence          float64 `json:"valence"`
}

// AudioFeaturesList is the envelope of the several-audio-features endpoint.
type AudioFeaturesList struct {
	AudioFeatures []AudioFeatures `json:"audio_features"`
}

// AudioAnalysis is the low-level audio analysis of one track.
type AudioAnalysis struct {
	Meta     AnalysisMeta      `json:"meta"`
	Track    AnalysisTrack     `json:"track"`
	Bars     []TimeInterval    `json:"bars"`
	Beats    []TimeInterval    `json:"beats"`
	Sections []AnalysisSection `json:"sections"`
	Segments []AnalysisSegment `json:"segments"`
	Tatums   []TimeInterval    `json:"tatums"`
}

// AnalysisMeta describes the analyzer run itself.
type AnalysisMeta struct {
	AnalyzerVersion string  `json:"analyzer_version"`
	Platform        string  `json:"platform"`
	DetailedStatus  string  `json:"detailed_status"`
	StatusCode      int     `json:"status_code"`
	Timestamp       int64   `json:"timestamp"`
	AnalysisTime    float64 `json:"analysis_time"`
	InputProcess    string  `json:"input_process"`
}

// AnalysisTrack is the whole-track summary of an audio analysis.
type AnalysisTrack struct {
	Duration      float64 `json:"duration"`
	Loudness      float64 `json:"loudness"`
	Tempo         float64 `json:"tempo"`
	TempoConf     float64 `json:"tempo_confidence"`
	TimeSignature int     `json:"time_signature"`
	Key           int     `json:"key"`
	KeyConf       float64 `json:"key_confidence"`
	Mode          int     `json:"mode"`
	ModeConf      float64 `json:"mode_confidence"`
}

// TimeInterval is one bar, beat or tatum.
type TimeInterval struct {
	Start      float64 `json:"start"`
	Duration   float64 `json:"duration"`
	Confidence float64 `json:"confidence"`
}

// AnalysisSection is a large structural unit of a track.
type AnalysisSection struct {
	TimeInterval

	Loudness      float64 `json:"loudness"`
	Tempo         float64 `json:"tempo"`
	Key           int     `json:"key"`
	Mode          int     `json:"mode"`
	TimeSignature int     `json:"time_signature"`
}

// AnalysisSegment is a short, roughly uniform sound unit of a track.
type AnalysisSegment struct {
	TimeInterval

	LoudnessStart   float64   `json:"loudness_start"`
	LoudnessMax     float64   `json:"loudness_max"`
	LoudnessMaxTime float64   `json:"loudness_max_time"`
	LoudnessEnd     float64   `json:"loudness_end"`
	Pitches         []float64 `json:"pitches"`
	Timbre          []float64 `json:"timbre"`
}

// Recommendations is the response of the recommendations endpoint.
type Recommendations struct {
	Seeds  []RecommendationSeed `json:"seeds"`
	Tracks []Track              `json:"tracks"`
}

// RecommendationSeed echoes one seed and how it was filtered.
type RecommendationSeed struct {
	AfterFilteringSize int    `json:"afterFilteringSize"`
	AfterRelinkingSize int    `json:"afterRelinkingSize"`
	Href               string `json:"href"`
	ID                 string `json:"id"`
	InitialPoolSize    int    `json:"initialPoolSize"`
	Type               string `json:"type"`
}
