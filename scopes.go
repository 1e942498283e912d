package melodine

// Scope is an OAuth2 authorization scope understood by the Web API. Scopes
// are requested at handshake time; the server reports the granted set in the
// token response.
type Scope string

// Authorization scopes, as documented by Spotify.
const (
	// Images.
	ScopeUGCImageUpload Scope = "ugc-image-upload"

	// Playback.
	ScopeUserReadPlaybackState    Scope = "user-read-playback-state"
	ScopeUserModifyPlaybackState  Scope = "user-modify-playback-state"
	ScopeUserReadCurrentlyPlaying Scope = "user-read-currently-playing"

	// Playlists.
	ScopePlaylistReadPrivate       Scope = "playlist-read-private"
	ScopePlaylistReadCollaborative Scope = "playlist-read-collaborative"
	ScopePlaylistModifyPrivate     Scope = "playlist-modify-private"
	ScopePlaylistModifyPublic      Scope = "playlist-modify-public"

	// Follow.
	ScopeUserFollowModify Scope = "user-follow-modify"
	ScopeUserFollowRead   Scope = "user-follow-read"

	// Listening history.
	ScopeUserReadPlaybackPosition Scope = "user-read-playback-position"
	ScopeUserTopRead              Scope = "user-top-read"
	ScopeUserReadRecentlyPlayed   Scope = "user-read-recently-played"

	// Library.
	ScopeUserLibraryModify Scope = "user-library-modify"
	ScopeUserLibraryRead   Scope = "user-library-read"

	// Users.
	ScopeUserReadEmail   Scope = "user-read-email"
	ScopeUserReadPrivate Scope = "user-read-private"
)

// scopeStrings converts a scope list for golang.org/x/oauth2.
func scopeStrings(scopes []Scope) []string {
	if len(scopes) == 0 {
		return nil
	}
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = string(s)
	}
	return out
}
