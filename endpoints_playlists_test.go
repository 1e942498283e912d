package melodine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlaylist(t *testing.T) {
	t.Run("without tracks it is a single POST", func(t *testing.T) {
		var calls []string
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Road Trip", body["name"])
			assert.Equal(t, false, body["public"])

			w.Write([]byte(`{"id":"pl1","name":"Road Trip","snapshot_id":"s1"}`))
		}))

		playlist, err := u.CreatePlaylist("user1", "Road Trip").
			Public(false).
			Create(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "pl1", playlist.ID)
		assert.Equal(t, []string{"POST /users/user1/playlists"}, calls)
	})

	t.Run("description is sent only when set", func(t *testing.T) {
		t.Run("unset stays off the wire", func(t *testing.T) {
			u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.NotContains(t, body, "description")
				w.Write([]byte(`{"id":"pl1","name":"Road Trip"}`))
			}))

			_, err := u.CreatePlaylist("user1", "Road Trip").Create(context.Background())
			require.NoError(t, err)
		})

		t.Run("set reaches the body, empty string included", func(t *testing.T) {
			for _, description := range []string{"songs for the road", ""} {
				u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					var body map[string]any
					require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
					assert.Equal(t, description, body["description"])
					w.Write([]byte(`{"id":"pl1","name":"Road Trip"}`))
				}))

				_, err := u.CreatePlaylist("user1", "Road Trip").
					Description(description).
					Create(context.Background())
				require.NoError(t, err)
			}
		})
	})

	t.Run("with tracks it creates, adds, then refetches", func(t *testing.T) {
		var calls []string
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/users/user1/playlists":
				w.Write([]byte(`{"id":"pl1","name":"Road Trip"}`))
			case r.Method == http.MethodPost && r.URL.Path == "/playlists/pl1/tracks":
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, []any{"spotify:track:a", "spotify:track:b"}, body["uris"])
				w.Write([]byte(`{"snapshot_id":"s2"}`))
			case r.Method == http.MethodGet && r.URL.Path == "/playlists/pl1":
				w.Write([]byte(`{"id":"pl1","name":"Road Trip","tracks":{"total":2}}`))
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))

		playlist, err := u.CreatePlaylist("user1", "Road Trip").
			Tracks("spotify:track:a", "spotify:track:b").
			Create(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, playlist.Tracks.Total)
		assert.Equal(t, []string{
			"POST /users/user1/playlists",
			"POST /playlists/pl1/tracks",
			"GET /playlists/pl1",
		}, calls)
	})

	t.Run("failed add-tracks surfaces without rollback", func(t *testing.T) {
		var calls []string
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/users/user1/playlists":
				w.Write([]byte(`{"id":"pl1","name":"Road Trip"}`))
			case r.Method == http.MethodPost && r.URL.Path == "/playlists/pl1/tracks":
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"status":400,"message":"Invalid track uri"}}`))
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))

		_, err := u.CreatePlaylist("user1", "Road Trip").
			Tracks("not-a-uri").
			Create(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Contains(t, err.Error(), "pl1", "the error must identify the orphaned playlist")
		assert.Equal(t, []string{
			"POST /users/user1/playlists",
			"POST /playlists/pl1/tracks",
		}, calls, "no delete call may follow the failed add")
	})
}

func TestRemovePlaylistItems(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/playlists/pl1/tracks", r.URL.Path)

		var body struct {
			Tracks []struct {
				URI string `json:"uri"`
			} `json:"tracks"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Tracks, 2)
		assert.Equal(t, "spotify:track:a", body.Tracks[0].URI)

		w.Write([]byte(`{"snapshot_id":"s3"}`))
	}))

	snapshot, err := u.RemovePlaylistItems(context.Background(), "pl1", "spotify:track:a", "spotify:track:b")
	require.NoError(t, err)
	assert.Equal(t, "s3", snapshot.SnapshotID)
}

func TestAddPlaylistCoverImage(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(string(body))
		require.NoError(t, err)
		assert.Equal(t, image, decoded)

		w.WriteHeader(http.StatusAccepted)
	}))

	require.NoError(t, u.AddPlaylistCoverImage(context.Background(), "pl1", image))
}

func TestChangePlaylistDetails(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "Renamed", "collaborative": true}, body)
		w.WriteHeader(http.StatusOK)
	}))

	err := u.ChangePlaylistDetails("pl1").
		Name("Renamed").
		Collaborative(true).
		Do(context.Background())
	require.NoError(t, err)
}
