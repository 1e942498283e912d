package melodine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("bare resume sends no body", func(t *testing.T) {
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/me/player/play", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Empty(t, body)

			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, u.Play().Do(context.Background()))
	})

	t.Run("context playback with offset and position", func(t *testing.T) {
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "device1", r.URL.Query().Get("device_id"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "spotify:album:x", body["context_uri"])
			assert.Equal(t, map[string]any{"position": float64(3)}, body["offset"])
			assert.Equal(t, float64(15000), body["position_ms"])

			w.WriteHeader(http.StatusNoContent)
		}))

		err := u.Play().
			Device("device1").
			Context("spotify:album:x").
			OffsetPosition(3).
			PositionMS(15000).
			Do(context.Background())
		require.NoError(t, err)
	})
}

func TestDevices(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/player/devices", r.URL.Path)
		w.Write([]byte(`{"devices":[{"id":"d1","name":"Kitchen","is_active":true,"volume_percent":70}]}`))
	}))

	devices, err := u.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "Kitchen", devices[0].Name)
	assert.True(t, devices[0].IsActive)
}

func TestRecentlyPlayedCursors(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1700000000000", q.Get("after"))
		assert.Empty(t, q.Get("before"))

		w.Write([]byte(`{
			"items": [{"played_at": "2024-01-15T10:00:00Z", "track": {"id": "t1", "name": "One"}}],
			"cursors": {"after": "1700000001000"}
		}`))
	}))

	page, err := u.RecentlyPlayed().After(1700000000000).Get(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "One", page.Items[0].Track.Name)
	assert.Equal(t, "1700000001000", page.Cursors.After)
}

func TestSetRepeatMode(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/player/repeat", r.URL.Path)
		assert.Equal(t, "context", r.URL.Query().Get("state"))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, u.SetRepeatMode(context.Background(), RepeatContext, ""))
}
