package melodine

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedTracks(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/tracks", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "40", q.Get("offset"))
		assert.Equal(t, "SE", q.Get("market"))

		w.Write([]byte(`{
			"items": [
				{"added_at": "2024-01-15T10:00:00Z", "track": {"id": "t1", "name": "One"}}
			],
			"limit": 20, "offset": 40, "total": 41
		}`))
	}))

	page, err := u.SavedTracks().Limit(20).Offset(40).Market("SE").Get(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "One", page.Items[0].Track.Name)
	assert.Equal(t, 41, page.Total)
}

func TestSaveAndRemoveTracks(t *testing.T) {
	t.Run("save sends ids in the body", func(t *testing.T) {
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/me/tracks", r.URL.Path)

			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []string{"t1", "t2"}, body["ids"])

			w.WriteHeader(http.StatusOK)
		}))

		require.NoError(t, u.SaveTracks(context.Background(), "t1", "t2"))
	})

	t.Run("remove uses DELETE with the same body shape", func(t *testing.T) {
		u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)

			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []string{"t1"}, body["ids"])

			w.WriteHeader(http.StatusOK)
		}))

		require.NoError(t, u.RemoveSavedTracks(context.Background(), "t1"))
	})
}

func TestSaveShowsUsesQueryIDs(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/me/shows", r.URL.Path)
		assert.Equal(t, "s1,s2", r.URL.Query().Get("ids"))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, u.SaveShows(context.Background(), "s1", "s2"))
}

func TestCheckSavedAlbums(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/albums/contains", r.URL.Path)
		assert.Equal(t, "a1,a2,a3", r.URL.Query().Get("ids"))
		w.Write([]byte(`[true,false,true]`))
	}))

	saved, err := u.CheckSavedAlbums(context.Background(), "a1", "a2", "a3")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, saved)
}

func TestFollowedArtists(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/following", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "artist", q.Get("type"))
		assert.Equal(t, "lastid", q.Get("after"))

		w.Write([]byte(`{
			"artists": {
				"items": [{"id": "ar1", "name": "Nirvana"}],
				"cursors": {"after": "ar1"},
				"total": 1
			}
		}`))
	}))

	page, err := u.FollowedArtists().After("lastid").Get(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Nirvana", page.Items[0].Name)
	assert.Equal(t, "ar1", page.Cursors.After)
}

func TestTopArtistsTimeRange(t *testing.T) {
	u := newTestUserClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/top/artists", r.URL.Path)
		assert.Equal(t, "long_term", r.URL.Query().Get("time_range"))
		w.Write([]byte(`{"items":[{"id":"ar1","name":"Nirvana"}],"total":1}`))
	}))

	page, err := u.TopArtists().TimeRange(LongTerm).Get(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Nirvana", page.Items[0].Name)
}
