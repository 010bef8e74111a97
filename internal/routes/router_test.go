package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	backend "duo_webapp/internal/clients/backend/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records ad posts and serves a fixed catalog.
type fakeBackend struct {
	mu    sync.Mutex
	paths []string
	ads   []map[string]any
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/games":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","title":"Game A"}]`))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/ads"):
		var ad map[string]any
		_ = json.NewDecoder(r.Body).Decode(&ad)
		b.mu.Lock()
		b.paths = append(b.paths, r.URL.Path)
		b.ads = append(b.ads, ad)
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	default:
		http.NotFound(w, r)
	}
}

func setupServer(t *testing.T) (*httptest.Server, *fakeBackend) {
	t.Helper()

	fake := &fakeBackend{}
	api := httptest.NewServer(fake)
	t.Cleanup(api.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := backend.New(log, api.URL, time.Second)
	require.NoError(t, err)

	srv := httptest.NewServer(SetupRouter(log, client))
	t.Cleanup(srv.Close)

	return srv, fake
}

func TestRouter(t *testing.T) {
	srv, fake := setupServer(t)

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("form page", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/ads/new")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `<option value="1">Game A</option>`)
	})

	t.Run("submit ad", func(t *testing.T) {
		form := url.Values{
			"game":            {"42"},
			"name":            {"Ana"},
			"yearsPlaying":    {"3"},
			"discord":         {"Ana#1111"},
			"weekDays":        {"1", "3"},
			"hourStart":       {"08:00"},
			"hourEnd":         {"10:00"},
			"useVoiceChannel": {"on"},
		}

		resp, err := http.PostForm(srv.URL+"/ads", form)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		fake.mu.Lock()
		defer fake.mu.Unlock()

		require.Len(t, fake.ads, 1)
		assert.Equal(t, "/games/42/ads", fake.paths[0])
		assert.Equal(t, map[string]any{
			"name":            "Ana",
			"yearsPlaying":    float64(3),
			"discord":         "Ana#1111",
			"weekDays":        []any{float64(1), float64(3)},
			"hoursStart":      "08:00",
			"hoursEnd":        "10:00",
			"useVoiceChannel": true,
		}, fake.ads[0])
	})
}
