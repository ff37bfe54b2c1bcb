package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/reva-widget/internal/config"
	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, store *settings.Store) SparcAdapter {
	t.Helper()
	a, err := NewSparcAdapter(store, config.Sparc{RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewSparcAdapter_NilSource(t *testing.T) {
	a, err := NewSparcAdapter(nil, config.Sparc{}, logger.Nop())
	assert.Nil(t, a)
	assert.Error(t, err)
}

func TestGet_ForwardsPathQueryAndReply(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	store := settings.NewStore(settings.Settings{settings.KeySparcAPI: srv.URL + "/"}, nil)
	a := newTestAdapter(t, store)

	resp, err := a.Get(context.Background(), "/search/datasets", url.Values{"q": {"heart"}})

	require.NoError(t, err)
	assert.Equal(t, "/search/datasets", gotPath)
	assert.Equal(t, "heart", gotQuery)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}

// TestGet_ReadsBaseURLOnEveryCall verifies that a configure call between two
// requests redirects the second one.
func TestGet_ReadsBaseURLOnEveryCall(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("first"))
	}))
	defer first.Close()
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("second"))
	}))
	defer second.Close()

	store := settings.NewStore(settings.Settings{settings.KeySparcAPI: first.URL}, nil)
	a := newTestAdapter(t, store)

	resp, err := a.Get(context.Background(), "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", string(resp.Body))

	store.Configure(settings.Options{settings.KeySparcAPI: second.URL})

	resp, err = a.Get(context.Background(), "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", string(resp.Body))
}

func TestGet_BaseURLErrors(t *testing.T) {
	tests := []struct {
		name    string
		sparc   any
		wantErr error
	}{
		{name: "missing", sparc: nil, wantErr: ErrSparcAPINotConfigured},
		{name: "blank", sparc: "  ", wantErr: ErrSparcAPINotConfigured},
		{name: "not a string", sparc: 8000, wantErr: ErrSparcAPINotConfigured},
		{name: "relative", sparc: "/api", wantErr: ErrInvalidSparcAPI},
		{name: "unsupported scheme", sparc: "ftp://sparc.example.org", wantErr: ErrInvalidSparcAPI},
		{name: "unparseable", sparc: "http://[::1", wantErr: ErrInvalidSparcAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := settings.Settings{}
			if tt.sparc != nil {
				defaults[settings.KeySparcAPI] = tt.sparc
			}
			a := newTestAdapter(t, settings.NewStore(defaults, nil))

			_, err := a.Get(context.Background(), "x", nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGet_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	a := newTestAdapter(t, settings.NewStore(settings.Settings{settings.KeySparcAPI: base}, nil))

	_, err := a.Get(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrSparcUnreachable)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" https://sparc.example.org/api/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://sparc.example.org/api", got)
}

func TestGet_PathStaysUnderBase(t *testing.T) {
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
	}))
	defer srv.Close()

	store := settings.NewStore(settings.Settings{settings.KeySparcAPI: srv.URL + "/api"}, nil)
	a := newTestAdapter(t, store)

	tests := []struct {
		name     string
		path     string
		wantPath string
		wantErr  bool
	}{
		{name: "plain", path: "datasets/1", wantPath: "/api/datasets/1"},
		{name: "inner dot segments", path: "datasets/./x/../1", wantPath: "/api/datasets/1"},
		{name: "trailing slash kept", path: "datasets/", wantPath: "/api/datasets/"},
		{name: "parent", path: "../admin/secret", wantErr: true},
		{name: "parent after segment", path: "a/../../admin", wantErr: true},
		{name: "rooted parent", path: "/../admin", wantErr: true},
		{name: "encoded parent", path: "%2e%2e/admin", wantErr: true},
		{name: "bare parent", path: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPaths = nil

			_, err := a.Get(context.Background(), tt.path, nil)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSparcPath)
				assert.Empty(t, gotPaths)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantPath}, gotPaths)
		})
	}
}
