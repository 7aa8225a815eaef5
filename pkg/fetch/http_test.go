package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/gleaner/pkg/dataset"
	"github.com/glorpus-work/gleaner/pkg/errors"
)

func TestFetch(t *testing.T) {
	t.Run("successful download", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("granule bytes"))
		}))
		defer server.Close()

		dest := filepath.Join(t.TempDir(), "staging", "a.nc")
		f := NewHTTPFetcher(5*time.Second, "", nil)
		require.NoError(t, f.Fetch(context.Background(), server.URL+"/a.nc", dest))

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "granule bytes", string(content))
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		dest := filepath.Join(t.TempDir(), "a.nc")
		f := NewHTTPFetcher(5*time.Second, "", nil)
		err := f.Fetch(context.Background(), server.URL+"/a.nc", dest)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrFetchFailed)

		_, statErr := os.Stat(dest)
		assert.True(t, os.IsNotExist(statErr), "no partial file may remain")
	})

	t.Run("sets user agent and auth", func(t *testing.T) {
		var gotUA, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte("x"))
		}))
		defer server.Close()

		dest := filepath.Join(t.TempDir(), "a.nc")
		f := NewHTTPFetcher(5*time.Second, "gleaner-test/9.9", BearerAuth{Token: "tok123"})
		require.NoError(t, f.Fetch(context.Background(), server.URL+"/a.nc", dest))
		assert.Equal(t, "gleaner-test/9.9", gotUA)
		assert.Equal(t, "Bearer tok123", gotAuth)
	})
}

const listingPage = `<html><body>
<a href="../">Parent Directory</a>
<a href="subdir/">subdir/</a>
<a href="prod_20240101_v1.nc">prod_20240101_v1.nc</a>
<a href="prod_20240101_v1.nc">prod_20240101_v1.nc</a>
<a href="other_20240101.dat">other_20240101.dat</a>
<a href="https://elsewhere.example.com/prod_x.nc">offsite</a>
</body></html>`

func newListingServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/2024/001/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	})
	mux.HandleFunc("/2024/001/prod_20240101_v1.nc", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("versioned granule"))
	})
	mux.HandleFunc("/2024/001/other_20240101.dat", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("other"))
	})
	return httptest.NewServer(mux)
}

func TestFetchPattern(t *testing.T) {
	t.Run("single match downloaded", func(t *testing.T) {
		server := newListingServer(t)
		defer server.Close()

		staging := t.TempDir()
		f := NewHTTPFetcher(5*time.Second, "", nil)
		matches, err := f.FetchPattern(context.Background(), server.URL+"/2024/001/", "prod_*.nc", staging)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, filepath.Join(staging, "prod_20240101_v1.nc"), matches[0])

		content, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		assert.Equal(t, "versioned granule", string(content))
	})

	t.Run("no matches", func(t *testing.T) {
		server := newListingServer(t)
		defer server.Close()

		f := NewHTTPFetcher(5*time.Second, "", nil)
		matches, err := f.FetchPattern(context.Background(), server.URL+"/2024/001/", "missing_*.nc", t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("listing fetch failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		f := NewHTTPFetcher(5*time.Second, "", nil)
		_, err := f.FetchPattern(context.Background(), server.URL+"/", "prod_*.nc", t.TempDir())
		assert.ErrorIs(t, err, errors.ErrFetchFailed)
	})
}

func TestAuthFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     dataset.AuthConfig
		want    Authenticator
		wantErr bool
	}{
		{name: "none", cfg: dataset.AuthConfig{}, want: nil},
		{
			name: "basic",
			cfg:  dataset.AuthConfig{Type: "basic", Username: "u", Password: "p"},
			want: BasicAuth{Username: "u", Password: "p"},
		},
		{
			name: "bearer",
			cfg:  dataset.AuthConfig{Type: "bearer", Token: "tok"},
			want: BearerAuth{Token: "tok"},
		},
		{
			name: "header",
			cfg:  dataset.AuthConfig{Type: "header", Headers: map[string]string{"X-Api-Key": "k"}},
			want: HeaderAuth{Headers: map[string]string{"X-Api-Key": "k"}},
		},
		{name: "unknown", cfg: dataset.AuthConfig{Type: "ntlm"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AuthFromConfig(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasicAuthApply(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://archive.example.com/a.nc", http.NoBody)
	require.NoError(t, err)
	require.NoError(t, BasicAuth{Username: "user", Password: "pass"}.Apply(req))

	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "user", user)
	assert.Equal(t, "pass", pass)
}
