package updater

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tarball(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func testUpdater(srv *httptest.Server) *Updater {
	u := New(nil)
	u.APIBase = srv.URL
	u.DownloadBase = srv.URL
	u.Client = srv.Client()
	return u
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"v1.0.0", "v1.0.1", true},
		{"v1.2.0", "v1.10.0", true},
		{"v2025.1.3", "v2025.1.3", false},
		{"v1.1.0", "v1.0.9", false},
		{"dev", "v9.9.9", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNewer(tt.current, tt.latest), "IsNewer(%q, %q)", tt.current, tt.latest)
	}
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/ryan-rushton/textkit/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0"}`))
	}))
	defer srv.Close()

	tag, err := testUpdater(srv).LatestRelease(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", tag)
}

func TestLatestRelease_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad status", http.StatusForbidden, `{}`},
		{"empty tag", http.StatusOK, `{"tag_name":""}`},
		{"bad json", http.StatusOK, `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := testUpdater(srv).LatestRelease(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestAssetName(t *testing.T) {
	u := New(nil)
	assert.Equal(t, "textkit_Linux_x86_64.tar.gz", u.AssetName("linux", "amd64"))
	assert.Equal(t, "textkit_Darwin_arm64.tar.gz", u.AssetName("darwin", "arm64"))
}

func TestDownloadAndReplace(t *testing.T) {
	archive := tarball(t, "textkit", []byte("new binary"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/ryan-rushton/textkit/releases/download/v1.4.0/" + New(nil).AssetName(runtime.GOOS, runtime.GOARCH)
		if r.URL.Path != want {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	exe := filepath.Join(t.TempDir(), "textkit")
	require.NoError(t, os.WriteFile(exe, []byte("old binary"), 0o755))

	u := testUpdater(srv)
	u.Executable = func() (string, error) { return exe, nil }

	require.NoError(t, u.DownloadAndReplace(context.Background(), "v1.4.0"))

	data, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, "new binary", string(data))
}

func TestExtractBinary_Missing(t *testing.T) {
	u := New(nil)
	_, err := u.extractBinary(bytes.NewReader(tarball(t, "other", []byte("x"))))
	assert.ErrorContains(t, err, "textkit binary not found")
}
