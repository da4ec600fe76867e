package updater

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultRepo   = "ryan-rushton/textkit"
	DefaultBinary = "textkit"
)

type release struct {
	TagName string `json:"tag_name"`
}

// Updater checks GitHub releases and swaps the running binary for a newer one.
type Updater struct {
	Repo   string
	Binary string
	// APIBase and DownloadBase default to GitHub; tests point them elsewhere.
	APIBase      string
	DownloadBase string
	Client       *http.Client
	Log          *zap.Logger
	// Executable returns the path to replace. Defaults to os.Executable.
	Executable func() (string, error)
}

func New(log *zap.Logger) *Updater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Updater{
		Repo:         DefaultRepo,
		Binary:       DefaultBinary,
		APIBase:      "https://api.github.com",
		DownloadBase: "https://github.com",
		Client:       &http.Client{Timeout: 30 * time.Second},
		Log:          log.Named("updater"),
		Executable:   os.Executable,
	}
}

// LatestRelease fetches the latest release tag.
func (u *Updater) LatestRelease(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", u.APIBase, u.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github API returned status %d", resp.StatusCode)
	}

	var r release
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decoding release response: %w", err)
	}
	if r.TagName == "" {
		return "", errors.New("empty tag_name in release response")
	}

	u.Log.Debug("latest release", zap.String("tag", r.TagName))
	return r.TagName, nil
}

// IsNewer returns true if latest is newer than current.
// Returns false if current is "dev".
func IsNewer(current, latest string) bool {
	if current == "dev" {
		return false
	}
	return normalizeVersion(latest) > normalizeVersion(current)
}

// normalizeVersion pads each dot-separated segment to 4 digits for
// lexicographic comparison (e.g. "2025.1.3" → "2025.0001.0003").
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	for i, p := range parts {
		parts[i] = fmt.Sprintf("%04s", p)
	}
	return strings.Join(parts, ".")
}

// AssetName is the GoReleaser archive name for the given platform.
func (u *Updater) AssetName(goos, goarch string) string {
	osName := goos
	archName := goarch
	switch goarch {
	case "amd64":
		archName = "x86_64"
	case "386":
		archName = "i386"
	}
	switch goos {
	case "darwin":
		osName = "Darwin"
	case "linux":
		osName = "Linux"
	case "windows":
		osName = "Windows"
	}
	return fmt.Sprintf("%s_%s_%s.tar.gz", u.Binary, osName, archName)
}

// DownloadAndReplace downloads the release archive for tag and replaces the
// current executable with the binary inside it.
func (u *Updater) DownloadAndReplace(ctx context.Context, tag string) error {
	execPath, err := u.Executable()
	if err != nil {
		return fmt.Errorf("finding executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolving symlinks: %w", err)
	}

	url := fmt.Sprintf("%s/%s/releases/download/%s/%s",
		u.DownloadBase, u.Repo, tag, u.AssetName(runtime.GOOS, runtime.GOARCH))
	u.Log.Info("downloading release", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := u.Client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	binary, err := u.extractBinary(resp.Body)
	if err != nil {
		return fmt.Errorf("extracting binary: %w", err)
	}

	return replaceFile(execPath, binary)
}

// replaceFile writes data next to path and renames it into place so the
// swap is atomic.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+"-update-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(0o755); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing executable: %w", err)
	}
	return nil
}

// extractBinary reads a tar.gz stream and returns the contents of the
// binary named u.Binary.
func (u *Updater) extractBinary(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar: %w", err)
		}

		if filepath.Base(header.Name) == u.Binary && header.Typeflag == tar.TypeReg {
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("reading binary from tar: %w", err)
			}
			return data, nil
		}
	}

	return nil, fmt.Errorf("%s binary not found in archive", u.Binary)
}
