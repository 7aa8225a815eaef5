package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/glorpus-work/gleaner/pkg/errors"
	"github.com/glorpus-work/gleaner/pkg/fsutil"
)

// hrefPattern extracts link targets from directory listing pages. Archive
// servers expose their date-partitioned trees as plain HTML indexes.
var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

// HTTPFetcher downloads granules over HTTP(S). It is intentionally
// minimal: no retries and no concurrency, matching the strictly
// sequential pipeline.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	auth      Authenticator
}

// NewHTTPFetcher creates a fetcher with the given timeout and user agent.
// auth may be nil for anonymous archives.
func NewHTTPFetcher(timeout time.Duration, userAgent string, auth Authenticator) *HTTPFetcher {
	if userAgent == "" {
		userAgent = "gleaner/1.0"
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		auth:      auth,
	}
}

// Fetch downloads a single resource to destPath via a temp file in the
// destination directory.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL, destPath string) error {
	resp, err := f.doRequest(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := writeBodyToTemp(resp.Body, destPath)
	if err != nil {
		return err
	}
	if err := fsutil.Move(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not finalize download")
	}
	return nil
}

// FetchPattern retrieves the listing at dirURL, filters entries by the
// filename pattern and downloads each match into stagingDir.
func (f *HTTPFetcher) FetchPattern(ctx context.Context, dirURL, pattern, stagingDir string) ([]string, error) {
	names, err := f.listDirectory(ctx, dirURL)
	if err != nil {
		return nil, err
	}

	var fetched []string
	for _, name := range names {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return nil, errors.Wrapf(err, "bad filename pattern %q", pattern)
		}
		if !ok {
			continue
		}
		destPath := filepath.Join(stagingDir, name)
		if err := f.Fetch(ctx, dirURL+name, destPath); err != nil {
			return nil, err
		}
		fetched = append(fetched, destPath)
	}
	return fetched, nil
}

// listDirectory scrapes the filenames out of an HTML index page. Entries
// pointing at subdirectories or other hosts are dropped.
func (f *HTTPFetcher) listDirectory(ctx context.Context, dirURL string) ([]string, error) {
	resp, err := f.doRequest(ctx, dirURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read directory listing")
	}

	seen := make(map[string]bool)
	var names []string
	for _, m := range hrefPattern.FindAllStringSubmatch(string(body), -1) {
		href := m[1]
		if strings.HasSuffix(href, "/") || strings.Contains(href, "://") {
			continue
		}
		unescaped, err := url.PathUnescape(href)
		if err != nil {
			continue
		}
		name := path.Base(unescaped)
		if name == "." || name == ".." || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

func (f *HTTPFetcher) doRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.auth != nil {
		if err := f.auth.Apply(req); err != nil {
			return nil, errors.Wrap(err, "failed to apply authentication")
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrFetchFailed, err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, errors.Wrapf(errors.ErrFetchFailed, "unexpected status code %d for %s", resp.StatusCode, rawURL)
	}
	return resp, nil
}

func writeBodyToTemp(body io.Reader, destPath string) (string, error) {
	if err := fsutil.EnsureFileDir(destPath); err != nil {
		return "", errors.Wrap(err, "could not create staging dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(destPath), "dl-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}
