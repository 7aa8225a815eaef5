// Package testutil provides helpers for harvester tests that need a live
// archive server.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// ArchiveServer serves a fake date-partitioned archive tree over HTTP.
// http.FileServer generates the directory listing pages the harvester's
// wildcard resolution scrapes, so both exact and pattern fetches work
// against it.
type ArchiveServer struct {
	Server *httptest.Server
	Root   string
}

// NewArchiveServer creates a server backed by a temporary directory. The
// server is shut down when the test finishes.
func NewArchiveServer(t *testing.T) *ArchiveServer {
	t.Helper()

	root := t.TempDir()
	server := httptest.NewServer(http.FileServer(http.Dir(root)))
	t.Cleanup(server.Close)

	return &ArchiveServer{Server: server, Root: root}
}

// AddGranule places a file into the archive tree under relPath.
func (s *ArchiveServer) AddGranule(t *testing.T, relPath string, content []byte) {
	t.Helper()

	path := filepath.Join(s.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create archive directory: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write archive granule: %v", err)
	}
}

// URL returns the base URL of the archive.
func (s *ArchiveServer) URL() string {
	return s.Server.URL
}
