// Package archive handles decompression of staged granules. Some archives
// publish granules compressed; when a dataset opts in, the compressed
// payload is unpacked before the commit into the local tree.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mholt/archives"

	"github.com/glorpus-work/gleaner/pkg/fsutil"
)

// Manager handles granule decompression.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// CompressionExt returns the recognized compression extension of name, or
// an empty string. Only single-file compression formats count; a .tar.gz
// bundle is not a granule.
func CompressionExt(name string) string {
	ext := filepath.Ext(name)
	switch ext {
	case ".gz", ".bz2", ".xz", ".zst":
		if filepath.Ext(name[:len(name)-len(ext)]) == ".tar" {
			return ""
		}
		return ext
	default:
		return ""
	}
}

// Decompress unpacks the single-file compressed granule at srcPath into
// destPath. The write goes through a temp file so destPath never holds a
// partial payload.
func (m *Manager) Decompress(ctx context.Context, srcPath, destPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open compressed granule %s: %w", srcPath, err)
	}
	defer func() { _ = f.Close() }()

	format, stream, err := archives.Identify(ctx, filepath.Base(srcPath), f)
	if err != nil {
		return fmt.Errorf("failed to identify compression of %s: %w", srcPath, err)
	}
	decomp, ok := format.(archives.Decompressor)
	if !ok {
		return fmt.Errorf("%s is not a single-file compressed granule", srcPath)
	}

	rc, err := decomp.OpenReader(stream)
	if err != nil {
		return fmt.Errorf("failed to open decompressor for %s: %w", srcPath, err)
	}
	defer func() { _ = rc.Close() }()

	if err := fsutil.EnsureFileDir(destPath); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", destPath, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(destPath), "unpack-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", destPath, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, rc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to decompress %s: %w", srcPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for %s: %w", destPath, err)
	}

	if err := fsutil.Move(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize decompressed granule %s: %w", destPath, err)
	}
	return nil
}
