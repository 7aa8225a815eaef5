// Package validate decides whether a staged download is a plausible
// product file before it is committed into the local archive tree.
// Validation dispatches on the file extension: NetCDF files get a header
// check, everything else is assumed valid.
package validate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Result is the outcome of a validity check. Reason is empty when OK.
type Result struct {
	OK     bool
	Reason string
}

// Checker is the validity capability the harvest pipeline depends on.
type Checker interface {
	Check(path string) Result
}

// netCDF magic numbers: the classic CDF formats and the HDF5 superblock
// used by netCDF-4.
var (
	magicCDF1 = []byte("CDF\x01")
	magicCDF2 = []byte("CDF\x02")
	magicCDF5 = []byte("CDF\x05")
	magicHDF5 = []byte("\x89HDF\r\n\x1a\n")
)

// ExtensionChecker is the built-in Checker. Files with unrecognized
// extensions are not inspected.
type ExtensionChecker struct{}

// New creates the built-in checker.
func New() *ExtensionChecker {
	return &ExtensionChecker{}
}

// Check validates path according to its extension.
func (c *ExtensionChecker) Check(path string) Result {
	switch filepath.Ext(path) {
	case ".nc":
		return checkNetCDF(path)
	default:
		// Validation is not supported for this format. Assume valid.
		return Result{OK: true}
	}
}

// checkNetCDF reads the file header and accepts the classic CDF variants
// and the HDF5-based netCDF-4 format. An HTML error page saved by the
// archive instead of a product file fails here.
func checkNetCDF(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Reason: fmt.Sprintf("cannot open: %v", err)}
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, len(magicHDF5))
	if _, err := io.ReadFull(f, header); err != nil {
		return Result{Reason: "file too short to be a NetCDF file"}
	}

	if bytes.HasPrefix(header, magicCDF1) ||
		bytes.HasPrefix(header, magicCDF2) ||
		bytes.HasPrefix(header, magicCDF5) ||
		bytes.Equal(header, magicHDF5) {
		return Result{OK: true}
	}
	return Result{Reason: "missing NetCDF magic number"}
}
