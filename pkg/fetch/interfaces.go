//go:generate mockgen -destination=./mocks/fetch.go . Fetcher

// Package fetch retrieves remote granules over HTTP into a staging
// directory. It supports exact single-resource retrieval and listing-style
// retrieval filtered by a filename pattern, for archives that publish files
// whose exact names are not known in advance.
package fetch

import "context"

// Fetcher is the retrieval capability the harvest pipeline depends on.
type Fetcher interface {
	// Fetch downloads a single resource to destPath. The write goes
	// through a temp file so destPath never holds a partial body.
	Fetch(ctx context.Context, url, destPath string) error

	// FetchPattern lists the directory at dirURL and downloads every entry
	// whose filename matches pattern into stagingDir. It returns the local
	// paths of the downloaded files; an empty result means the archive has
	// no matching entry.
	FetchPattern(ctx context.Context, dirURL, pattern, stagingDir string) ([]string, error)
}
