//go:generate mockgen -destination=./mocks/harvest.go . Fetcher,Checker,Mirrorer,HookRunner,Decompressor

package harvest

import (
	"context"

	"github.com/glorpus-work/gleaner/pkg/hooks"
	"github.com/glorpus-work/gleaner/pkg/validate"
)

// Fetcher is the subset of the fetch package used by the harvester.
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
	FetchPattern(ctx context.Context, dirURL, pattern, stagingDir string) ([]string, error)
}

// Checker decides whether a staged download is a plausible product file.
type Checker interface {
	Check(path string) validate.Result
}

// Mirrorer copies a committed granule to the remote object store.
type Mirrorer interface {
	Mirror(ctx context.Context, localAbsPath, relPath string) (string, error)
}

// HookRunner executes dataset lifecycle scripts.
type HookRunner interface {
	Execute(hookType hooks.HookType, ctx hooks.HookContext) error
}

// Decompressor unpacks a single-file compressed granule.
type Decompressor interface {
	Decompress(ctx context.Context, srcPath, destPath string) error
}

// Harvester ties enumeration, fetching, validation and mirroring together
// for a single run.
type Harvester struct {
	Fetcher      Fetcher
	Checker      Checker
	Mirrorer     Mirrorer     // optional; nil disables the remote mirror
	HookRunner   HookRunner   // optional; nil disables lifecycle scripts
	Decompressor Decompressor // optional; required only when the dataset decompresses
	Hooks        Hooks        // Hooks for progress and event notifications
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // enumerating|skipped|fetching|no-match|validating|committed|discarded|mirrored|done|error
	ID    string // granule relative path
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control a harvest run.
type Options struct {
	// BaseDir is the root of the local archive tree.
	BaseDir string

	// StagingDir receives in-flight downloads before they are committed.
	StagingDir string
}

// Summary counts the outcomes of one run.
type Summary struct {
	Enumerated int
	Committed  int
	Skipped    int
	NoMatch    int
	Discarded  int
	Mirrored   int
}
