// Package enumerate walks a resolved date range at the dataset's time
// resolution and yields one granule candidate per cursor value. The
// iterator is lazy, finite and restartable: a fresh iterator built from the
// same range reproduces the identical sequence.
package enumerate

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/gleaner/pkg/daterange"
	"github.com/glorpus-work/gleaner/pkg/dataset"
	"github.com/glorpus-work/gleaner/pkg/errors"
	"github.com/glorpus-work/gleaner/pkg/template"
	"github.com/glorpus-work/gleaner/pkg/timestep"
)

// Granule identifies one dataset file for a single time step. Transient:
// it exists only within one pipeline iteration and may be revised once if
// wildcard resolution changes the filename.
type Granule struct {
	// URL is the remote location, possibly containing a wildcard in its
	// final segment.
	URL string

	// RelPath is the local path relative to the harvest base directory.
	RelPath string

	// AbsPath is RelPath joined with the base directory.
	AbsPath string

	// At is the cursor value the granule was enumerated for.
	At time.Time
}

// HasWildcard reports whether the remote filename still needs to be
// resolved by a listing fetch.
func (g Granule) HasWildcard() bool {
	return strings.Contains(g.URL, "*")
}

// SplitWildcardURL splits a wildcard URL into the parent directory (with a
// trailing slash) and the filename pattern.
func (g Granule) SplitWildcardURL() (dirURL, pattern string) {
	idx := strings.LastIndex(g.URL, "/")
	return g.URL[:idx+1], g.URL[idx+1:]
}

// WithResolvedName returns a copy of the granule with the local paths
// rewritten to the concrete basename a wildcard match produced.
func (g Granule) WithResolvedName(basename string) Granule {
	resolved := g
	resolved.RelPath = filepath.Join(filepath.Dir(g.RelPath), basename)
	resolved.AbsPath = filepath.Join(filepath.Dir(g.AbsPath), basename)
	return resolved
}

// Iterator produces granules on demand in strictly increasing cursor order.
type Iterator struct {
	rng           daterange.Range
	step          time.Duration
	baseDir       string
	urlTemplate   string
	localTemplate string
	cursor        time.Time
}

// New builds an iterator over rng for the given dataset. The local path
// template must be relative and a wildcard may only appear in the final
// segment of the URL template; either violation is fatal before any
// network activity.
func New(rng daterange.Range, step timestep.Step, baseDir string, spec *dataset.Spec) (*Iterator, error) {
	if strings.HasPrefix(spec.LocalPathTemplate, "/") {
		return nil, errors.Wrapf(errors.ErrAbsoluteTemplate,
			"local_path_template %q must be relative to %s", spec.LocalPathTemplate, baseDir)
	}
	if idx := strings.LastIndex(spec.URLTemplate, "/"); strings.Contains(spec.URLTemplate[:idx+1], "*") {
		return nil, errors.Wrapf(errors.ErrWildcardInDir, "in %q", spec.URLTemplate)
	}

	return &Iterator{
		rng:           rng,
		step:          step.Duration(),
		baseDir:       baseDir,
		urlTemplate:   spec.URLTemplate,
		localTemplate: spec.LocalPathTemplate,
		cursor:        rng.Start,
	}, nil
}

// Next yields the granule for the current cursor and advances it. The loop
// is inclusive of the range end: ok is false only once the cursor has
// passed it.
func (it *Iterator) Next() (Granule, bool) {
	if it.cursor.After(it.rng.End) {
		return Granule{}, false
	}

	relPath := template.Expand(it.localTemplate, it.cursor)
	g := Granule{
		URL:     template.Expand(it.urlTemplate, it.cursor),
		RelPath: relPath,
		AbsPath: filepath.Join(it.baseDir, relPath),
		At:      it.cursor,
	}
	it.cursor = it.cursor.Add(it.step)
	return g, true
}

// Reset rewinds the iterator to the start of the range.
func (it *Iterator) Reset() {
	it.cursor = it.rng.Start
}

// Count returns the number of granules the iterator will yield:
// floor((end-start)/step) + 1.
func (it *Iterator) Count() int {
	return int(it.rng.End.Sub(it.rng.Start)/it.step) + 1
}
