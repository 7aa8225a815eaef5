// Package harvest runs the per-granule retrieval pipeline: skip granules
// already on disk, fetch the rest into staging, resolve wildcard names
// against the archive listing, validate, and commit valid files into the
// local tree with an optional copy to the remote mirror. Granules are
// processed strictly in cursor order; a failed granule never stops the
// run, only a multi-match wildcard does.
package harvest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/gleaner/internal/logger"
	"github.com/glorpus-work/gleaner/pkg/archive"
	"github.com/glorpus-work/gleaner/pkg/dataset"
	"github.com/glorpus-work/gleaner/pkg/enumerate"
	"github.com/glorpus-work/gleaner/pkg/errors"
	"github.com/glorpus-work/gleaner/pkg/fsutil"
	"github.com/glorpus-work/gleaner/pkg/hooks"
)

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Run walks the iterator and processes every granule. It returns the run
// summary; the error is non-nil only for failures that abort the whole run
// (a multi-match wildcard, a failed commit, a failed pre-harvest hook, or
// context cancellation).
func (h *Harvester) Run(ctx context.Context, it *enumerate.Iterator, spec *dataset.Spec, opts Options) (Summary, error) {
	var sum Summary

	if err := h.runHook(hooks.PreHarvest, spec, enumerate.Granule{}, opts); err != nil {
		return sum, errors.Wrapf(err, "pre-harvest hook for dataset %s", spec.Name)
	}

	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Enumerated++
		emit(h.Hooks, Event{Phase: "enumerating", ID: g.RelPath, Msg: g.URL})

		if err := h.processGranule(ctx, g, spec, opts, &sum); err != nil {
			return sum, err
		}
	}

	if err := h.runHook(hooks.PostHarvest, spec, enumerate.Granule{}, opts); err != nil {
		logger.Warnf("post-harvest hook failed: %v", err)
	}

	emit(h.Hooks, Event{Phase: "done", Msg: fmt.Sprintf("%d committed, %d skipped", sum.Committed, sum.Skipped)})
	return sum, nil
}

// processGranule drives one granule through the pipeline. Recoverable
// outcomes (no match, failed download, invalid file) are counted and
// logged; only run-fatal conditions return an error.
func (h *Harvester) processGranule(ctx context.Context, g enumerate.Granule, spec *dataset.Spec, opts Options, sum *Summary) error {
	if fileExists(g.AbsPath) {
		logger.Debugf("%s already present, skipping", g.RelPath)
		emit(h.Hooks, Event{Phase: "skipped", ID: g.RelPath})
		sum.Skipped++
		return nil
	}

	if err := fsutil.EnsureFileDir(g.AbsPath); err != nil {
		return errors.Wrapf(err, "failed to create target directory for %s", g.RelPath)
	}

	emit(h.Hooks, Event{Phase: "fetching", ID: g.RelPath, Msg: g.URL})

	var staged string
	if g.HasWildcard() {
		resolved, stagedPath, err := h.fetchWildcard(ctx, g, opts, sum)
		if err != nil {
			return err
		}
		if stagedPath == "" {
			return nil // no match or failed listing, already counted
		}
		g = resolved
		staged = stagedPath

		// The resolved name may already be committed from an earlier run.
		if fileExists(g.AbsPath) {
			_ = os.Remove(staged)
			emit(h.Hooks, Event{Phase: "skipped", ID: g.RelPath})
			sum.Skipped++
			return nil
		}
	} else {
		staged = filepath.Join(opts.StagingDir, filepath.Base(g.RelPath))
		if err := h.Fetcher.Fetch(ctx, g.URL, staged); err != nil {
			logger.Infof("unable to download %s: %v", g.URL, err)
			emit(h.Hooks, Event{Phase: "discarded", ID: g.RelPath, Msg: err.Error()})
			sum.Discarded++
			return nil
		}
	}

	emit(h.Hooks, Event{Phase: "validating", ID: g.RelPath})
	if res := h.Checker.Check(staged); !res.OK {
		_ = os.Remove(staged)
		logger.Infof("unable to download %s: %s", g.URL, res.Reason)
		emit(h.Hooks, Event{Phase: "discarded", ID: g.RelPath, Msg: res.Reason})
		sum.Discarded++
		return nil
	}

	if spec.Decompress {
		unpacked, err := h.decompressStaged(ctx, staged, &g)
		if err != nil {
			_ = os.Remove(staged)
			logger.Infof("unable to unpack %s: %v", g.URL, err)
			emit(h.Hooks, Event{Phase: "discarded", ID: g.RelPath, Msg: err.Error()})
			sum.Discarded++
			return nil
		}
		staged = unpacked
	}

	if err := fsutil.Move(staged, g.AbsPath); err != nil {
		return errors.Wrapf(err, "failed to commit %s", g.RelPath)
	}
	emit(h.Hooks, Event{Phase: "committed", ID: g.RelPath})
	sum.Committed++

	if err := h.runHook(hooks.PostGranule, spec, g, opts); err != nil {
		logger.Warnf("post-granule hook failed for %s: %v", g.RelPath, err)
	}

	if h.Mirrorer != nil {
		key, err := h.Mirrorer.Mirror(ctx, g.AbsPath, g.RelPath)
		if err != nil {
			// The local commit stands; the mirror can catch up on a later run.
			logger.Warnf("mirror upload failed for %s: %v", g.RelPath, err)
			emit(h.Hooks, Event{Phase: "error", ID: g.RelPath, Msg: err.Error()})
			return nil
		}
		emit(h.Hooks, Event{Phase: "mirrored", ID: g.RelPath, Msg: key})
		sum.Mirrored++
	}
	return nil
}

// fetchWildcard resolves a wildcard granule against the archive listing.
// It returns the resolved granule and the staged file path; an empty path
// means the granule produced no usable download. More than one match is
// ambiguous and aborts the run.
func (h *Harvester) fetchWildcard(ctx context.Context, g enumerate.Granule, opts Options, sum *Summary) (enumerate.Granule, string, error) {
	dirURL, pattern := g.SplitWildcardURL()
	matches, err := h.Fetcher.FetchPattern(ctx, dirURL, pattern, opts.StagingDir)
	if err != nil {
		logger.Infof("unable to download %s: %v", g.URL, err)
		emit(h.Hooks, Event{Phase: "discarded", ID: g.RelPath, Msg: err.Error()})
		sum.Discarded++
		return g, "", nil
	}

	switch len(matches) {
	case 0:
		logger.Infof("no remote file matches %s", g.URL)
		emit(h.Hooks, Event{Phase: "no-match", ID: g.RelPath, Msg: g.URL})
		sum.NoMatch++
		return g, "", nil
	case 1:
		staged := matches[0]
		return g.WithResolvedName(filepath.Base(staged)), staged, nil
	default:
		for _, m := range matches {
			_ = os.Remove(m)
		}
		return g, "", errors.Wrapf(errors.ErrMultipleMatches,
			"%d remote files match %s", len(matches), g.URL)
	}
}

// decompressStaged unpacks the staged granule next to itself and rewrites
// the granule's local paths to drop the compression extension.
func (h *Harvester) decompressStaged(ctx context.Context, staged string, g *enumerate.Granule) (string, error) {
	ext := archive.CompressionExt(staged)
	if ext == "" {
		return staged, nil
	}
	if h.Decompressor == nil {
		return "", fmt.Errorf("dataset requires decompression but none is configured")
	}

	unpacked := strings.TrimSuffix(staged, ext)
	if err := h.Decompressor.Decompress(ctx, staged, unpacked); err != nil {
		return "", err
	}
	_ = os.Remove(staged)

	basename := filepath.Base(unpacked)
	*g = g.WithResolvedName(basename)
	return unpacked, nil
}

func (h *Harvester) runHook(hookType hooks.HookType, spec *dataset.Spec, g enumerate.Granule, opts Options) error {
	if h.HookRunner == nil {
		return nil
	}
	return h.HookRunner.Execute(hookType, hooks.HookContext{
		DatasetName: spec.Name,
		BaseDir:     opts.BaseDir,
		GranuleURL:  g.URL,
		LocalPath:   g.AbsPath,
		RelPath:     g.RelPath,
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
