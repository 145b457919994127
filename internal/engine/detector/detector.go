// Package detector implements the change-detection gate run before the
// resolver: it compares a dependency manifest against a previously computed
// lock snapshot and reports precisely which entries must be re-resolved.
//
// The engine is a pure, synchronous computation over two immutable
// aggregates. Per-group work is independent, so groups are evaluated
// concurrently and the results merged deterministically.
package detector

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options control a detection run.
type Options struct {
	// Strict tests declared version constraints exactly as written.
	// Otherwise constraints are widened to also accept pre-releases, so a
	// locked pre-release does not by itself force re-resolution.
	Strict bool
}

// Detector compares manifests against lock snapshots. It holds no state
// across runs; every invocation recomputes from scratch.
type Detector struct {
	versions ports.VersionPredicate
}

// New creates a Detector using the given version predicate.
func New(versions ports.VersionPredicate) *Detector {
	return &Detector{versions: versions}
}

// groupResult carries one group's detection output back to the merge step.
type groupResult struct {
	name       string
	packages   map[string]struct{}
	remote     []domain.RemoteFileRef
	inManifest bool
	changed    bool
}

// Detect compares the manifest against the lock snapshot and returns the
// change verdict. The lock snapshot may be nil, in which case everything the
// manifest declares is an addition. Neither input is mutated.
func (d *Detector) Detect(
	ctx context.Context,
	manifest *domain.Manifest,
	lock *domain.LockSnapshot,
	graph ports.LockGraph,
	opts Options,
) (*domain.ChangeReport, error) {
	names := groupNames(manifest, lock)
	results := make([]groupResult, len(names))

	eg, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			res, err := d.detectGroup(name, manifest, lock, graph, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, zerr.Wrap(err, "change detection failed")
	}

	packages := make(map[string]map[string]struct{})
	remoteFiles := make(map[string][]domain.RemoteFileRef)
	changedGroups := make(map[string]bool, len(results))
	anyChanged := false
	for _, res := range results {
		if len(res.packages) > 0 {
			packages[res.name] = res.packages
		}
		if len(res.remote) > 0 {
			remoteFiles[res.name] = res.remote
		}
		changedGroups[res.name] = res.changed
		// Groups present only in the lock snapshot never force the
		// aggregate boolean; their removal still shows in the detail
		// sets.
		if res.inManifest && res.changed {
			anyChanged = true
		}
	}

	return domain.NewChangeReport(
		packages,
		remoteFiles,
		changedGroups,
		anyChanged,
		preferredVersions(manifest, lock),
	), nil
}

// detectGroup runs the full detection pipeline for a single group.
func (d *Detector) detectGroup(
	name string,
	manifest *domain.Manifest,
	lock *domain.LockSnapshot,
	graph ports.LockGraph,
	opts Options,
) (groupResult, error) {
	var mg *domain.Group
	if g, ok := manifest.Group(name); ok {
		mg = &g
	}
	var lg *domain.LockGroup
	if lock != nil {
		if g, ok := lock.Group(name); ok {
			lg = &g
		}
	}

	pkgs, err := d.requirementChanges(name, mg, lg, graph, opts.Strict)
	if err != nil {
		return groupResult{}, err
	}
	remote := remoteFileChanges(mg, lg)

	return groupResult{
		name:       name,
		packages:   pkgs,
		remote:     remote,
		inManifest: mg != nil,
		changed:    optionsChanged(mg, lg) || len(pkgs) > 0 || len(remote) > 0,
	}, nil
}

// optionsChanged compares the group-level options of the two sides. A group
// missing on either side counts as changed. An auto-detect framework
// restriction in the manifest coerces the lock side to auto-detect first:
// auto-detect is equivalent regardless of what was last concretely resolved.
func optionsChanged(mg *domain.Group, lg *domain.LockGroup) bool {
	if mg == nil || lg == nil {
		return true
	}
	current := mg.Options
	recorded := lg.Options
	if current.FrameworkRestriction.Auto {
		recorded.FrameworkRestriction = domain.AutoDetectRestriction()
	}
	return !current.Equal(recorded)
}
