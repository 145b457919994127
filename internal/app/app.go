// Package app implements the application layer for relock.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/detector"
	"go.trai.ch/zerr"
)

// App represents the main application logic: load the manifest and the lock
// snapshot, run change detection, and report the verdict.
type App struct {
	manifests    ports.ManifestLoader
	locks        ports.LockStore
	fingerprints ports.Fingerprinter
	detector     *detector.Detector
	log          ports.Logger
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	locks ports.LockStore,
	fingerprints ports.Fingerprinter,
	det *detector.Detector,
	log ports.Logger,
) *App {
	return &App{
		manifests:    manifests,
		locks:        locks,
		fingerprints: fingerprints,
		detector:     det,
		log:          log,
	}
}

// CheckOptions control a Check invocation.
type CheckOptions struct {
	// ManifestPath is the manifest file location.
	ManifestPath string

	// LockPath is the lock snapshot location. A missing snapshot means
	// everything the manifest declares is an addition.
	LockPath string

	// Strict tests version constraints exactly as declared instead of
	// widening them to accept pre-releases.
	Strict bool
}

// Check loads both aggregates and runs the change detector. When the lock
// snapshot records the fingerprint of the manifest it was resolved from and
// the current manifest still matches, detection is skipped entirely.
func (a *App) Check(ctx context.Context, opts CheckOptions) (*domain.ChangeReport, error) {
	man, err := a.manifests.Load(opts.ManifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	lock, err := a.locks.Load(opts.LockPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lock snapshot")
	}
	if lock == nil {
		a.log.Info("no lock snapshot found, full resolution required")
	}

	if report, ok := a.fastPath(man, lock, opts); ok {
		return report, nil
	}

	var graph ports.LockGraph
	if lock != nil {
		graph = a.locks.Graph(lock)
	}

	report, err := a.detector.Detect(ctx, man, lock, graph, detector.Options{Strict: opts.Strict})
	if err != nil {
		return nil, err
	}

	if report.Any() {
		a.log.Info(fmt.Sprintf("detected %d package and %d remote file changes",
			len(report.Packages()), len(report.RemoteFiles())))
	} else {
		a.log.Info("lock snapshot is up to date")
	}
	return report, nil
}

// fastPath short-circuits detection when the manifest content is unchanged
// since the snapshot was resolved. A fingerprint failure falls back to full
// detection rather than failing the check.
func (a *App) fastPath(man *domain.Manifest, lock *domain.LockSnapshot, opts CheckOptions) (*domain.ChangeReport, bool) {
	if lock == nil || lock.ManifestFingerprint == "" {
		return nil, false
	}
	current, err := a.fingerprints.FingerprintFile(opts.ManifestPath)
	if err != nil {
		a.log.Warn("manifest fingerprint failed, running full detection")
		return nil, false
	}
	if current != lock.ManifestFingerprint {
		return nil, false
	}

	a.log.Info("manifest fingerprint unchanged, reusing lock snapshot")
	changedGroups := make(map[string]bool, len(man.Groups))
	for name := range man.Groups {
		changedGroups[name] = false
	}
	return domain.NewChangeReport(nil, nil, changedGroups, false, nil), true
}
