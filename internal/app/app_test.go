package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/relock/internal/engine/detector"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	manifests    *mocks.MockManifestLoader
	locks        *mocks.MockLockStore
	fingerprints *mocks.MockFingerprinter
	versions     *mocks.MockVersionPredicate
	logger       *mocks.MockLogger
	app          *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		manifests:    mocks.NewMockManifestLoader(ctrl),
		locks:        mocks.NewMockLockStore(ctrl),
		fingerprints: mocks.NewMockFingerprinter(ctrl),
		versions:     mocks.NewMockVersionPredicate(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.manifests, f.locks, f.fingerprints, detector.New(f.versions), f.logger)
	return f
}

func manifestFixture() *domain.Manifest {
	return &domain.Manifest{Groups: map[string]domain.Group{
		"main": {
			Name: domain.NewInternedString("main"),
			Requirements: []domain.Requirement{{
				Name:       domain.NewInternedString("FAKE"),
				Constraint: ">= 3.0",
			}},
		},
	}}
}

func TestApp_Check_NoLockSnapshot(t *testing.T) {
	f := newFixture(t)
	f.manifests.EXPECT().Load("relock.yaml").Return(manifestFixture(), nil)
	f.locks.EXPECT().Load("relock.lock").Return(nil, nil)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	report, err := f.app.Check(context.Background(), app.CheckOptions{
		ManifestPath: "relock.yaml",
		LockPath:     "relock.lock",
	})
	require.NoError(t, err)

	assert.True(t, report.Any())
	assert.Equal(t, []string{"FAKE"}, report.PackagesInGroup("main"))
}

func TestApp_Check_FingerprintFastPath(t *testing.T) {
	f := newFixture(t)
	lock := &domain.LockSnapshot{
		ManifestFingerprint: "xxh64:00000000deadbeef",
		Groups:              map[string]domain.LockGroup{"main": {Name: domain.NewInternedString("main")}},
	}
	f.manifests.EXPECT().Load("relock.yaml").Return(manifestFixture(), nil)
	f.locks.EXPECT().Load("relock.lock").Return(lock, nil)
	f.fingerprints.EXPECT().FingerprintFile("relock.yaml").Return("xxh64:00000000deadbeef", nil)
	f.logger.EXPECT().Info("manifest fingerprint unchanged, reusing lock snapshot")

	// The detector and the lock graph must never run on the fast path.
	report, err := f.app.Check(context.Background(), app.CheckOptions{
		ManifestPath: "relock.yaml",
		LockPath:     "relock.lock",
	})
	require.NoError(t, err)

	assert.False(t, report.Any())
	assert.False(t, report.GroupChanged("main"))
	assert.Empty(t, report.Packages())
}

func TestApp_Check_FingerprintMismatchRunsDetection(t *testing.T) {
	f := newFixture(t)
	lock := &domain.LockSnapshot{
		ManifestFingerprint: "xxh64:00000000deadbeef",
		Groups: map[string]domain.LockGroup{
			"main": {
				Name: domain.NewInternedString("main"),
				Packages: map[string]domain.ResolvedPackage{
					"FAKE": {Name: domain.NewInternedString("FAKE"), Version: "3.4.1", Direct: true},
				},
			},
		},
	}
	graph := mocks.NewMockLockGraph(gomock.NewController(t))
	graph.EXPECT().TopLevel("main").Return([]domain.ResolvedPackage{lock.Groups["main"].Packages["FAKE"]}).AnyTimes()
	graph.EXPECT().TransitiveNames("main").Return(map[string]struct{}{}).AnyTimes()

	f.manifests.EXPECT().Load("relock.yaml").Return(manifestFixture(), nil)
	f.locks.EXPECT().Load("relock.lock").Return(lock, nil)
	f.fingerprints.EXPECT().FingerprintFile("relock.yaml").Return("xxh64:ffffffffffffffff", nil)
	f.locks.EXPECT().Graph(lock).Return(graph)
	f.versions.EXPECT().Satisfies("3.4.1", ">= 3.0", true).Return(true, nil).AnyTimes()
	f.logger.EXPECT().Info("lock snapshot is up to date")

	report, err := f.app.Check(context.Background(), app.CheckOptions{
		ManifestPath: "relock.yaml",
		LockPath:     "relock.lock",
	})
	require.NoError(t, err)

	assert.False(t, report.Any())
}

func TestApp_Check_FingerprintErrorFallsBack(t *testing.T) {
	f := newFixture(t)
	lock := &domain.LockSnapshot{
		ManifestFingerprint: "xxh64:00000000deadbeef",
		Groups:              map[string]domain.LockGroup{},
	}
	graph := mocks.NewMockLockGraph(gomock.NewController(t))
	graph.EXPECT().TopLevel(gomock.Any()).Return(nil).AnyTimes()
	graph.EXPECT().TransitiveNames(gomock.Any()).Return(map[string]struct{}{}).AnyTimes()

	f.manifests.EXPECT().Load("relock.yaml").Return(&domain.Manifest{Groups: map[string]domain.Group{}}, nil)
	f.locks.EXPECT().Load("relock.lock").Return(lock, nil)
	f.fingerprints.EXPECT().FingerprintFile("relock.yaml").Return("", errors.New("io error"))
	f.locks.EXPECT().Graph(lock).Return(graph)
	f.logger.EXPECT().Warn("manifest fingerprint failed, running full detection")
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	_, err := f.app.Check(context.Background(), app.CheckOptions{
		ManifestPath: "relock.yaml",
		LockPath:     "relock.lock",
	})
	require.NoError(t, err)
}

func TestApp_Check_LoadErrors(t *testing.T) {
	t.Run("manifest load failure", func(t *testing.T) {
		f := newFixture(t)
		f.manifests.EXPECT().Load("relock.yaml").Return(nil, errors.New("no such file"))

		_, err := f.app.Check(context.Background(), app.CheckOptions{ManifestPath: "relock.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load manifest")
	})

	t.Run("lock load failure", func(t *testing.T) {
		f := newFixture(t)
		f.manifests.EXPECT().Load("relock.yaml").Return(manifestFixture(), nil)
		f.locks.EXPECT().Load("relock.lock").Return(nil, errors.New("corrupt"))

		_, err := f.app.Check(context.Background(), app.CheckOptions{
			ManifestPath: "relock.yaml",
			LockPath:     "relock.lock",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load lock snapshot")
	})
}

func TestApp_Check_StrictPropagates(t *testing.T) {
	f := newFixture(t)
	lock := &domain.LockSnapshot{
		Groups: map[string]domain.LockGroup{
			"main": {
				Name: domain.NewInternedString("main"),
				Packages: map[string]domain.ResolvedPackage{
					"FAKE": {Name: domain.NewInternedString("FAKE"), Version: "6.1.0-beta", Direct: true},
				},
			},
		},
	}
	graph := mocks.NewMockLockGraph(gomock.NewController(t))
	graph.EXPECT().TopLevel("main").Return([]domain.ResolvedPackage{lock.Groups["main"].Packages["FAKE"]}).AnyTimes()
	graph.EXPECT().TransitiveNames("main").Return(map[string]struct{}{}).AnyTimes()
	graph.EXPECT().Closure("main", "FAKE").Return(map[string]struct{}{"FAKE": {}}).AnyTimes()

	f.manifests.EXPECT().Load("relock.yaml").Return(manifestFixture(), nil)
	f.locks.EXPECT().Load("relock.lock").Return(lock, nil)
	f.locks.EXPECT().Graph(lock).Return(graph)
	// Strict mode must disable pre-release widening.
	f.versions.EXPECT().Satisfies("6.1.0-beta", ">= 3.0", false).Return(false, nil).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	report, err := f.app.Check(context.Background(), app.CheckOptions{
		ManifestPath: "relock.yaml",
		LockPath:     "relock.lock",
		Strict:       true,
	})
	require.NoError(t, err)

	assert.True(t, report.Any())
}
