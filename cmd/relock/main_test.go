package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/relock/internal/engine/detector"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockManifestLoader, *mocks.MockLogger) {
	mockManifests := mocks.NewMockManifestLoader(ctrl)
	mockLocks := mocks.NewMockLockStore(ctrl)
	mockFingerprints := mocks.NewMockFingerprinter(ctrl)
	mockVersions := mocks.NewMockVersionPredicate(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mockManifests,
		mockLocks,
		mockFingerprints,
		detector.New(mockVersions),
		mockLogger,
	)
	return &app.Components{App: application, Logger: mockLogger}, mockManifests, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _, _ := newTestComponents(ctrl)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockManifests, mockLogger := newTestComponents(ctrl)
	mockManifests.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"check"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blockCh := make(chan struct{})

	components, mockManifests, mockLogger := newTestComponents(ctrl)
	mockManifests.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Manifest, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"check"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return components, func() {}, nil
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
