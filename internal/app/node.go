package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/lockstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/detector"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			lockstore.NodeID,
			fs.FingerprinterNodeID,
			detector.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			locks, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}

			fingerprints, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			det, err := graft.Dep[*detector.Detector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifests, locks, fingerprints, det, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
