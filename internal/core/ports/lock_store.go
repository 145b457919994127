package ports

import "go.trai.ch/relock/internal/core/domain"

// LockStore defines the interface for loading the lock snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads the lock snapshot from the given path. Returns nil, nil
	// if no snapshot exists yet; a missing snapshot is an ordinary case,
	// not a failure.
	Load(path string) (*domain.LockSnapshot, error)

	// Graph returns the dependency-graph view over a loaded snapshot.
	Graph(snapshot *domain.LockSnapshot) LockGraph
}
