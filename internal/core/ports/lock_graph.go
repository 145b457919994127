package ports

import "go.trai.ch/relock/internal/core/domain"

// LockGraph exposes the dependency-graph queries the change detector needs
// over a loaded lock snapshot. Implementations are read-only views; the
// detector never mutates the snapshot through them.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_graph.go -destination=mocks/mock_lock_graph.go -package=mocks
type LockGraph interface {
	// TopLevel returns the group's top-level packages as recorded in the
	// lock snapshot, sorted by name. Returns nil for an unknown group.
	TopLevel(group string) []domain.ResolvedPackage

	// TransitiveNames returns the set of package names that appear as a
	// dependency of another package within the group, i.e. everything
	// pulled in indirectly.
	TransitiveNames(group string) map[string]struct{}

	// Closure returns the full normalized dependency set of the named
	// package within the group: the package itself plus everything
	// depending on it and everything it depends on, transitively.
	Closure(group, pkg string) map[string]struct{}
}
