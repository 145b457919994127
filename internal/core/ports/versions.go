// Package ports defines the core interfaces for the application.
package ports

// VersionPredicate answers version-range satisfiability. The change detector
// consumes it as a given; parsing and range semantics live in the adapter.
//
//go:generate go run go.uber.org/mock/mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks
type VersionPredicate interface {
	// Satisfies reports whether the concrete version lies in the declared
	// constraint. With includePrereleases the constraint is first widened
	// to also accept pre-release versions.
	Satisfies(version, constraint string, includePrereleases bool) (bool, error)
}
