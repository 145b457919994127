package domain

// ResolvedPackage represents a registry package as a previous resolution
// recorded it: a concrete version, the settings that were actually applied,
// and the feed it was fetched from.
type ResolvedPackage struct {
	// Name is the canonical package name.
	Name InternedString

	// Version is the concrete resolved version string (e.g., "6.1.0").
	Version string

	// Settings are the options as applied during resolution.
	Settings Settings

	// Source is the registry feed the package was resolved from.
	Source PackageSource

	// Direct marks packages that were declared in the manifest at
	// resolution time, as opposed to ones pulled in transitively.
	Direct bool

	// Dependencies lists the names of the packages this one depends on
	// within the same group, as recorded by the resolver.
	Dependencies []InternedString
}
