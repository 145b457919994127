package domain

// LockGroup holds the resolved state of one dependency group: the concrete
// packages and remote file commits a previous resolution chose.
type LockGroup struct {
	Name InternedString

	// Packages maps package names to their resolved package information.
	// The key is the package name as a string for serialization
	// compatibility.
	Packages map[string]ResolvedPackage

	// RemoteFiles lists the group's resolved remote file references.
	RemoteFiles []ResolvedRemoteFile

	// Options are the group-level default settings as recorded at
	// resolution time.
	Options Settings
}

// Package returns the resolved package with the given name.
func (g *LockGroup) Package(name string) (ResolvedPackage, bool) {
	p, ok := g.Packages[name]
	return p, ok
}

// LockSnapshot represents the complete state of a previously computed
// dependency resolution. It provides a reproducible snapshot of all
// dependencies across groups and is never mutated by the change detector.
type LockSnapshot struct {
	// Version is the lock format version (e.g., 1, 2).
	// This allows for future schema migrations and backward compatibility.
	Version int

	// Groups maps group names to their resolved state.
	Groups map[string]LockGroup

	// Location identifies where the snapshot was loaded from. The change
	// detector treats it as an opaque origin tag.
	Location string

	// ManifestFingerprint is the content fingerprint of the manifest this
	// snapshot was resolved from, if the resolver recorded one. An empty
	// value disables the fast-path comparison.
	ManifestFingerprint string
}

// Group returns the resolved group with the given name.
func (s *LockSnapshot) Group(name string) (LockGroup, bool) {
	g, ok := s.Groups[name]
	return g, ok
}
