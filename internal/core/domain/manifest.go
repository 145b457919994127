package domain

// Requirement represents a user's declared direct dependency on a registry
// package. This is the input representation before resolution (e.g., from
// relock.yaml).
type Requirement struct {
	// Name is the package name as declared by the user. It is the identity
	// key within a group.
	Name InternedString

	// Constraint is the declared version requirement (e.g., ">= 6.0.0",
	// "~1.4"). Its interpretation is delegated to the version predicate.
	Constraint string

	// Settings are the package-level options, layered on top of the group
	// defaults by Settings.Combine.
	Settings Settings
}

// PackageSource identifies a registry feed packages are resolved from.
type PackageSource struct {
	// Name is an optional human-readable alias for the feed.
	Name string

	// URL is the feed location and the identity used when matching a
	// lock-recorded source back to a manifest-declared one.
	URL string
}

// Group is a named partition of dependencies declared in the manifest,
// evaluated independently from every other group.
type Group struct {
	Name InternedString

	// Requirements is the ordered list of direct package requirements.
	Requirements []Requirement

	// RemoteFiles lists the group's unresolved remote file references.
	RemoteFiles []RemoteFile

	// Sources lists the registry feeds declared for this group.
	Sources []PackageSource

	// Options are the group-level default settings.
	Options Settings
}

// Requirement returns the group's direct requirement with the given name.
func (g *Group) Requirement(name string) (Requirement, bool) {
	for _, req := range g.Requirements {
		if req.Name.String() == name {
			return req, true
		}
	}
	return Requirement{}, false
}

// RemoteFileNamed returns the group's remote file reference with the given
// normalized path name.
func (g *Group) RemoteFileNamed(name string) (RemoteFile, bool) {
	for _, rf := range g.RemoteFiles {
		if rf.Name == name {
			return rf, true
		}
	}
	return RemoteFile{}, false
}

// Manifest represents the complete user-authored declaration of desired
// dependencies. It is loaded once per invocation and never mutated.
type Manifest struct {
	// Groups maps group names to their declarations. The key is the group
	// name as a string for serialization compatibility.
	Groups map[string]Group
}

// Group returns the declared group with the given name.
func (m *Manifest) Group(name string) (Group, bool) {
	g, ok := m.Groups[name]
	return g, ok
}
