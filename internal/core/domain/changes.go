package domain

import (
	"slices"
	"strings"
)

// GroupPackage identifies a registry package within a dependency group.
type GroupPackage struct {
	Group   string
	Package string
}

// Compare orders group/package pairs lexicographically.
func (gp GroupPackage) Compare(other GroupPackage) int {
	if c := strings.Compare(gp.Group, other.Group); c != 0 {
		return c
	}
	return strings.Compare(gp.Package, other.Package)
}

// GroupRemoteFile identifies a remote file reference within a dependency
// group.
type GroupRemoteFile struct {
	Group string
	Ref   RemoteFileRef
}

// Compare orders group/remote-file pairs lexicographically.
func (gr GroupRemoteFile) Compare(other GroupRemoteFile) int {
	if c := strings.Compare(gr.Group, other.Group); c != 0 {
		return c
	}
	return gr.Ref.Compare(other.Ref)
}

// PreferredVersion is the version and source a previous resolution chose for
// a package, used to bias re-resolution toward previously used feeds.
type PreferredVersion struct {
	Version string
	Source  PackageSource
}

// ChangeReport is the verdict of a change detection run. It is immutable
// once built; all accessors return freshly sorted copies so callers can rely
// on deterministic output regardless of internal evaluation order.
type ChangeReport struct {
	packages      map[string]map[string]struct{}
	remoteFiles   map[string][]RemoteFileRef
	changedGroups map[string]bool
	anyChanged    bool
	preferred     map[GroupPackage]PreferredVersion
}

// NewChangeReport assembles a report from per-group results.
//
// packages maps group names to the set of package names requiring
// re-resolution, remoteFiles to the remote references requiring resolution.
// changedGroups carries the per-group verdict and anyChanged the aggregate
// boolean, which are computed over manifest groups only.
func NewChangeReport(
	packages map[string]map[string]struct{},
	remoteFiles map[string][]RemoteFileRef,
	changedGroups map[string]bool,
	anyChanged bool,
	preferred map[GroupPackage]PreferredVersion,
) *ChangeReport {
	return &ChangeReport{
		packages:      packages,
		remoteFiles:   remoteFiles,
		changedGroups: changedGroups,
		anyChanged:    anyChanged,
		preferred:     preferred,
	}
}

// Any reports whether any manifest group requires re-resolution.
func (r *ChangeReport) Any() bool {
	return r.anyChanged
}

// GroupChanged reports whether the named group requires re-resolution.
func (r *ChangeReport) GroupChanged(group string) bool {
	return r.changedGroups[group]
}

// Packages returns every (group, package) pair requiring re-resolution,
// sorted by group then package name.
func (r *ChangeReport) Packages() []GroupPackage {
	out := make([]GroupPackage, 0, len(r.packages))
	for group, names := range r.packages {
		for name := range names {
			out = append(out, GroupPackage{Group: group, Package: name})
		}
	}
	slices.SortFunc(out, GroupPackage.Compare)
	return out
}

// PackagesInGroup returns the sorted package names requiring re-resolution
// in the given group.
func (r *ChangeReport) PackagesInGroup(group string) []string {
	names := make([]string, 0, len(r.packages[group]))
	for name := range r.packages[group] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RemoteFiles returns every (group, remote reference) pair requiring
// resolution, sorted by group then by the reference's total order.
func (r *ChangeReport) RemoteFiles() []GroupRemoteFile {
	out := make([]GroupRemoteFile, 0, len(r.remoteFiles))
	for group, refs := range r.remoteFiles {
		for _, ref := range refs {
			out = append(out, GroupRemoteFile{Group: group, Ref: ref})
		}
	}
	slices.SortFunc(out, GroupRemoteFile.Compare)
	return out
}

// Preferred returns the previously resolved version and preferred source for
// the given package, if the lock snapshot recorded one.
func (r *ChangeReport) Preferred(gp GroupPackage) (PreferredVersion, bool) {
	pv, ok := r.preferred[gp]
	return pv, ok
}

// PreferredVersions returns the full (group, package) to preferred version
// mapping. The returned map is shared; callers must not mutate it.
func (r *ChangeReport) PreferredVersions() map[GroupPackage]PreferredVersion {
	return r.preferred
}
