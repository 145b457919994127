package domain

import "strings"

// OriginKind enumerates the supported remote source hosts.
type OriginKind string

const (
	// OriginGitHub references a file in a GitHub repository.
	OriginGitHub OriginKind = "github"
	// OriginGist references a file in a GitHub gist.
	OriginGist OriginKind = "gist"
	// OriginGit references a file in an arbitrary git repository by URL.
	OriginGit OriginKind = "git"
	// OriginHTTP references a file fetched from a plain HTTP(S) URL.
	OriginHTTP OriginKind = "http"
)

// RemoteOrigin is the kind and location of a remote source.
// For git and http origins the URL carries the location; for github and
// gist origins the owner/project fields of the reference do.
type RemoteOrigin struct {
	Kind OriginKind
	URL  string
}

// Equal reports structural equality of two origins.
func (o RemoteOrigin) Equal(other RemoteOrigin) bool {
	return o == other
}

// PinKind enumerates the forms a remote file version pin can take.
type PinKind int

const (
	// PinNone means the reference floats on the remote's default branch.
	PinNone PinKind = iota
	// PinCommit pins the reference to a concrete commit.
	PinCommit
	// PinRange constrains the reference with a version requirement string.
	PinRange
)

// VersionPin is the optional version restriction of a remote file reference.
// The zero value is "no pin".
type VersionPin struct {
	Kind  PinKind
	Value string
}

// CommitPin pins to the given concrete commit.
func CommitPin(commit string) VersionPin {
	return VersionPin{Kind: PinCommit, Value: commit}
}

// RangePin constrains with the textual form of a version requirement.
func RangePin(requirement string) VersionPin {
	return VersionPin{Kind: PinRange, Value: requirement}
}

// IsNone reports whether no pin is declared.
func (p VersionPin) IsNone() bool {
	return p.Kind == PinNone
}

// NormalizeRemotePath strips any leading separator from a remote file path
// so that references compare by a canonical name.
func NormalizeRemotePath(name string) string {
	return strings.TrimLeft(name, "/\\")
}

// RemoteFile is an unresolved remote file reference as declared in the
// manifest: a dependency on a raw source file rather than a registry package.
type RemoteFile struct {
	Owner   string
	Project string

	// Name is the file path within the remote source, normalized with no
	// leading separator.
	Name string

	Origin  RemoteOrigin
	Pin     VersionPin
	AuthKey string
}

// ResolvedRemoteFile is a remote file reference as recorded in the lock
// snapshot, pinned to the commit the resolver actually chose.
type ResolvedRemoteFile struct {
	Owner   string
	Project string
	Name    string
	Origin  RemoteOrigin

	// Commit is the concrete resolved revision. Always present.
	Commit string

	AuthKey string
}

// RemoteFileRef is the identity value the change detector compares remote
// file references by. It is constructed from either the unresolved manifest
// form or the resolved lock form.
//
// Equality over refs is deliberately partial (see Matches) while ordering is
// total over the full tuple including the pin (see Compare); the detector
// normalizes pins before comparing so the two never disagree at its call
// sites.
type RemoteFileRef struct {
	Owner   string
	Project string
	Name    string
	Origin  RemoteOrigin
	Pin     VersionPin
	AuthKey string
}

// Ref maps the unresolved manifest reference to its identity value. The
// declared restriction becomes the optional pin: no restriction maps to no
// pin, a concrete commit to a commit pin, and a version requirement to its
// textual form.
func (rf RemoteFile) Ref() RemoteFileRef {
	return RemoteFileRef{
		Owner:   rf.Owner,
		Project: rf.Project,
		Name:    NormalizeRemotePath(rf.Name),
		Origin:  rf.Origin,
		Pin:     rf.Pin,
		AuthKey: rf.AuthKey,
	}
}

// Ref maps the resolved lock reference to its identity value. The pin is the
// commit the resolver chose, which is always present.
func (rf ResolvedRemoteFile) Ref() RemoteFileRef {
	return RemoteFileRef{
		Owner:   rf.Owner,
		Project: rf.Project,
		Name:    NormalizeRemotePath(rf.Name),
		Origin:  rf.Origin,
		Pin:     CommitPin(rf.Commit),
		AuthKey: rf.AuthKey,
	}
}

// Matches reports whether two refs denote the same remote file. Owner, name,
// auth key, project and origin must be equal regardless of pin; the pins must
// then either be equal or absent on at least one side. An unpinned request
// matches any pin.
func (r RemoteFileRef) Matches(other RemoteFileRef) bool {
	if r.Owner != other.Owner ||
		r.Name != other.Name ||
		r.AuthKey != other.AuthKey ||
		r.Project != other.Project ||
		!r.Origin.Equal(other.Origin) {
		return false
	}
	if r.Pin == other.Pin {
		return true
	}
	return r.Pin.IsNone() || other.Pin.IsNone()
}

// Compare defines a total order over the full tuple including the pin. It is
// used only to make result sets deterministic and is intentionally not
// consistent with Matches: two refs that Match may still order apart when
// exactly one of them is pinned.
func (r RemoteFileRef) Compare(other RemoteFileRef) int {
	if c := strings.Compare(r.Owner, other.Owner); c != 0 {
		return c
	}
	if c := strings.Compare(r.Project, other.Project); c != 0 {
		return c
	}
	if c := strings.Compare(r.Name, other.Name); c != 0 {
		return c
	}
	if c := strings.Compare(string(r.Origin.Kind), string(other.Origin.Kind)); c != 0 {
		return c
	}
	if c := strings.Compare(r.Origin.URL, other.Origin.URL); c != 0 {
		return c
	}
	if c := int(r.Pin.Kind) - int(other.Pin.Kind); c != 0 {
		return c
	}
	if c := strings.Compare(r.Pin.Value, other.Pin.Value); c != 0 {
		return c
	}
	return strings.Compare(r.AuthKey, other.AuthKey)
}
