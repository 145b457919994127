// Package semver implements the version predicate on top of
// github.com/Masterminds/semver/v3.
package semver

import (
	mm "github.com/Masterminds/semver/v3"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionPredicate = (*Predicate)(nil)

// Predicate answers version-range satisfiability for declared constraints.
//
// Constraint syntax is the Masterminds range language, e.g. ">= 1.2.0 < 2.0.0",
// "^1.0.0", "~1.4". An empty constraint accepts every version.
type Predicate struct{}

// NewPredicate creates a new Predicate.
func NewPredicate() *Predicate {
	return &Predicate{}
}

// Satisfies reports whether version lies in constraint.
//
// Pre-release versions are excluded by the range language unless the
// constraint itself names one. With includePrereleases the test is widened:
// a pre-release is also accepted when its release version lies in the range,
// so a locked "6.1.0-beta" satisfies ">= 6.0.0".
func (p *Predicate) Satisfies(version, constraint string, includePrereleases bool) (bool, error) {
	if constraint == "" {
		return true, nil
	}

	v, err := mm.NewVersion(version)
	if err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidVersion, err.Error()), "version", version)
	}
	c, err := mm.NewConstraint(constraint)
	if err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidConstraint, err.Error()), "constraint", constraint)
	}

	if c.Check(v) {
		return true, nil
	}
	if includePrereleases && v.Prerelease() != "" {
		core := mm.New(v.Major(), v.Minor(), v.Patch(), "", "")
		return c.Check(core), nil
	}
	return false, nil
}
