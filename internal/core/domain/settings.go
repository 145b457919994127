package domain

import "slices"

// FrameworkRestriction limits a package (or a whole group) to a set of
// target frameworks. The zero value means "no restriction".
//
// Auto selects auto-detection: the resolver derives the restriction from the
// project files instead of a user-authored list. An auto-detect restriction
// carries no framework list.
type FrameworkRestriction struct {
	Auto       bool
	Frameworks []string
}

// AutoDetectRestriction returns the auto-detect framework restriction.
func AutoDetectRestriction() FrameworkRestriction {
	return FrameworkRestriction{Auto: true}
}

// RestrictTo returns an explicit restriction to the given frameworks.
// The list is sorted and deduplicated so restrictions compare structurally.
func RestrictTo(frameworks ...string) FrameworkRestriction {
	fws := slices.Clone(frameworks)
	slices.Sort(fws)
	fws = slices.Compact(fws)
	return FrameworkRestriction{Frameworks: fws}
}

// IsZero reports whether no restriction is declared at all.
func (r FrameworkRestriction) IsZero() bool {
	return !r.Auto && len(r.Frameworks) == 0
}

// Equal reports structural equality of two restrictions.
func (r FrameworkRestriction) Equal(other FrameworkRestriction) bool {
	return r.Auto == other.Auto && slices.Equal(r.Frameworks, other.Frameworks)
}

// Settings holds the per-package (or group-default) resolution options.
// Optional boolean fields are pointers so that "unset" is distinguishable
// from an explicit false and group defaults can shine through.
type Settings struct {
	FrameworkRestriction FrameworkRestriction
	ImportTargets        *bool
	CopyLocal            *bool
	OmitContent          *bool
	ReferenceCondition   string
}

// Combine layers overrides on top of s and returns the effective settings.
// The operation is associative but not commutative: fields set in overrides
// take precedence, unset fields fall back to s.
func (s Settings) Combine(overrides Settings) Settings {
	out := s
	if !overrides.FrameworkRestriction.IsZero() {
		out.FrameworkRestriction = overrides.FrameworkRestriction
	}
	if overrides.ImportTargets != nil {
		out.ImportTargets = overrides.ImportTargets
	}
	if overrides.CopyLocal != nil {
		out.CopyLocal = overrides.CopyLocal
	}
	if overrides.OmitContent != nil {
		out.OmitContent = overrides.OmitContent
	}
	if overrides.ReferenceCondition != "" {
		out.ReferenceCondition = overrides.ReferenceCondition
	}
	return out
}

// Equal reports structural equality of two settings records.
func (s Settings) Equal(other Settings) bool {
	return s.FrameworkRestriction.Equal(other.FrameworkRestriction) &&
		s.EqualIgnoringFrameworks(other)
}

// EqualIgnoringFrameworks reports equality of every field except the
// framework restriction. The change detector uses it to decide whether a
// settings delta is framework-restriction drift alone.
func (s Settings) EqualIgnoringFrameworks(other Settings) bool {
	return boolPtrEqual(s.ImportTargets, other.ImportTargets) &&
		boolPtrEqual(s.CopyLocal, other.CopyLocal) &&
		boolPtrEqual(s.OmitContent, other.OmitContent) &&
		s.ReferenceCondition == other.ReferenceCondition
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Bool returns a pointer to b, for building Settings literals.
func Bool(b bool) *bool {
	return &b
}
