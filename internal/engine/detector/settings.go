package detector

import "go.trai.ch/relock/internal/core/domain"

// effectiveSettings layers package-level settings on top of the group
// defaults. Group defaults come first; package overrides win on conflicting
// fields.
func effectiveSettings(groupDefaults, pkg domain.Settings) domain.Settings {
	return groupDefaults.Combine(pkg)
}

// settingsChanged reports whether the effective settings of a requirement
// drifted from the lock-recorded ones in a way that forces re-resolution.
//
// Framework-restriction drift alone is tolerated on transitive packages:
// their restrictions are derived during resolution and fluctuate as direct
// dependencies change elsewhere, so the drift is not by itself a signal.
func settingsChanged(newSettings, oldSettings domain.Settings, pkg string, transitive map[string]struct{}) bool {
	if newSettings.Equal(oldSettings) {
		return false
	}
	if newSettings.EqualIgnoringFrameworks(oldSettings) {
		// Only the framework restriction differs.
		if _, isTransitive := transitive[pkg]; isTransitive {
			return false
		}
	}
	return true
}
