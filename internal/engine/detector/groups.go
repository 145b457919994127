package detector

import (
	"slices"

	"go.trai.ch/relock/internal/core/domain"
)

// groupNames returns the sorted union of group names appearing in the
// manifest or the lock snapshot. A group present on only one side must still
// be visited to detect whole-group additions and removals.
func groupNames(manifest *domain.Manifest, lock *domain.LockSnapshot) []string {
	seen := make(map[string]struct{}, len(manifest.Groups))
	names := make([]string, 0, len(manifest.Groups))
	for name := range manifest.Groups {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if lock != nil {
		for name := range lock.Groups {
			if _, ok := seen[name]; !ok {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}
