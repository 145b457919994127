package detector

import "go.trai.ch/relock/internal/core/domain"

// preferredVersions maps every lock-resolved package to its recorded version
// and the source re-resolution should prefer. When the manifest still
// declares the package's group, a manifest source with the same URL as the
// lock-recorded one wins, so re-resolution is biased toward previously used
// feeds without forcing exact version reuse.
func preferredVersions(manifest *domain.Manifest, lock *domain.LockSnapshot) map[domain.GroupPackage]domain.PreferredVersion {
	out := make(map[domain.GroupPackage]domain.PreferredVersion)
	if lock == nil {
		return out
	}
	for groupName, lg := range lock.Groups {
		mg, hasManifestGroup := manifest.Group(groupName)
		for name, pkg := range lg.Packages {
			source := pkg.Source
			if hasManifestGroup {
				for _, declared := range mg.Sources {
					if declared.URL == pkg.Source.URL {
						source = declared
						break
					}
				}
			}
			out[domain.GroupPackage{Group: groupName, Package: name}] = domain.PreferredVersion{
				Version: pkg.Version,
				Source:  source,
			}
		}
	}
	return out
}
