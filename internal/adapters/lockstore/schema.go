package lockstore

import "go.trai.ch/relock/internal/adapters/manifest"

// Lockfile represents the structure of the relock.lock snapshot file.
type Lockfile struct {
	Version             int                     `yaml:"version"`
	ManifestFingerprint string                  `yaml:"manifestFingerprint"`
	Groups              map[string]LockGroupDTO `yaml:"groups"`
}

// LockGroupDTO represents one resolved dependency group.
type LockGroupDTO struct {
	Options     manifest.SettingsDTO `yaml:"options"`
	Packages    []ResolvedPackageDTO `yaml:"packages"`
	RemoteFiles []ResolvedRemoteDTO  `yaml:"remoteFiles"`
}

// ResolvedPackageDTO represents a resolved registry package.
type ResolvedPackageDTO struct {
	Name                 string             `yaml:"name"`
	Version              string             `yaml:"version"`
	Direct               bool               `yaml:"direct"`
	Source               manifest.SourceDTO `yaml:"source"`
	Dependencies         []string           `yaml:"dependencies"`
	manifest.SettingsDTO `yaml:",inline"`
}

// ResolvedRemoteDTO represents a resolved remote file reference.
type ResolvedRemoteDTO struct {
	Owner   string `yaml:"owner"`
	Project string `yaml:"project"`
	Name    string `yaml:"name"`
	Origin  string `yaml:"origin"`
	URL     string `yaml:"url"`
	Commit  string `yaml:"commit"`
	AuthKey string `yaml:"authKey"`
}
