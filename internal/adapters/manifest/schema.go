package manifest

// Depfile represents the structure of the relock.yaml manifest file.
type Depfile struct {
	Version string              `yaml:"version"`
	Groups  map[string]GroupDTO `yaml:"groups"`
}

// GroupDTO represents a dependency group declaration in the manifest.
type GroupDTO struct {
	SettingsDTO `yaml:",inline"`
	Sources     []SourceDTO     `yaml:"sources"`
	Packages    []PackageDTO    `yaml:"packages"`
	RemoteFiles []RemoteFileDTO `yaml:"remoteFiles"`
}

// SettingsDTO represents the layered resolution options, usable both at
// group level (defaults) and at package level (overrides).
type SettingsDTO struct {
	Frameworks           []string `yaml:"frameworks"`
	AutoDetectFrameworks bool     `yaml:"autoDetectFrameworks"`
	ImportTargets        *bool    `yaml:"importTargets"`
	CopyLocal            *bool    `yaml:"copyLocal"`
	OmitContent          *bool    `yaml:"omitContent"`
	Condition            string   `yaml:"condition"`
}

// SourceDTO represents a registry feed declaration.
type SourceDTO struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// PackageDTO represents a direct package requirement.
type PackageDTO struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	SettingsDTO `yaml:",inline"`
}

// RemoteFileDTO represents an unresolved remote file reference.
type RemoteFileDTO struct {
	Owner   string `yaml:"owner"`
	Project string `yaml:"project"`
	Name    string `yaml:"name"`
	Origin  string `yaml:"origin"`
	URL     string `yaml:"url"`
	Commit  string `yaml:"commit"`
	Version string `yaml:"version"`
	AuthKey string `yaml:"authKey"`
}
