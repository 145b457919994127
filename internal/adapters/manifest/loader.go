// Package manifest provides the manifest loader for relock.
package manifest

import (
	"os"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*FileLoader)(nil)

// FileLoader implements ports.ManifestLoader using a YAML file.
type FileLoader struct{}

// NewLoader creates a new FileLoader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads a manifest file from the given path and returns the domain
// aggregate.
func (l *FileLoader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}

	var depfile Depfile
	if err := yaml.Unmarshal(data, &depfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	m := &domain.Manifest{Groups: make(map[string]domain.Group, len(depfile.Groups))}
	for name, dto := range depfile.Groups {
		group, err := mapGroup(name, dto)
		if err != nil {
			return nil, zerr.With(err, "group", name)
		}
		m.Groups[name] = group
	}
	return m, nil
}

func mapGroup(name string, dto GroupDTO) (domain.Group, error) {
	group := domain.Group{
		Name:    domain.NewInternedString(name),
		Options: MapSettings(dto.SettingsDTO),
	}

	for _, src := range dto.Sources {
		group.Sources = append(group.Sources, domain.PackageSource{
			Name: src.Name,
			URL:  src.URL,
		})
	}

	seen := make(map[string]bool, len(dto.Packages))
	for _, pkg := range dto.Packages {
		if seen[pkg.Name] {
			return domain.Group{}, zerr.With(domain.ErrDuplicatePackage, "package", pkg.Name)
		}
		seen[pkg.Name] = true
		group.Requirements = append(group.Requirements, domain.Requirement{
			Name:       domain.NewInternedString(pkg.Name),
			Constraint: pkg.Version,
			Settings:   MapSettings(pkg.SettingsDTO),
		})
	}

	for _, rf := range dto.RemoteFiles {
		remote, err := mapRemoteFile(rf)
		if err != nil {
			return domain.Group{}, err
		}
		group.RemoteFiles = append(group.RemoteFiles, remote)
	}

	return group, nil
}

// MapSettings maps a settings DTO into the domain record. It is shared with
// the lock snapshot loader, which records options in the same shape.
func MapSettings(dto SettingsDTO) domain.Settings {
	restriction := domain.FrameworkRestriction{}
	switch {
	case dto.AutoDetectFrameworks:
		restriction = domain.AutoDetectRestriction()
	case len(dto.Frameworks) > 0:
		restriction = domain.RestrictTo(dto.Frameworks...)
	}
	return domain.Settings{
		FrameworkRestriction: restriction,
		ImportTargets:        dto.ImportTargets,
		CopyLocal:            dto.CopyLocal,
		OmitContent:          dto.OmitContent,
		ReferenceCondition:   dto.Condition,
	}
}

// MapOrigin maps an origin kind and optional URL into the domain origin.
func MapOrigin(kind, url string) (domain.RemoteOrigin, error) {
	switch domain.OriginKind(kind) {
	case domain.OriginGitHub, domain.OriginGist:
		return domain.RemoteOrigin{Kind: domain.OriginKind(kind)}, nil
	case domain.OriginGit, domain.OriginHTTP:
		return domain.RemoteOrigin{Kind: domain.OriginKind(kind), URL: url}, nil
	default:
		return domain.RemoteOrigin{}, zerr.With(domain.ErrUnknownOrigin, "origin", kind)
	}
}

func mapRemoteFile(dto RemoteFileDTO) (domain.RemoteFile, error) {
	origin, err := MapOrigin(dto.Origin, dto.URL)
	if err != nil {
		return domain.RemoteFile{}, zerr.With(err, "remote_file", dto.Name)
	}
	if dto.Commit != "" && dto.Version != "" {
		err := zerr.Wrap(domain.ErrMalformedManifest, "remote file declares both a commit and a version requirement")
		return domain.RemoteFile{}, zerr.With(err, "remote_file", dto.Name)
	}

	pin := domain.VersionPin{}
	switch {
	case dto.Commit != "":
		pin = domain.CommitPin(dto.Commit)
	case dto.Version != "":
		pin = domain.RangePin(dto.Version)
	}

	return domain.RemoteFile{
		Owner:   dto.Owner,
		Project: dto.Project,
		Name:    domain.NormalizeRemotePath(dto.Name),
		Origin:  origin,
		Pin:     pin,
		AuthKey: dto.AuthKey,
	}, nil
}
