// Package lockstore provides the lock snapshot loader and the dependency
// graph queries the change detector runs against it.
package lockstore

import (
	"os"

	"go.trai.ch/relock/internal/adapters/manifest"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore using a YAML file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads a lock snapshot from the given path. A missing file is an
// ordinary case (nothing locked yet) and returns nil, nil.
func (s *Store) Load(path string) (*domain.LockSnapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read lock snapshot")
	}

	var lockfile Lockfile
	if err := yaml.Unmarshal(data, &lockfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lock snapshot")
	}

	snapshot := &domain.LockSnapshot{
		Version:             lockfile.Version,
		Groups:              make(map[string]domain.LockGroup, len(lockfile.Groups)),
		Location:            path,
		ManifestFingerprint: lockfile.ManifestFingerprint,
	}
	for name, dto := range lockfile.Groups {
		group, err := mapLockGroup(name, dto)
		if err != nil {
			return nil, zerr.With(err, "group", name)
		}
		snapshot.Groups[name] = group
	}
	return snapshot, nil
}

// Graph returns the dependency-graph view over the snapshot.
func (s *Store) Graph(snapshot *domain.LockSnapshot) ports.LockGraph {
	return NewGraph(snapshot)
}

func mapLockGroup(name string, dto LockGroupDTO) (domain.LockGroup, error) {
	group := domain.LockGroup{
		Name:     domain.NewInternedString(name),
		Packages: make(map[string]domain.ResolvedPackage, len(dto.Packages)),
		Options:  manifest.MapSettings(dto.Options),
	}

	for _, pkg := range dto.Packages {
		if _, exists := group.Packages[pkg.Name]; exists {
			return domain.LockGroup{}, zerr.With(domain.ErrDuplicatePackage, "package", pkg.Name)
		}
		deps := make([]domain.InternedString, 0, len(pkg.Dependencies))
		for _, dep := range pkg.Dependencies {
			deps = append(deps, domain.NewInternedString(dep))
		}
		group.Packages[pkg.Name] = domain.ResolvedPackage{
			Name:         domain.NewInternedString(pkg.Name),
			Version:      pkg.Version,
			Settings:     manifest.MapSettings(pkg.SettingsDTO),
			Source:       domain.PackageSource{Name: pkg.Source.Name, URL: pkg.Source.URL},
			Direct:       pkg.Direct,
			Dependencies: deps,
		}
	}

	for _, rf := range dto.RemoteFiles {
		origin, err := manifest.MapOrigin(rf.Origin, rf.URL)
		if err != nil {
			return domain.LockGroup{}, zerr.With(err, "remote_file", rf.Name)
		}
		if rf.Commit == "" {
			err := zerr.Wrap(domain.ErrMalformedLock, "resolved remote file has no commit")
			return domain.LockGroup{}, zerr.With(err, "remote_file", rf.Name)
		}
		group.RemoteFiles = append(group.RemoteFiles, domain.ResolvedRemoteFile{
			Owner:   rf.Owner,
			Project: rf.Project,
			Name:    domain.NormalizeRemotePath(rf.Name),
			Origin:  origin,
			Commit:  rf.Commit,
			AuthKey: rf.AuthKey,
		})
	}

	return group, nil
}
