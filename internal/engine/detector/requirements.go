package detector

import (
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// hasChanged reports whether a direct requirement no longer matches its
// lock-resolved package. Both sides must already carry effective settings.
//
// In strict mode the declared constraint is used as-is; otherwise it is
// widened to also accept pre-release versions before testing.
func (d *Detector) hasChanged(req domain.Requirement, old domain.ResolvedPackage, transitive map[string]struct{}, strict bool) (bool, error) {
	ok, err := d.versions.Satisfies(old.Version, req.Constraint, !strict)
	if err != nil {
		return false, zerr.With(err, "package", req.Name.String())
	}
	if !ok {
		return true, nil
	}
	return settingsChanged(req.Settings, old.Settings, req.Name.String(), transitive), nil
}

// requirementChanges computes the per-group set of registry packages that
// must be re-resolved: the union of added requirements and modified or
// removed lock entries, the latter expanded to their full dependency
// closure. Either group may be absent.
func (d *Detector) requirementChanges(
	group string,
	mg *domain.Group,
	lg *domain.LockGroup,
	graph ports.LockGraph,
	strict bool,
) (map[string]struct{}, error) {
	changed := make(map[string]struct{})

	transitive := map[string]struct{}{}
	if graph != nil {
		transitive = graph.TransitiveNames(group)
	}

	// Added: every manifest requirement with no matching lock entry, or
	// whose effective requirement no longer holds against it.
	if mg != nil {
		for _, req := range mg.Requirements {
			eff := req
			eff.Settings = effectiveSettings(mg.Options, req.Settings)

			if lg == nil {
				changed[req.Name.String()] = struct{}{}
				continue
			}
			old, ok := lg.Package(req.Name.String())
			if !ok {
				changed[req.Name.String()] = struct{}{}
				continue
			}
			old.Settings = effectiveSettings(lg.Options, old.Settings)

			isChanged, err := d.hasChanged(eff, old, transitive, strict)
			if err != nil {
				return nil, zerr.With(err, "group", group)
			}
			if isChanged {
				changed[req.Name.String()] = struct{}{}
			}
		}
	}

	// Modified: walk the top-level entries the lock snapshot recorded. A
	// missing manifest requirement means the package was removed, which is
	// itself a change. Each hit invalidates its whole dependency
	// neighborhood, so expand through the lock graph.
	if lg != nil && graph != nil {
		for _, top := range graph.TopLevel(group) {
			name := top.Name.String()
			old := top
			old.Settings = effectiveSettings(lg.Options, top.Settings)

			isChanged := true
			if mg != nil {
				if req, ok := mg.Requirement(name); ok {
					eff := req
					eff.Settings = effectiveSettings(mg.Options, req.Settings)
					var err error
					isChanged, err = d.hasChanged(eff, old, transitive, strict)
					if err != nil {
						return nil, zerr.With(err, "group", group)
					}
				}
			}
			if !isChanged {
				continue
			}
			changed[name] = struct{}{}
			for dep := range graph.Closure(group, name) {
				changed[dep] = struct{}{}
			}
		}
	}

	return changed, nil
}
