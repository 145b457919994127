package lockstore

import (
	"slices"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

var _ ports.LockGraph = (*Graph)(nil)

// Graph is a read-only dependency-graph view over a lock snapshot. Forward
// and reverse adjacency are indexed once at construction; queries never
// touch the snapshot again.
type Graph struct {
	groups map[string]*groupIndex
}

type groupIndex struct {
	packages   map[string]domain.ResolvedPackage
	dependsOn  map[string][]string
	dependedBy map[string][]string
}

// NewGraph indexes the snapshot's recorded dependency edges. A nil snapshot
// yields an empty graph.
func NewGraph(snapshot *domain.LockSnapshot) *Graph {
	g := &Graph{groups: make(map[string]*groupIndex)}
	if snapshot == nil {
		return g
	}
	for name, lg := range snapshot.Groups {
		idx := &groupIndex{
			packages:   lg.Packages,
			dependsOn:  make(map[string][]string, len(lg.Packages)),
			dependedBy: make(map[string][]string),
		}
		for pkgName, pkg := range lg.Packages {
			for _, dep := range pkg.Dependencies {
				depName := dep.String()
				idx.dependsOn[pkgName] = append(idx.dependsOn[pkgName], depName)
				idx.dependedBy[depName] = append(idx.dependedBy[depName], pkgName)
			}
		}
		g.groups[name] = idx
	}
	return g
}

// TopLevel returns the group's direct packages as recorded in the snapshot,
// sorted by name.
func (g *Graph) TopLevel(group string) []domain.ResolvedPackage {
	idx, ok := g.groups[group]
	if !ok {
		return nil
	}
	var out []domain.ResolvedPackage
	for _, pkg := range idx.packages {
		if pkg.Direct {
			out = append(out, pkg)
		}
	}
	slices.SortFunc(out, func(a, b domain.ResolvedPackage) int {
		return a.Name.Compare(b.Name)
	})
	return out
}

// TransitiveNames returns the names of every package that appears as a
// dependency of another package in the group.
func (g *Graph) TransitiveNames(group string) map[string]struct{} {
	out := make(map[string]struct{})
	idx, ok := g.groups[group]
	if !ok {
		return out
	}
	for name := range idx.dependedBy {
		out[name] = struct{}{}
	}
	return out
}

// Closure returns the named package together with everything depending on it
// and everything it depends on, transitively, within the group.
func (g *Graph) Closure(group, pkg string) map[string]struct{} {
	out := make(map[string]struct{})
	idx, ok := g.groups[group]
	if !ok {
		return out
	}
	if _, known := idx.packages[pkg]; !known {
		return out
	}

	walk := func(start string, edges map[string][]string) {
		seen := map[string]bool{start: true}
		stack := []string{start}
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range edges[name] {
				if seen[next] {
					continue
				}
				seen[next] = true
				out[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}

	out[pkg] = struct{}{}
	walk(pkg, idx.dependsOn)
	walk(pkg, idx.dependedBy)
	return out
}
