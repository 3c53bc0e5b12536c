package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// PackageIndex is the requirement graph of every declared package.
type PackageIndex struct {
	packages map[string]Package
}

// NewPackageIndex creates a new empty PackageIndex.
func NewPackageIndex() *PackageIndex {
	return &PackageIndex{
		packages: make(map[string]Package),
	}
}

// Add adds a package to the index.
// It returns an error if a package with the same name already exists.
func (x *PackageIndex) Add(p *Package) error {
	if _, exists := x.packages[p.Name]; exists {
		return zerr.With(zerr.Wrap(ErrPackageAlreadyExists, "cannot add package"), "package", p.Name)
	}
	x.packages[p.Name] = *p
	return nil
}

// Get returns the package declared under name.
func (x *PackageIndex) Get(name string) (Package, bool) {
	p, ok := x.packages[name]
	return p, ok
}

// Names returns every declared package name, sorted.
func (x *PackageIndex) Names() []string {
	names := make([]string, 0, len(x.packages))
	for name := range x.packages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks that every requirement is declared and that the graph has no cycles.
func (x *PackageIndex) Validate() error {
	_, err := x.resolve(x.Names())
	return err
}

// Resolve returns the named packages and everything they require, dependencies
// before their dependents. Roots are visited in the given order.
func (x *PackageIndex) Resolve(names []string) ([]Package, error) {
	return x.resolve(names)
}

// Direct returns only the named packages, in the given order.
func (x *PackageIndex) Direct(names []string) ([]Package, error) {
	result := make([]Package, 0, len(names))
	for _, name := range names {
		p, ok := x.packages[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrPackageNotFound, "cannot read package"), "package", name)
		}
		result = append(result, p)
	}
	return result, nil
}

func (x *PackageIndex) resolve(roots []string) ([]Package, error) {
	order := make([]Package, 0, len(x.packages))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		visited[name] = 1
		path = append(path, name)

		p := x.packages[name]
		for _, dep := range p.Requires {
			if _, exists := x.packages[dep]; !exists {
				err := zerr.With(zerr.Wrap(ErrMissingDependency, "cannot resolve requirement"), "package", name)
				return zerr.With(err, "dependency", dep)
			}
			switch visited[dep] {
			case 1:
				return buildCycleError(path, dep)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[name] = 2
		path = path[:len(path)-1]
		order = append(order, p)
		return nil
	}

	for _, name := range roots {
		if _, exists := x.packages[name]; !exists {
			return nil, zerr.With(zerr.Wrap(ErrPackageNotFound, "cannot resolve package"), "package", name)
		}
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid requirement graph"), "cycle", strings.Join(cycle, " -> "))
}
