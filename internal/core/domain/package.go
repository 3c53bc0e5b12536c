package domain

import "slices"

// Package holds the metadata a source package declares for bundling.
type Package struct {
	// Name is the package name (e.g., "example.pkg").
	Name string

	// Requires lists the names of the packages this package depends on.
	Requires []string

	// ModuleRegistries maps a module registry name (e.g., "calmjs.module") to
	// the module name -> source path declarations made in that registry.
	ModuleRegistries map[string]map[string]string

	// Extras maps a package manager name (e.g., "node_modules") to the
	// module name -> vendored path declarations, relative to the manager directory.
	Extras map[string]map[string]string
}

// RegistryNames returns the names of the registries the package declares, sorted.
func (p *Package) RegistryNames() []string {
	names := make([]string, 0, len(p.ModuleRegistries))
	for name := range p.ModuleRegistries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Extras is an ordered collection of vendored source declarations grouped by
// package manager. Managers keep the order in which they were first merged.
type Extras struct {
	order   []string
	modules map[string]map[string]string
}

// NewExtras creates an empty Extras.
func NewExtras() *Extras {
	return &Extras{modules: make(map[string]map[string]string)}
}

// Merge adds the declarations for manager; later values win for duplicate modules.
func (e *Extras) Merge(manager string, modules map[string]string) {
	current, ok := e.modules[manager]
	if !ok {
		current = make(map[string]string, len(modules))
		e.modules[manager] = current
		e.order = append(e.order, manager)
	}
	for k, v := range modules {
		current[k] = v
	}
}

// Managers returns the manager names in merge order.
func (e *Extras) Managers() []string {
	return slices.Clone(e.order)
}

// Modules returns the declarations for manager.
func (e *Extras) Modules(manager string) map[string]string {
	return e.modules[manager]
}
