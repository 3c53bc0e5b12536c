// Package registry answers package metadata queries from the loaded manifest.
package registry

import (
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/zerr"
)

// closureCacheSize bounds the number of resolved requirement closures kept.
const closureCacheSize = 256

var (
	_ ports.ModuleRegistry         = (*Registry)(nil)
	_ ports.ExtrasSource           = (*Registry)(nil)
	_ ports.PackageManagerRegistry = (*Registry)(nil)
)

// Registry implements the package metadata ports on top of a manifest.
// The manifest is loaded on first use.
type Registry struct {
	load func() (*domain.Manifest, error)

	once     sync.Once
	manifest *domain.Manifest
	err      error

	closures *lru.Cache[string, []domain.Package]
}

// New creates a Registry that reads the manifest at path with loader.
func New(loader ports.ConfigLoader, path string) (*Registry, error) {
	return newRegistry(func() (*domain.Manifest, error) {
		return loader.Load(path)
	})
}

// NewFromManifest creates a Registry over an already loaded manifest.
func NewFromManifest(m *domain.Manifest) (*Registry, error) {
	return newRegistry(func() (*domain.Manifest, error) {
		return m, nil
	})
}

func newRegistry(load func() (*domain.Manifest, error)) (*Registry, error) {
	cache, err := lru.New[string, []domain.Package](closureCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create closure cache")
	}
	return &Registry{load: load, closures: cache}, nil
}

func (r *Registry) index() (*domain.PackageIndex, error) {
	r.once.Do(func() {
		r.manifest, r.err = r.load()
		if r.err == nil && r.manifest == nil {
			r.err = zerr.New("no manifest loaded")
		}
	})
	if r.err != nil {
		return nil, r.err
	}
	return r.manifest.Index, nil
}

// flatten returns the named packages and their requirements, dependencies first.
func (r *Registry) flatten(packageNames []string) ([]domain.Package, error) {
	index, err := r.index()
	if err != nil {
		return nil, err
	}

	key := strings.Join(packageNames, "\x00")
	if pkgs, ok := r.closures.Get(key); ok {
		return pkgs, nil
	}

	pkgs, err := index.Resolve(packageNames)
	if err != nil {
		return nil, err
	}
	r.closures.Add(key, pkgs)
	return pkgs, nil
}

func (r *Registry) direct(packageNames []string) ([]domain.Package, error) {
	index, err := r.index()
	if err != nil {
		return nil, err
	}
	return index.Direct(packageNames)
}

// FlattenModuleRegistryDependencies merges the declarations made in
// registryKey by the named packages and everything they require.
func (r *Registry) FlattenModuleRegistryDependencies(packageNames []string, registryKey string) (map[string]string, error) {
	pkgs, err := r.flatten(packageNames)
	if err != nil {
		return nil, err
	}
	return mergeModules(pkgs, registryKey), nil
}

// GetModuleRegistryDependencies merges the declarations made in registryKey
// by the named packages only.
func (r *Registry) GetModuleRegistryDependencies(packageNames []string, registryKey string) (map[string]string, error) {
	pkgs, err := r.direct(packageNames)
	if err != nil {
		return nil, err
	}
	return mergeModules(pkgs, registryKey), nil
}

// RegistryNamesFor lists the registries declared by the packages selected by
// method, in first-declared order. Unknown methods behave like domain.MethodAll.
func (r *Registry) RegistryNamesFor(packageNames []string, method domain.Method) ([]string, error) {
	var (
		pkgs []domain.Package
		err  error
	)
	switch method {
	case domain.MethodNone:
		return []string{}, nil
	case domain.MethodExplicit:
		pkgs, err = r.direct(packageNames)
	default:
		pkgs, err = r.flatten(packageNames)
	}
	if err != nil {
		return nil, err
	}

	names := []string{}
	for i := range pkgs {
		for _, name := range pkgs[i].RegistryNames() {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// FlattenExtras merges the vendored source declarations of the named
// packages and everything they require.
func (r *Registry) FlattenExtras(packageNames []string) (*domain.Extras, error) {
	pkgs, err := r.flatten(packageNames)
	if err != nil {
		return nil, err
	}
	return mergeExtras(pkgs), nil
}

// GetExtras merges the vendored source declarations of the named packages only.
func (r *Registry) GetExtras(packageNames []string) (*domain.Extras, error) {
	pkgs, err := r.direct(packageNames)
	if err != nil {
		return nil, err
	}
	return mergeExtras(pkgs), nil
}

// ExtrasKeys returns the package manager names the manifest recognises.
func (r *Registry) ExtrasKeys() ([]string, error) {
	if _, err := r.index(); err != nil {
		return nil, err
	}
	return slices.Clone(r.manifest.ExtrasKeys), nil
}

func mergeModules(pkgs []domain.Package, registryKey string) map[string]string {
	res := make(map[string]string)
	for i := range pkgs {
		for k, v := range pkgs[i].ModuleRegistries[registryKey] {
			res[k] = v
		}
	}
	return res
}

func mergeExtras(pkgs []domain.Package) *domain.Extras {
	extras := domain.NewExtras()
	for i := range pkgs {
		managers := make([]string, 0, len(pkgs[i].Extras))
		for mgr := range pkgs[i].Extras {
			managers = append(managers, mgr)
		}
		slices.Sort(managers)
		for _, mgr := range managers {
			extras.Merge(mgr, pkgs[i].Extras[mgr])
		}
	}
	return extras
}
