package dist

import (
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
)

// sourceAcquirer collects module -> path declarations for one registry.
type sourceAcquirer func(r ports.ModuleRegistry, packageNames []string, registryKey string) (map[string]string, error)

// sourceStep pairs an acquirer with the transform applied to every value it returns.
type sourceStep struct {
	acquire   sourceAcquirer
	transform func(string) string
}

// extrasAcquirer collects vendored source declarations grouped by package manager.
type extrasAcquirer func(s ports.ExtrasSource, packageNames []string) (*domain.Extras, error)

// bundleStep pairs an extras acquirer with the joiner producing the final value.
type bundleStep struct {
	acquire extrasAcquirer
	join    func(base string, elem ...string) string
}

func identity(v string) string {
	return v
}

func stub(string) string {
	return domain.Stub
}

func join(base string, elem ...string) string {
	return filepath.Join(append([]string{base}, elem...)...)
}

func empty(string, ...string) string {
	return domain.Empty
}

// sourceMapMethods lists the steps of each source map method. Steps run in
// order and later steps overwrite earlier ones. For explicit, the transitive
// set is stubbed first so that only the named packages' own declarations
// keep real paths.
var sourceMapMethods = map[domain.Method][]sourceStep{
	domain.MethodAll: {
		{ports.ModuleRegistry.FlattenModuleRegistryDependencies, identity},
	},
	domain.MethodExplicit: {
		{ports.ModuleRegistry.FlattenModuleRegistryDependencies, stub},
		{ports.ModuleRegistry.GetModuleRegistryDependencies, identity},
	},
	domain.MethodNone: nil,
}

var bundleMapMethods = map[domain.Method]*bundleStep{
	domain.MethodAll:      {ports.ExtrasSource.FlattenExtras, join},
	domain.MethodExplicit: {ports.ExtrasSource.GetExtras, join},
	domain.MethodEmpty:    {ports.ExtrasSource.FlattenExtras, empty},
	domain.MethodNone:     nil,
}

// AcquireMethod returns methods[key] if key is present, otherwise methods[def].
func AcquireMethod[V any](methods map[domain.Method]V, key, def domain.Method) V {
	if v, ok := methods[key]; ok {
		return v
	}
	return methods[def]
}

// SourceMapMethods returns the recognised source map method names, sorted.
func SourceMapMethods() []domain.Method {
	return slices.Sorted(maps.Keys(sourceMapMethods))
}

// BundleMapMethods returns the recognised bundle map method names, sorted.
func BundleMapMethods() []domain.Method {
	return slices.Sorted(maps.Keys(bundleMapMethods))
}
