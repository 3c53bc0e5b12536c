// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/rjs/internal/core/domain"

// ModuleRegistry answers which modules packages declare in a module registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ModuleRegistry interface {
	// FlattenModuleRegistryDependencies follows the full requirement graph of
	// the named packages and merges every module -> path declaration made in
	// registryKey. Dependents override their dependencies.
	FlattenModuleRegistryDependencies(packageNames []string, registryKey string) (map[string]string, error)

	// GetModuleRegistryDependencies returns only the declarations the named
	// packages make themselves in registryKey.
	GetModuleRegistryDependencies(packageNames []string, registryKey string) (map[string]string, error)

	// RegistryNamesFor returns the registry names declared for the named
	// packages, using method to decide between transitive and direct lookup.
	RegistryNamesFor(packageNames []string, method domain.Method) ([]string, error)
}

// ExtrasSource answers which vendored sources packages declare, grouped by
// package manager.
type ExtrasSource interface {
	// FlattenExtras merges the declarations of the named packages and everything they require.
	FlattenExtras(packageNames []string) (*domain.Extras, error)

	// GetExtras returns only the declarations of the named packages.
	GetExtras(packageNames []string) (*domain.Extras, error)
}

// PackageManagerRegistry lists the package manager names that are valid
// vendor subdirectories of a working directory.
type PackageManagerRegistry interface {
	ExtrasKeys() ([]string, error)
}
