package config

// Manifestfile represents the structure of the rjs.yaml package manifest.
type Manifestfile struct {
	Version    string                `yaml:"version"`
	ExtrasKeys []string              `yaml:"extras_keys"`
	Packages   map[string]PackageDTO `yaml:"packages"`
}

// PackageDTO represents a package declaration in the manifest.
type PackageDTO struct {
	Requires         []string                     `yaml:"requires"`
	ModuleRegistries map[string]map[string]string `yaml:"module_registries"`
	ExtrasCalmjs     map[string]map[string]string `yaml:"extras_calmjs"`
}
