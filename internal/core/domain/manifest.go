package domain

// DefaultExtrasKeys are the package manager directories recognised when a
// manifest does not list its own.
var DefaultExtrasKeys = []string{"node_modules", "bower_components"}

// Manifest is the loaded package metadata.
type Manifest struct {
	// Index holds every declared package.
	Index *PackageIndex

	// ExtrasKeys lists the package manager names that are valid vendor directories.
	ExtrasKeys []string
}
