package domain

import "go.trai.ch/zerr"

var (
	// ErrSpecKeyAlreadySet is returned when a spec key is written a second time.
	ErrSpecKeyAlreadySet = zerr.New("spec key already set")

	// ErrPackageAlreadyExists is returned when a package is declared twice in the index.
	ErrPackageAlreadyExists = zerr.New("package already exists")

	// ErrPackageNotFound is returned when a requested package is not declared in the index.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrMissingDependency is returned when a package requires a package that is not declared.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the package requirement graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrSourceNotFound is returned when a transpile source declared for a module does not exist.
	ErrSourceNotFound = zerr.New("transpile source not found")

	// ErrExportTargetMissing is returned when the bundler finished without producing the export target.
	ErrExportTargetMissing = zerr.New("export target was not produced")

	// ErrBuildExecutionFailed is returned when the bundler process fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
