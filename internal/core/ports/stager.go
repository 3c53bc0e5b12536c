package ports

import "context"

// Stager copies transpile sources into a build directory.
type Stager interface {
	// Stage writes every module -> source path entry of sources to
	// <buildDir>/<module>.js. Sources that do not exist are skipped and
	// reported in missing.
	Stage(ctx context.Context, buildDir string, sources map[string]string, noIndent bool) (missing []string, err error)
}
