package dist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator builds transpile and bundled source maps from package metadata.
type Generator struct {
	registry ports.ModuleRegistry
	extras   ports.ExtrasSource
	managers ports.PackageManagerRegistry
	logger   ports.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(
	registry ports.ModuleRegistry,
	extras ports.ExtrasSource,
	managers ports.PackageManagerRegistry,
	logger ports.Logger,
) *Generator {
	return &Generator{
		registry: registry,
		extras:   extras,
		managers: managers,
		logger:   logger,
	}
}

// GenerateTranspileSourceMaps maps every module the packages declare in the
// given registries to its source path, or to domain.Stub.
//
// Steps of the method run first, registries second, so that a later step
// overrides every registry of an earlier one.
func (g *Generator) GenerateTranspileSourceMaps(
	packageNames []string,
	registries []string,
	method domain.Method,
) (map[string]string, error) {
	steps := AcquireMethod(sourceMapMethods, method, domain.DefaultMethod)
	sourceMap := make(map[string]string)

	for _, step := range steps {
		for _, registryKey := range registries {
			declared, err := step.acquire(g.registry, packageNames, registryKey)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to acquire module declarations"), "registry", registryKey)
			}
			for k, v := range declared {
				sourceMap[k] = step.transform(v)
			}
		}
	}

	return sourceMap, nil
}

// GenerateBundledSourceMaps maps every vendored module the packages declare
// to its file under workingDir/<package manager>, or to domain.Empty.
// Managers that are not recognised or whose directory is missing contribute
// nothing.
func (g *Generator) GenerateBundledSourceMaps(
	packageNames []string,
	workingDir string,
	method domain.Method,
) (map[string]string, error) {
	bundledSourceMap := make(map[string]string)

	step := AcquireMethod(bundleMapMethods, method, domain.DefaultMethod)
	if step == nil {
		return bundledSourceMap, nil
	}

	if workingDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine working directory")
		}
		workingDir = cwd
	}

	keys, err := g.managers.ExtrasKeys()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list package manager directories")
	}
	valid := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		valid[k] = struct{}{}
	}

	extras, err := step.acquire(g.extras, packageNames)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to acquire bundled source declarations")
	}

	for _, mgr := range extras.Managers() {
		if _, ok := valid[mgr]; !ok {
			continue
		}
		declared := extras.Modules(mgr)
		basedir := filepath.Join(workingDir, mgr)
		if !isDir(basedir) {
			if len(declared) > 0 {
				g.logger.Warn(fmt.Sprintf(
					"acquired extras_calmjs needs from '%s', but working directory '%s' does not contain it; bundling may fail",
					mgr, workingDir,
				))
			}
			continue
		}

		for k, v := range declared {
			bundledSourceMap[k] = step.join(basedir, strings.Split(v, "/")...)
		}
	}

	return bundledSourceMap, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
