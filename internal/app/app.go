// Package app implements the application layer for rjs.
package app

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/rjs/internal/engine/dist"
	"go.trai.ch/zerr"
)

// FallbackExportTarget is the export target used when no package names are given.
const FallbackExportTarget = "calmjs.rjs.export.js"

// SpecOptions holds the parameters of a spec construction. Zero values select
// the defaults: the toolchain's working directory, a temporary build
// directory, the "all" methods and automatic registry selection.
type SpecOptions struct {
	PackageNames []string
	ExportTarget string
	WorkingDir   string
	BuildDir     string

	SourceRegistryMethod domain.Method
	// SourceRegistries overrides automatic registry selection when non-nil.
	SourceRegistries []string
	SourceMapMethod  domain.Method
	BundleMapMethod  domain.Method

	StubMissingWithEmpty bool
	TranspileNoIndent    bool
}

// App builds specs and hands them to the toolchain.
type App struct {
	generator *dist.Generator
	registry  ports.ModuleRegistry
	toolchain ports.Toolchain
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	generator *dist.Generator,
	registry ports.ModuleRegistry,
	toolchain ports.Toolchain,
	logger ports.Logger,
) *App {
	return &App{
		generator: generator,
		registry:  registry,
		toolchain: toolchain,
		logger:    logger,
	}
}

// CreateSpec builds the spec for bundling the given packages.
func (a *App) CreateSpec(opts SpecOptions) (*domain.Spec, error) {
	workingDir := opts.WorkingDir
	if workingDir == "" {
		workingDir = a.toolchain.WorkingDir()
	}

	exportTarget := opts.ExportTarget
	if exportTarget == "" {
		if len(opts.PackageNames) > 0 {
			exportTarget = opts.PackageNames[len(opts.PackageNames)-1] + ".js"
		} else {
			exportTarget = FallbackExportTarget
		}
	}

	registryMethod := orDefault(opts.SourceRegistryMethod)

	spec := domain.NewSpec()
	if err := spec.Set(domain.KeyTranspileNoIndent, opts.TranspileNoIndent); err != nil {
		return nil, err
	}

	registries := opts.SourceRegistries
	if registries == nil {
		var err error
		registries, err = a.registry.RegistryNamesFor(opts.PackageNames, registryMethod)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve module registries")
		}
		switch {
		case len(registries) > 0:
			a.logger.Info(fmt.Sprintf("automatically picked registries %v for building source map", registries))
		case len(opts.PackageNames) > 0:
			a.logger.Warn(fmt.Sprintf(
				"no module registry declarations found using packages %v using acquisition method '%s'",
				opts.PackageNames, registryMethod,
			))
		default:
			a.logger.Warn("no packages specified for spec construction")
		}
	} else {
		a.logger.Info(fmt.Sprintf("using manually specified registries %v for building source map", registries))
	}

	entries := []struct {
		key   domain.SpecKey
		value any
	}{
		{domain.KeyBuildDir, opts.BuildDir},
		{domain.KeyModuleRegistryNames, slices.Clone(registries)},
		{domain.KeyExportTarget, exportTarget},
		{domain.KeySourcePackageNames, slices.Clone(opts.PackageNames)},
		{domain.KeyStubMissingWithEmpty, opts.StubMissingWithEmpty},
	}
	for _, e := range entries {
		if err := spec.Set(e.key, e.value); err != nil {
			return nil, err
		}
	}

	transpile, err := a.generator.GenerateTranspileSourceMaps(
		opts.PackageNames, registries, orDefault(opts.SourceMapMethod))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to generate transpile source map")
	}
	if err := domain.UpdateSourceMap(spec, domain.KeyTranspileSourceMap, transpile); err != nil {
		return nil, err
	}

	bundled, err := a.generator.GenerateBundledSourceMaps(
		opts.PackageNames, workingDir, orDefault(opts.BundleMapMethod))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to generate bundle source map")
	}
	if err := domain.UpdateSourceMap(spec, domain.KeyBundleSourceMap, bundled); err != nil {
		return nil, err
	}

	return spec, nil
}

// CompileAll builds the spec and runs the toolchain with it. The spec is
// returned whenever it could be built, including when the toolchain fails.
func (a *App) CompileAll(ctx context.Context, opts SpecOptions) (*domain.Spec, error) {
	spec, err := a.CreateSpec(opts)
	if err != nil {
		return nil, err
	}

	if err := a.toolchain.Run(ctx, spec); err != nil {
		return spec, zerr.Wrap(err, "toolchain failed")
	}
	return spec, nil
}

// CompleteRJS returns the toolchain together with a default spec that, run
// together, produce a complete artifact of packageNames at exportTarget.
func (a *App) CompleteRJS(packageNames []string, exportTarget string) (ports.Toolchain, *domain.Spec, error) {
	spec, err := a.CreateSpec(SpecOptions{
		PackageNames: packageNames,
		ExportTarget: exportTarget,
	})
	if err != nil {
		return nil, nil, err
	}
	return a.toolchain, spec, nil
}

func orDefault(m domain.Method) domain.Method {
	if m == "" {
		return domain.DefaultMethod
	}
	return m
}
