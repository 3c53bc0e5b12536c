package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/rjs/internal/app"
	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/engine/dist"
	"go.trai.ch/zerr"
)

const (
	flagExportFilename       = "export-filename"
	flagWorkingDir           = "working-dir"
	flagBuildDir             = "build-dir"
	flagSourceRegistry       = "source-registry"
	flagSourceRegistryMethod = "source-registry-method"
	flagSourceMapMethod      = "source-map-method"
	flagBundleMapMethod      = "bundle-map-method"
	flagBundledMapMethod     = "bundled-map-method"
	flagStubMissingWithEmpty = "stub-missing-with-empty"
	flagTranspileNoIndent    = "transpile-no-indent"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <package_names>...",
		Short: "Bundle the sources declared by the given packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := specOptions(cmd, args)
			if err != nil {
				return err
			}
			_, err = c.app.CompileAll(cmd.Context(), opts)
			return err
		},
	}

	sourceMethods := dist.SourceMapMethods()
	bundleMethods := dist.BundleMapMethods()

	flags := cmd.Flags()
	flags.StringP(flagExportFilename, "e", "",
		"output filename; defaults to the last package name with a .js suffix")
	flags.StringP(flagWorkingDir, "w", "",
		"working directory holding package manager directories; defaults to the current directory")
	flags.String(flagBuildDir, "",
		"build directory to stage sources in; defaults to a temporary directory removed afterwards")
	flags.StringSlice(flagSourceRegistry, nil,
		"module registry to build the source map from, may be repeated; defaults to the registries the packages declare")
	flags.String(flagSourceRegistryMethod, domain.DefaultMethod.String(),
		"acquisition method for module registries "+choices(sourceMethods))
	flags.String(flagSourceMapMethod, domain.DefaultMethod.String(),
		"acquisition method for transpile sources "+choices(sourceMethods))
	flags.String(flagBundleMapMethod, domain.DefaultMethod.String(),
		"acquisition method for bundled sources "+choices(bundleMethods))
	flags.String(flagBundledMapMethod, domain.DefaultMethod.String(), "")
	_ = flags.MarkDeprecated(flagBundledMapMethod, "use --"+flagBundleMapMethod)
	flags.Bool(flagStubMissingWithEmpty, false,
		"stub modules whose sources are missing with 'empty:' instead of failing")
	flags.Bool(flagTranspileNoIndent, false,
		"do not indent the bodies of wrapped transpile sources")

	return cmd
}

func specOptions(cmd *cobra.Command, args []string) (app.SpecOptions, error) {
	flags := cmd.Flags()
	opts := app.SpecOptions{PackageNames: args}

	opts.ExportTarget, _ = flags.GetString(flagExportFilename)
	opts.WorkingDir, _ = flags.GetString(flagWorkingDir)
	opts.BuildDir, _ = flags.GetString(flagBuildDir)
	opts.StubMissingWithEmpty, _ = flags.GetBool(flagStubMissingWithEmpty)
	opts.TranspileNoIndent, _ = flags.GetBool(flagTranspileNoIndent)

	if flags.Changed(flagSourceRegistry) {
		registries, _ := flags.GetStringSlice(flagSourceRegistry)
		opts.SourceRegistries = registries
	}

	var err error
	if opts.SourceRegistryMethod, err = methodFlag(cmd, flagSourceRegistryMethod, dist.SourceMapMethods()); err != nil {
		return opts, err
	}
	if opts.SourceMapMethod, err = methodFlag(cmd, flagSourceMapMethod, dist.SourceMapMethods()); err != nil {
		return opts, err
	}

	bundleFlag := flagBundleMapMethod
	if !flags.Changed(flagBundleMapMethod) && flags.Changed(flagBundledMapMethod) {
		bundleFlag = flagBundledMapMethod
	}
	if opts.BundleMapMethod, err = methodFlag(cmd, bundleFlag, dist.BundleMapMethods()); err != nil {
		return opts, err
	}

	return opts, nil
}

func methodFlag(cmd *cobra.Command, name string, allowed []domain.Method) (domain.Method, error) {
	value, _ := cmd.Flags().GetString(name)
	m := domain.Method(value)
	if !slices.Contains(allowed, m) {
		return "", zerr.With(
			zerr.New(fmt.Sprintf("invalid value %q for --%s %s", value, name, choices(allowed))),
			"flag", name,
		)
	}
	return m, nil
}

func choices(methods []domain.Method) string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return "(choose from " + strings.Join(names, ", ") + ")"
}
