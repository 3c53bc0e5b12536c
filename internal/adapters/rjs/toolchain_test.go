package rjs_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rjs/internal/adapters/cas"
	"go.trai.ch/rjs/internal/adapters/fs"
	"go.trai.ch/rjs/internal/adapters/rjs"
	"go.trai.ch/rjs/internal/adapters/telemetry"
	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	toolchain *rjs.Toolchain
	executor  *mocks.MockExecutor
	logger    *mocks.MockLogger
	store     *cas.Store
	srcDir    string
	outDir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	f := &fixture{
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		store:    store,
		srcDir:   t.TempDir(),
		outDir:   t.TempDir(),
	}
	f.toolchain = rjs.New(
		"r.js",
		f.executor,
		fs.NewStager(),
		fs.NewHasher(),
		fs.NewVerifier(),
		store,
		telemetry.NewNoOp(),
		f.logger,
	)
	return f
}

func (f *fixture) writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.srcDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newSpec(t *testing.T, values map[domain.SpecKey]any) *domain.Spec {
	t.Helper()
	spec := domain.NewSpec()
	for k, v := range values {
		require.NoError(t, spec.Set(k, v))
	}
	return spec
}

// bundleTo makes the executor write content to out after checking the invocation.
func bundleTo(t *testing.T, out, content string, profile *rjs.Profile) func(context.Context, *domain.Invocation) error {
	t.Helper()
	return func(_ context.Context, inv *domain.Invocation) error {
		require.Len(t, inv.Command, 3)
		assert.Equal(t, "r.js", inv.Command[0])
		assert.Equal(t, "-o", inv.Command[1])

		data, err := os.ReadFile(inv.Command[2])
		require.NoError(t, err)
		if profile != nil {
			require.NoError(t, json.Unmarshal(data, profile))
		}
		return os.WriteFile(out, []byte(content), 0o600)
	}
}

func TestToolchain_Run(t *testing.T) {
	f := newFixture(t)
	lib := f.writeSource(t, "lib.js", "exports.lib = true;\n")
	buildDir := filepath.Join(t.TempDir(), "build")
	out := filepath.Join(f.outDir, "example.pkg.js")

	spec := newSpec(t, map[domain.SpecKey]any{
		domain.KeyBuildDir:             buildDir,
		domain.KeyExportTarget:         out,
		domain.KeySourcePackageNames:   []string{"example.pkg"},
		domain.KeyStubMissingWithEmpty: false,
		domain.KeyTranspileNoIndent:    false,
		domain.KeyTranspileSourceMap: map[string]string{
			"example/pkg/lib": lib,
			"base/dep":        domain.Stub,
		},
		domain.KeyBundleSourceMap: map[string]string{
			"jquery":  "/work/npm/jquery/dist/jquery.js",
			"skipped": domain.Empty,
		},
	})

	var profile rjs.Profile
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(bundleTo(t, out, "bundle", &profile))
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.toolchain.Run(context.Background(), spec))

	assert.Equal(t, buildDir, profile.BaseURL)
	assert.Equal(t, out, profile.Out)
	assert.Equal(t, "none", profile.Optimize)
	assert.Equal(t, []string{"example/pkg/lib", "jquery"}, profile.Include)
	assert.Equal(t, map[string]string{
		"base/dep": "empty:",
		"jquery":   "/work/npm/jquery/dist/jquery",
		"skipped":  "empty:",
	}, profile.Paths)

	staged, err := os.ReadFile(filepath.Join(buildDir, "example", "pkg", "lib.js"))
	require.NoError(t, err)
	assert.Contains(t, string(staged), "    exports.lib = true;")

	assert.Equal(t, filepath.Join(buildDir, rjs.ProfileName), spec.String(domain.KeyBuildConfigPath))
	digest := spec.String(domain.KeyArtifactDigest)
	assert.Len(t, digest, 16)

	info, err := f.store.Get(out)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, digest, info.Digest)
	assert.Equal(t, []string{"example.pkg"}, info.Packages)
}

func TestToolchain_Run_TemporaryBuildDir(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.outDir, "out.js")
	spec := newSpec(t, map[domain.SpecKey]any{
		domain.KeyExportTarget:       out,
		domain.KeyTranspileSourceMap: map[string]string{},
		domain.KeyBundleSourceMap:    map[string]string{},
	})

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(bundleTo(t, out, "bundle", nil))
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.toolchain.Run(context.Background(), spec))

	configPath := spec.String(domain.KeyBuildConfigPath)
	require.NotEmpty(t, configPath)
	_, err := os.Stat(filepath.Dir(configPath))
	assert.True(t, os.IsNotExist(err), "temporary build directory should be removed")
}

func TestToolchain_Run_MissingSource(t *testing.T) {
	f := newFixture(t)
	spec := newSpec(t, map[domain.SpecKey]any{
		domain.KeyExportTarget: filepath.Join(f.outDir, "out.js"),
		domain.KeyTranspileSourceMap: map[string]string{
			"example/pkg/gone": filepath.Join(f.srcDir, "gone.js"),
		},
	})

	err := f.toolchain.Run(context.Background(), spec)
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.False(t, spec.Has(domain.KeyBuildConfigPath))
}

func TestToolchain_Run_StubMissing(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.outDir, "out.js")
	spec := newSpec(t, map[domain.SpecKey]any{
		domain.KeyExportTarget:         out,
		domain.KeyStubMissingWithEmpty: true,
		domain.KeyTranspileSourceMap: map[string]string{
			"example/pkg/gone": filepath.Join(f.srcDir, "gone.js"),
		},
	})

	var profile rjs.Profile
	f.logger.EXPECT().Warn(gomock.Any())
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(bundleTo(t, out, "bundle", &profile))
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.toolchain.Run(context.Background(), spec))
	assert.Empty(t, profile.Include)
	assert.Equal(t, map[string]string{"example/pkg/gone": "empty:"}, profile.Paths)
}

func TestToolchain_Run_BundlerFails(t *testing.T) {
	f := newFixture(t)
	spec := newSpec(t, map[domain.SpecKey]any{
		domain.KeyExportTarget: filepath.Join(f.outDir, "out.js"),
	})

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))

	err := f.toolchain.Run(context.Background(), spec)
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	assert.True(t, spec.Has(domain.KeyBuildConfigPath))
	assert.False(t, spec.Has(domain.KeyArtifactDigest))
}

func TestToolchain_Run_NoOutput(t *testing.T) {
	f := newFixture(t)
	spec := newSpec(t, map[domain.SpecKey]any{
		domain.KeyExportTarget: filepath.Join(f.outDir, "out.js"),
	})

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)

	err := f.toolchain.Run(context.Background(), spec)
	require.ErrorIs(t, err, domain.ErrExportTargetMissing)
}

func TestToolchain_Run_NoExportTarget(t *testing.T) {
	f := newFixture(t)

	err := f.toolchain.Run(context.Background(), domain.NewSpec())
	require.Error(t, err)
}

func TestToolchain_Run_UnchangedArtifact(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.outDir, "out.js")

	for range 2 {
		spec := newSpec(t, map[domain.SpecKey]any{domain.KeyExportTarget: out})
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(bundleTo(t, out, "same", nil))
		f.logger.EXPECT().Info(gomock.Any())
		require.NoError(t, f.toolchain.Run(context.Background(), spec))
	}

	info, err := f.store.Get(out)
	require.NoError(t, err)
	require.NotNil(t, info)
}

func TestToolchain_WorkingDir(t *testing.T) {
	f := newFixture(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, f.toolchain.WorkingDir())
}

func TestNewProfile_DeduplicatesInclude(t *testing.T) {
	p := rjs.NewProfile("/b", "/o.js",
		map[string]string{"a": "/src/a.js"},
		map[string]string{"a": "/vendor/a.js"},
		nil,
	)
	assert.Equal(t, []string{"a"}, p.Include)
	assert.Equal(t, "/vendor/a", p.Paths["a"])
}
