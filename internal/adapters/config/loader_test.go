package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rjs/internal/adapters/config"
	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rjs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeManifest(t, `
version: "1"
extras_keys: [npm]
packages:
  example.pkg:
    requires: [base.pkg]
    module_registries:
      calmjs.module:
        example.pkg.lib: /abs/path/example/pkg/lib.js
        example.pkg.rel: src/example/pkg/rel.js
    extras_calmjs:
      npm:
        jquery: jquery/dist/jquery.js
  base.pkg: {}
`)

	m, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"npm"}, m.ExtrasKeys)
	assert.Equal(t, []string{"base.pkg", "example.pkg"}, m.Index.Names())

	pkg, ok := m.Index.Get("example.pkg")
	require.True(t, ok)
	assert.Equal(t, []string{"base.pkg"}, pkg.Requires)
	assert.Equal(t, "/abs/path/example/pkg/lib.js", pkg.ModuleRegistries["calmjs.module"]["example.pkg.lib"])
	assert.Equal(t,
		filepath.Join(filepath.Dir(path), "src", "example", "pkg", "rel.js"),
		pkg.ModuleRegistries["calmjs.module"]["example.pkg.rel"],
	)
	assert.Equal(t, map[string]map[string]string{
		"npm": {"jquery": "jquery/dist/jquery.js"},
	}, pkg.Extras)
}

func TestLoad_DefaultExtrasKeys(t *testing.T) {
	path := writeManifest(t, `
packages:
  solo: {}
`)

	m, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultExtrasKeys, m.ExtrasKeys)
}

func TestLoad_MissingDependency(t *testing.T) {
	path := writeManifest(t, `
version: "1"
packages:
  app:
    requires: [missing]
`)

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for missing dependency, got nil")
	}
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Errorf("expected ErrMissingDependency, got %v", err)
	}
}

func TestLoad_Cycle(t *testing.T) {
	path := writeManifest(t, `
packages:
  a:
    requires: [b]
  b:
    requires: [a]
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	path := writeManifest(t, `version: "2"`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest version")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "packages: [unclosed")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_LogsPackageCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	path := writeManifest(t, `
packages:
  one: {}
  two: {}
`)

	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "loaded 2 package(s)")
	})

	_, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
}
