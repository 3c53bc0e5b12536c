package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rjs/internal/app"
	_ "go.trai.ch/rjs/internal/wiring"
)

// TestGraftDependencies resolves the full graph so a missing or misdeclared
// node fails here rather than at startup.
func TestGraftDependencies(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	t.Setenv("RJS_STATE", filepath.Join(tmpDir, "state.json"))

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)

	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NotNil(t, components.Telemetry)
}
