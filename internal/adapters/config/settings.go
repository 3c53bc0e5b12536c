package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
)

// Environment variables read by LoadSettings.
const (
	EnvManifest = "RJS_MANIFEST"
	EnvBundler  = "RJS_BUNDLER"
	EnvState    = "RJS_STATE"
)

// Settings holds process level configuration.
type Settings struct {
	// ManifestPath is the package manifest to read.
	ManifestPath string
	// Bundler is the r.js executable.
	Bundler string
	// StatePath is the JSON file recording the last artifacts built.
	StatePath string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ManifestPath: "rjs.yaml",
		Bundler:      "r.js",
		StatePath:    filepath.Join(".rjs", "state.json"),
	}
}

// LoadSettings reads an optional .env file in dir into the process
// environment, then overlays the environment onto DefaultSettings.
// Variables already set in the environment take precedence over the file.
func LoadSettings(dir string) (Settings, error) {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Settings{}, zerr.With(zerr.Wrap(err, "failed to load env file"), "path", envFile)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, zerr.With(zerr.Wrap(err, "failed to stat env file"), "path", envFile)
	}

	s := DefaultSettings()
	if v := os.Getenv(EnvManifest); v != "" {
		s.ManifestPath = v
	}
	if v := os.Getenv(EnvBundler); v != "" {
		s.Bundler = v
	}
	if v := os.Getenv(EnvState); v != "" {
		s.StatePath = v
	}
	return s, nil
}
