// Package config provides the settings and package manifest loaders for rjs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// manifestVersion is the only manifest format version understood.
const manifestVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the manifest at path and returns the validated package index.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.logger.Info(fmt.Sprintf("loaded %d package(s) from %s", len(m.Index.Names()), path))
	return m, nil
}

// Load reads a manifest file from the given path.
// Relative source paths are resolved against the directory of the manifest.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var mf Manifestfile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	if mf.Version != "" && mf.Version != manifestVersion {
		return nil, zerr.With(zerr.New("unsupported manifest version"), "version", mf.Version)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve manifest directory")
	}

	index := domain.NewPackageIndex()
	for name, dto := range mf.Packages {
		if name == "" {
			return nil, zerr.New("package name must not be empty")
		}
		pkg := &domain.Package{
			Name:             name,
			Requires:         slices.Clone(dto.Requires),
			ModuleRegistries: resolveSources(root, dto.ModuleRegistries),
			Extras:           dto.ExtrasCalmjs,
		}
		if err := index.Add(pkg); err != nil {
			return nil, err
		}
	}

	if err := index.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	extrasKeys := mf.ExtrasKeys
	if len(extrasKeys) == 0 {
		extrasKeys = slices.Clone(domain.DefaultExtrasKeys)
	}

	return &domain.Manifest{
		Index:      index,
		ExtrasKeys: extrasKeys,
	}, nil
}

func resolveSources(root string, registries map[string]map[string]string) map[string]map[string]string {
	if registries == nil {
		return nil
	}
	res := make(map[string]map[string]string, len(registries))
	for registry, modules := range registries {
		resolved := make(map[string]string, len(modules))
		for module, path := range modules {
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, filepath.FromSlash(path))
			}
			resolved[module] = path
		}
		res[registry] = resolved
	}
	return res
}
