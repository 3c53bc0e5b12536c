package domain

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/zerr"
)

// SpecKey names an entry of a Spec.
type SpecKey string

// Keys populated by the spec builder.
const (
	KeyBuildDir             SpecKey = "build_dir"
	KeyModuleRegistryNames  SpecKey = "calmjs_module_registry_names"
	KeyExportTarget         SpecKey = "export_target"
	KeySourcePackageNames   SpecKey = "source_package_names"
	KeyStubMissingWithEmpty SpecKey = "stub_missing_with_empty"
	KeyTranspileNoIndent    SpecKey = "transpile_no_indent"
	KeyTranspileSourceMap   SpecKey = "transpile_source_map"
	KeyBundleSourceMap      SpecKey = "bundle_source_map"
)

// Keys populated by the toolchain.
const (
	KeyBuildConfigPath SpecKey = "build_config_path"
	KeyArtifactDigest  SpecKey = "artifact_digest"
)

// Spec is the configuration handed to a toolchain. Every key can be written
// exactly once; a second write fails and keeps the first value.
type Spec struct {
	mu     sync.RWMutex
	values map[SpecKey]any
}

// NewSpec creates an empty Spec.
func NewSpec() *Spec {
	return &Spec{values: make(map[SpecKey]any)}
}

// Set stores value under key. It returns ErrSpecKeyAlreadySet if the key
// already holds a value.
func (s *Spec) Set(key SpecKey, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[key]; exists {
		return zerr.With(zerr.Wrap(ErrSpecKeyAlreadySet, "refusing to overwrite spec entry"), "key", string(key))
	}
	s.values[key] = value
	return nil
}

// Get returns the value stored under key.
func (s *Spec) Get(key SpecKey) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key holds a value.
func (s *Spec) Has(key SpecKey) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns the populated keys in sorted order.
func (s *Spec) Keys() []SpecKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.values))
}

// String returns the string stored under key, or "" if absent or not a string.
func (s *Spec) String(key SpecKey) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// Bool returns the bool stored under key, or false if absent or not a bool.
func (s *Spec) Bool(key SpecKey) bool {
	v, _ := s.Get(key)
	b, _ := v.(bool)
	return b
}

// Strings returns the string slice stored under key.
func (s *Spec) Strings(key SpecKey) []string {
	v, _ := s.Get(key)
	strs, _ := v.([]string)
	return strs
}

// SourceMap returns the module mapping stored under key.
func (s *Spec) SourceMap(key SpecKey) map[string]string {
	v, _ := s.Get(key)
	m, _ := v.(map[string]string)
	return m
}

// UpdateSourceMap stores a copy of sourceMap under key. Like Set, it fails if
// the key was already populated.
func UpdateSourceMap(spec *Spec, key SpecKey, sourceMap map[string]string) error {
	m := make(map[string]string, len(sourceMap))
	maps.Copy(m, sourceMap)
	return spec.Set(key, m)
}
