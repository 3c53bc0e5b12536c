package rjs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProfileName is the file name of the build profile written into the build directory.
const ProfileName = "build.json"

// Profile is the r.js build profile handed to the optimizer with -o.
type Profile struct {
	BaseURL  string            `json:"baseUrl"`
	Out      string            `json:"out"`
	Include  []string          `json:"include"`
	Paths    map[string]string `json:"paths,omitempty"`
	Optimize string            `json:"optimize"`
}

// NewProfile builds the profile for a staged build. Staged transpile modules
// resolve through baseUrl; stubbed modules and bundled sources are mapped
// through paths. Sentinel modules are never included.
func NewProfile(buildDir, out string, transpile, bundle map[string]string, stubbed []string) *Profile {
	p := &Profile{
		BaseURL:  buildDir,
		Out:      out,
		Include:  []string{},
		Paths:    make(map[string]string),
		Optimize: "none",
	}

	for module, source := range transpile {
		if domain.IsSentinel(source) {
			p.Paths[module] = domain.Stub
			continue
		}
		p.Include = append(p.Include, module)
	}
	for _, module := range stubbed {
		p.Paths[module] = domain.Stub
		p.Include = slices.DeleteFunc(p.Include, func(m string) bool { return m == module })
	}
	for module, source := range bundle {
		if domain.IsSentinel(source) {
			p.Paths[module] = domain.Empty
			continue
		}
		p.Paths[module] = strings.TrimSuffix(source, ".js")
		p.Include = append(p.Include, module)
	}

	slices.Sort(p.Include)
	p.Include = slices.Compact(p.Include)
	return p
}

// Write stores the profile as <dir>/build.json and returns its path.
func (p *Profile) Write(dir string) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal build profile")
	}

	path := filepath.Join(dir, ProfileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write build profile"), "path", path)
	}
	return path, nil
}
