package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Stager = (*Stager)(nil)

const (
	amdHeader = "define(function(require, exports, module) {\n"
	amdFooter = "});\n"
	indent    = "    "

	stageConcurrency = 8
)

// amdDefine matches sources that already declare themselves as AMD modules.
var amdDefine = regexp.MustCompile(`(?m)^\s*define\s*\(`)

// Stager copies transpile sources into the build directory, wrapping
// CommonJS style sources in an AMD define call.
type Stager struct{}

// NewStager creates a new Stager.
func NewStager() *Stager {
	return &Stager{}
}

// Stage writes every module of sources to <buildDir>/<module>.js.
// Sentinel values are left for the build profile to handle. Sources missing on
// disk are not written and are returned sorted in missing.
func (s *Stager) Stage(
	ctx context.Context,
	buildDir string,
	sources map[string]string,
	noIndent bool,
) ([]string, error) {
	var (
		mu      sync.Mutex
		missing []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(stageConcurrency)

	for module, source := range sources {
		if domain.IsSentinel(source) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(source) //nolint:gosec // source paths come from the package manifest
			if err != nil {
				if os.IsNotExist(err) {
					mu.Lock()
					missing = append(missing, module)
					mu.Unlock()
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to read source"), "path", source)
			}

			target, err := stagingTarget(buildDir, module)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create staging directory"), "path", target)
			}
			if err := os.WriteFile(target, WrapModule(content, noIndent), 0o600); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write staged module"), "path", target)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(missing)
	return missing, nil
}

// stagingTarget returns <buildDir>/<module>.js, refusing module names that
// would escape buildDir.
func stagingTarget(buildDir, module string) (string, error) {
	target := filepath.Join(buildDir, filepath.FromSlash(module)+".js")
	rel, err := filepath.Rel(buildDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.New("module name escapes build directory"), "module", module)
	}
	return target, nil
}

// WrapModule wraps content in an AMD define call. Content that already calls
// define is returned unchanged. Unless noIndent is set, every non-empty line
// of the body is indented by four spaces.
func WrapModule(content []byte, noIndent bool) []byte {
	if amdDefine.Match(content) {
		return content
	}

	var buf bytes.Buffer
	buf.Grow(len(content) + len(amdHeader) + len(amdFooter))
	buf.WriteString(amdHeader)

	// SplitAfter keeps each line's own ending, so CRLF sources stay CRLF.
	for _, line := range bytes.SplitAfter(content, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		body := bytes.TrimRight(line, "\r\n")
		if !noIndent && len(body) > 0 {
			buf.WriteString(indent)
		}
		buf.Write(line)
		if line[len(line)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	buf.WriteString(amdFooter)
	return buf.Bytes()
}
