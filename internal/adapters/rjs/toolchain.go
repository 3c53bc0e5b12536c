// Package rjs implements the r.js toolchain that turns a spec into a bundle.
package rjs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Toolchain = (*Toolchain)(nil)

// Phase names recorded through telemetry.
const (
	PhaseStage  = "stage"
	PhaseBundle = "bundle"
	PhaseVerify = "verify"
)

// Toolchain stages the sources named by a spec, writes an r.js build profile
// and runs the bundler against it.
type Toolchain struct {
	bundler   string
	executor  ports.Executor
	stager    ports.Stager
	hasher    ports.Hasher
	verifier  ports.Verifier
	store     ports.BuildInfoStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Toolchain running the given bundler executable.
func New(
	bundler string,
	executor ports.Executor,
	stager ports.Stager,
	hasher ports.Hasher,
	verifier ports.Verifier,
	store ports.BuildInfoStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Toolchain {
	return &Toolchain{
		bundler:   bundler,
		executor:  executor,
		stager:    stager,
		hasher:    hasher,
		verifier:  verifier,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// WorkingDir returns the current directory, or "." if it cannot be determined.
func (t *Toolchain) WorkingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Run builds the bundle described by spec. When the spec names no build
// directory a temporary one is used and removed afterwards. On success the
// spec gains build_config_path and artifact_digest.
func (t *Toolchain) Run(ctx context.Context, spec *domain.Spec) error {
	target := spec.String(domain.KeyExportTarget)
	if target == "" {
		return zerr.New("spec has no export target")
	}
	exportTarget, err := filepath.Abs(target)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve export target"), "export_target", target)
	}

	buildDir := spec.String(domain.KeyBuildDir)
	if buildDir == "" {
		tmp, err := os.MkdirTemp("", "rjs-build-")
		if err != nil {
			return zerr.Wrap(err, "failed to create temporary build directory")
		}
		defer os.RemoveAll(tmp) //nolint:errcheck // Best effort cleanup
		buildDir = tmp
	} else if err := os.MkdirAll(buildDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build directory"), "build_dir", buildDir)
	}

	var configPath string
	err = t.phase(ctx, PhaseStage, func(ctx context.Context, v ports.Vertex) error {
		var err error
		configPath, err = t.stage(ctx, v, spec, buildDir, exportTarget)
		return err
	})
	if err != nil {
		return err
	}
	if err := spec.Set(domain.KeyBuildConfigPath, configPath); err != nil {
		return err
	}

	err = t.phase(ctx, PhaseBundle, func(ctx context.Context, v ports.Vertex) error {
		return t.bundle(ctx, v, configPath)
	})
	if err != nil {
		return err
	}

	var digest string
	err = t.phase(ctx, PhaseVerify, func(_ context.Context, v ports.Vertex) error {
		var err error
		digest, err = t.verify(v, spec, exportTarget)
		return err
	})
	if err != nil {
		return err
	}
	return spec.Set(domain.KeyArtifactDigest, digest)
}

func (t *Toolchain) phase(ctx context.Context, name string, fn func(context.Context, ports.Vertex) error) error {
	ctx, v := t.telemetry.Record(ctx, name)
	err := fn(ctx, v)
	if err != nil {
		v.Log(domain.LogLevelError, err.Error())
	}
	v.Complete(err)
	return err
}

func (t *Toolchain) stage(
	ctx context.Context,
	v ports.Vertex,
	spec *domain.Spec,
	buildDir, exportTarget string,
) (string, error) {
	transpile := spec.SourceMap(domain.KeyTranspileSourceMap)
	bundle := spec.SourceMap(domain.KeyBundleSourceMap)

	missing, err := t.stager.Stage(ctx, buildDir, transpile, spec.Bool(domain.KeyTranspileNoIndent))
	if err != nil {
		return "", err
	}
	if len(missing) > 0 {
		if !spec.Bool(domain.KeyStubMissingWithEmpty) {
			return "", zerr.With(
				zerr.Wrap(domain.ErrSourceNotFound, "refusing to bundle with missing sources"),
				"modules", strings.Join(missing, ", "),
			)
		}
		t.logger.Warn(fmt.Sprintf("stubbing missing sources for modules %v with '%s'", missing, domain.Stub))
	}
	v.Log(domain.LogLevelInfo, fmt.Sprintf("staged %d module(s) into %s", len(transpile)-len(missing), buildDir))

	return NewProfile(buildDir, exportTarget, transpile, bundle, missing).Write(buildDir)
}

func (t *Toolchain) bundle(ctx context.Context, v ports.Vertex, configPath string) error {
	inv := &domain.Invocation{
		Command:    []string{t.bundler, "-o", configPath},
		WorkingDir: t.WorkingDir(),
	}
	v.Log(domain.LogLevelInfo, strings.Join(inv.Command, " "))

	if err := t.executor.Execute(ctx, inv); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildExecutionFailed, err.Error()), "bundler", t.bundler)
	}
	return nil
}

func (t *Toolchain) verify(v ports.Vertex, spec *domain.Spec, exportTarget string) (string, error) {
	ok, err := t.verifier.VerifyOutputs(filepath.Dir(exportTarget), []string{exportTarget})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", zerr.With(
			zerr.Wrap(domain.ErrExportTargetMissing, "bundler finished without output"),
			"export_target", exportTarget,
		)
	}

	digest, err := t.hasher.ComputeFileHash(exportTarget)
	if err != nil {
		return "", err
	}

	previous, err := t.store.Get(exportTarget)
	if err != nil {
		return "", err
	}
	switch {
	case previous == nil:
		t.logger.Info(fmt.Sprintf("wrote %s (%s)", exportTarget, digest))
	case previous.Digest == digest:
		t.logger.Info(fmt.Sprintf("wrote %s (%s, unchanged since %s)",
			exportTarget, digest, previous.Timestamp.Format(time.RFC3339)))
	default:
		t.logger.Info(fmt.Sprintf("wrote %s (%s, was %s)", exportTarget, digest, previous.Digest))
	}
	v.Log(domain.LogLevelInfo, "artifact digest "+digest)

	info := domain.BuildInfo{
		ExportTarget: exportTarget,
		Packages:     spec.Strings(domain.KeySourcePackageNames),
		Digest:       digest,
		Timestamp:    time.Now(),
	}
	if err := t.store.Put(info); err != nil {
		return "", zerr.Wrap(err, "failed to store build info")
	}
	return digest, nil
}
