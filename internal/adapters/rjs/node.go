package rjs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rjs/internal/adapters/cas"
	"go.trai.ch/rjs/internal/adapters/config"
	"go.trai.ch/rjs/internal/adapters/fs"
	"go.trai.ch/rjs/internal/adapters/logger"
	"go.trai.ch/rjs/internal/adapters/shell"
	"go.trai.ch/rjs/internal/adapters/telemetry/progrock"
	"go.trai.ch/rjs/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			shell.NodeID,
			fs.StagerNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runToolchainNode,
	})
}

func runToolchainNode(ctx context.Context) (ports.Toolchain, error) {
	settings, err := graft.Dep[config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	stager, err := graft.Dep[ports.Stager](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings.Bundler, executor, stager, hasher, verifier, store, telemetry, log), nil
}
