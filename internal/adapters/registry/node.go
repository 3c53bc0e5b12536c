package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rjs/internal/adapters/config"
	"go.trai.ch/rjs/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, settings.ManifestPath)
		},
	})
}
