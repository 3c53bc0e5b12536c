package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rjs/internal/adapters/config"
	"go.trai.ch/rjs/internal/core/ports"
)

// NodeID is the unique identifier for the build info store Graft node.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.StatePath)
		},
	})
}
