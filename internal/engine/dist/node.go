package dist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rjs/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rjs/internal/adapters/registry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rjs/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.dist"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(reg, reg, reg, log), nil
		},
	})
}
