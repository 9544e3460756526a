package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuv/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cuv/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(tel), nil
		},
	})
}
