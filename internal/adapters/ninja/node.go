package ninja

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuv/internal/core/ports"
)

// NodeID is the unique identifier for the build file writer Graft node.
const NodeID graft.ID = "adapter.ninja"

func init() {
	graft.Register(graft.Node[ports.BuildFileWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildFileWriter, error) {
			return NewWriter(), nil
		},
	})
}
