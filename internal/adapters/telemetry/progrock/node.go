package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuv/internal/tui"
)

// NodeID is the unique identifier for the progrock recorder node.
const NodeID graft.ID = "adapter.telemetry.progrock"

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tui.FeedNodeID},
		Run: func(ctx context.Context) (*Recorder, error) {
			feed, err := graft.Dep[*tui.Feed](ctx)
			if err != nil {
				return nil, err
			}
			return NewRecorder(feed), nil
		},
	})
}
