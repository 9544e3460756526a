package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuv/internal/adapters/shell"
	"go.trai.ch/cuv/internal/adapters/telemetry"
	"go.trai.ch/cuv/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the scan store Graft node.
	StoreNodeID graft.ID = "adapter.scan.store"
	// ScannerNodeID is the unique identifier for the dependency scanner Graft node.
	ScannerNodeID graft.ID = "adapter.scan.scanner"
)

func init() {
	graft.Register(graft.Node[ports.ScanStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScanStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.DependencyScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.DependencyScanner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewClangScanner(executor, tel), nil
		},
	})
}
