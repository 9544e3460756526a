package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuv/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/compdb"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/ninja"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/scan"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/cuv/internal/engine/resolver"
	"go.trai.ch/cuv/internal/tui"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			scan.ScannerNodeID,
			scan.StoreNodeID,
			cas.NodeID,
			compdb.NodeID,
			ninja.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			resolver.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			tui.FeedNodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per adapter
func runAppNode(ctx context.Context) (*App, error) {
	var (
		p   Ports
		err error
	)
	if p.Loader, err = graft.Dep[ports.ProjectLoader](ctx); err != nil {
		return nil, err
	}
	if p.Sources, err = graft.Dep[ports.SourceResolver](ctx); err != nil {
		return nil, err
	}
	if p.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if p.Scanner, err = graft.Dep[ports.DependencyScanner](ctx); err != nil {
		return nil, err
	}
	if p.Scans, err = graft.Dep[ports.ScanStore](ctx); err != nil {
		return nil, err
	}
	if p.Plans, err = graft.Dep[ports.PlanStore](ctx); err != nil {
		return nil, err
	}
	if p.CompileDB, err = graft.Dep[ports.CompileDatabase](ctx); err != nil {
		return nil, err
	}
	if p.BuildFile, err = graft.Dep[ports.BuildFileWriter](ctx); err != nil {
		return nil, err
	}
	if p.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if p.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	if p.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	r, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	return New(p, r), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	feed, err := graft.Dep[*tui.Feed](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
		Progress:  feed,
	}, nil
}
