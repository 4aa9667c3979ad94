package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bindle/internal/adapters/bower"  //nolint:depguard // Wired in app layer
	"go.trai.ch/bindle/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/bindle/internal/adapters/deps"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bindle/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bindle/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/bindle/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ReaderNodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			deps.NodeID,
			bower.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	paths, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.SourceReader](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[ports.DependencyCollector](ctx)
	if err != nil {
		return nil, err
	}

	packages, err := graft.Dep[ports.PackageEnumerator](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, paths, reader, collector, packages, hasher, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
