package deps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bindle/internal/core/ports"
)

// NodeID is the unique identifier for the dependency collector Graft node.
const NodeID graft.ID = "adapter.deps"

func init() {
	graft.Register(graft.Node[ports.DependencyCollector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyCollector, error) {
			return NewWalker(), nil
		},
	})
}
