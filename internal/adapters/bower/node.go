package bower

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bindle/internal/core/ports"
)

// NodeID is the unique identifier for the package enumerator Graft node.
const NodeID graft.ID = "adapter.bower"

func init() {
	graft.Register(graft.Node[ports.PackageEnumerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageEnumerator, error) {
			return NewEnumerator(), nil
		},
	})
}
