package classpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/core/ports"
)

// NodeID is the unique identifier for the classpath walker Graft node.
const NodeID graft.ID = "adapter.classpath_walker"

func init() {
	graft.Register(graft.Node[ports.ClasspathWalker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClasspathWalker, error) {
			return NewWalker(), nil
		},
	})
}
