package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/core/ports"
)

// SystemNodeID is the unique identifier for the system resolver Graft node.
const SystemNodeID graft.ID = "adapter.system_loader"

func init() {
	graft.Register(graft.Node[ports.LoaderContext]{
		ID:        SystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LoaderContext, error) {
			return NewSystemContext(), nil
		},
	})
}
