package classfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/core/ports"
)

// NodeID is the unique identifier for the classfile decoder Graft node.
const NodeID graft.ID = "adapter.classfile_decoder"

func init() {
	graft.Register(graft.Node[ports.ClassfileDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClassfileDecoder, error) {
			return NewDecoder(), nil
		},
	})
}
