package hierarchy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/adapters/classfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lineage/internal/adapters/locator"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lineage/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lineage/internal/core/ports"
)

// NodeID is the unique identifier for the hierarchy resolver Graft node.
const NodeID graft.ID = "engine.hierarchy"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			locator.NodeID,
			classfile.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			dec, err := graft.Dep[ports.ClassfileDecoder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(loc, dec, log), nil
		},
	})
}
