package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/adapters/classpath" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lineage/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lineage/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/lineage/internal/engine/hierarchy"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "engine.scan"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			classpath.NodeID,
			hierarchy.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scanner, error) {
			walker, err := graft.Dep[ports.ClasspathWalker](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*hierarchy.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(walker, resolver, tel, log), nil
		},
	})
}
