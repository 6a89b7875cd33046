package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/lineage/internal/adapters/loader" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.SystemNodeID,
			config.SessionNodeID,
		},
		Run: func(ctx context.Context) (ports.Locator, error) {
			system, err := graft.Dep[ports.LoaderContext](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(system, cfg.Extensions), nil
		},
	})
}
