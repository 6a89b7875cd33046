package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/lineage/internal/adapters/logger"
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SessionNodeID is the unique identifier for the loaded session config node.
	SessionNodeID graft.ID = "adapter.config_session"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        SessionNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if l, ok := log.(*logger.Logger); ok {
				l.SetJSON(cfg.JSONLogs)
			}
			return cfg, nil
		},
	})
}
