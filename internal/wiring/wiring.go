// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lineage/internal/adapters/classfile"
	_ "go.trai.ch/lineage/internal/adapters/classpath"
	_ "go.trai.ch/lineage/internal/adapters/config"
	_ "go.trai.ch/lineage/internal/adapters/loader"
	_ "go.trai.ch/lineage/internal/adapters/locator"
	_ "go.trai.ch/lineage/internal/adapters/logger"
	_ "go.trai.ch/lineage/internal/adapters/telemetry"
	_ "go.trai.ch/lineage/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/lineage/internal/app"
	_ "go.trai.ch/lineage/internal/engine/hierarchy"
	_ "go.trai.ch/lineage/internal/engine/scan"
)
