// Package app implements the application layer for lineage.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"go.trai.ch/lineage/internal/adapters/loader" //nolint:depguard // Wired in app layer
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/lineage/internal/engine/scan"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	hierarchy    ports.Hierarchy
	scanner      *scan.Scanner
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(configLoader ports.ConfigLoader, hierarchy ports.Hierarchy, scanner *scan.Scanner, tracer ports.Tracer, logger ports.Logger) *App {
	return &App{
		configLoader: configLoader,
		hierarchy:    hierarchy,
		scanner:      scanner,
		tracer:       tracer,
		logger:       logger,
	}
}

// ResolveChain returns the superclass chain of the named type, starting with
// the type itself and ending at the root class. A broken link terminates the
// chain early; the caller can tell by inspecting the last element.
func (a *App) ResolveChain(ctx context.Context, typeName string) ([]domain.TypeName, error) {
	if typeName == "" {
		return nil, domain.ErrNoTypesSpecified
	}

	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("type", typeName)

	classpath, err := a.openClasspath()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer classpath.Close()

	chain := []domain.TypeName{domain.NewTypeName(typeName)}
	for current := chain[0]; current != domain.RootClass; {
		next := a.hierarchy.GetSuperClass(ctx, current, classpath)
		if next.IsZero() {
			break
		}
		chain = append(chain, next)
		current = next
	}
	return chain, nil
}

// CommonSuperClass returns the nearest common ancestor of the two named class
// types.
func (a *App) CommonSuperClass(ctx context.Context, t1, t2 string) (domain.TypeName, error) {
	if t1 == "" || t2 == "" {
		return domain.TypeName{}, domain.ErrNoTypesSpecified
	}

	ctx, span := a.tracer.Start(ctx, "common-super")
	defer span.End()
	span.SetAttribute("t1", t1)
	span.SetAttribute("t2", t2)

	classpath, err := a.openClasspath()
	if err != nil {
		span.RecordError(err)
		return domain.TypeName{}, err
	}
	defer classpath.Close()

	common, err := a.hierarchy.CommonSuperClass(ctx, domain.NewTypeName(t1), domain.NewTypeName(t2), classpath)
	if err != nil {
		span.RecordError(err)
		return domain.TypeName{}, err
	}
	return common, nil
}

// Assignable reports whether the type named t1 is assignable from the type
// named t2.
func (a *App) Assignable(ctx context.Context, t1, t2 string) (bool, error) {
	if t1 == "" || t2 == "" {
		return false, domain.ErrNoTypesSpecified
	}

	ctx, span := a.tracer.Start(ctx, "assignable")
	defer span.End()
	span.SetAttribute("t1", t1)
	span.SetAttribute("t2", t2)

	classpath, err := a.openClasspath()
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	defer classpath.Close()

	ok, err := a.hierarchy.IsAssignableFrom(ctx, domain.NewTypeName(t1), domain.NewTypeName(t2), classpath)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	return ok, nil
}

// Scan walks the configured classpath and reports on every type found.
func (a *App) Scan(ctx context.Context) (*domain.ScanReport, error) {
	ctx, span := a.tracer.Start(ctx, "scan")
	defer span.End()

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	classpath := loader.NewPathContext(cfg.Classpath...)
	defer classpath.Close()

	report, err := a.scanner.Scan(ctx, cfg, classpath)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "classpath scan failed")
	}
	return report, nil
}

// Reset clears all cached hierarchy state between resolution sessions.
func (a *App) Reset() {
	a.hierarchy.Reset()
	a.logger.Info("hierarchy caches cleared")
}

func (a *App) openClasspath() (*loader.PathContext, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return loader.NewPathContext(cfg.Classpath...), nil
}
