// Package scan walks classpath entries and resolves every discovered type
// against the hierarchy engine, producing a report of unresolvable chains
// and duplicate classfiles.
package scan

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
)

// Scanner drives a full classpath scan.
type Scanner struct {
	walker    ports.ClasspathWalker
	hierarchy ports.Hierarchy
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Scanner.
func New(walker ports.ClasspathWalker, hierarchy ports.Hierarchy, telemetry ports.Telemetry, logger ports.Logger) *Scanner {
	return &Scanner{
		walker:    walker,
		hierarchy: hierarchy,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Scan walks every classpath root in cfg, resolves each discovered type
// through the hierarchy engine using loader, and returns the aggregated
// report. Roots are walked concurrently, bounded by cfg.Workers.
func (s *Scanner) Scan(ctx context.Context, cfg *domain.Config, loader ports.LoaderContext) (*domain.ScanReport, error) {
	entries, err := s.collect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	report := &domain.ScanReport{
		Classfiles: len(entries),
	}

	byName := make(map[domain.TypeName][]domain.ClassEntry)
	for _, e := range entries {
		byName[e.Name] = append(byName[e.Name], e)
	}
	report.Types = len(byName)

	names := make([]domain.TypeName, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })

	for _, name := range names {
		if s.chainResolves(ctx, name, loader) {
			report.Resolved++
		} else {
			report.Unresolved = append(report.Unresolved, name)
		}
		if dup, ok := duplicateOf(name, byName[name]); ok {
			report.Duplicates = append(report.Duplicates, dup)
		}
	}

	s.logger.Info(fmt.Sprintf("scanned %d classfiles, %d types, %d unresolved",
		report.Classfiles, report.Types, len(report.Unresolved)))

	return report, nil
}

// collect walks all roots concurrently and gathers their class entries.
func (s *Scanner) collect(ctx context.Context, cfg *domain.Config) ([]domain.ClassEntry, error) {
	var (
		mu      sync.Mutex
		entries []domain.ClassEntry
	)

	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}

	for _, root := range cfg.Classpath {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, vertex := s.telemetry.Record(ctx, fmt.Sprintf("scan %s", root))
			found, err := s.walker.Entries(root)
			if err != nil {
				vertex.Complete(err)
				return zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "root", root)
			}
			vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d classfiles", len(found)))
			vertex.Complete(nil)

			mu.Lock()
			entries = append(entries, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// chainResolves walks the superclass chain of t and reports whether every
// ancestor up to the root class could be read. The hierarchy engine degrades
// to the zero TypeName on unreadable ancestors, so a zero link before the
// root means the chain is broken.
func (s *Scanner) chainResolves(ctx context.Context, t domain.TypeName, loader ports.LoaderContext) bool {
	for current := t; current != domain.RootClass; {
		next := s.hierarchy.GetSuperClass(ctx, current, loader)
		if next.IsZero() {
			return false
		}
		current = next
	}
	return true
}

func duplicateOf(name domain.TypeName, occurrences []domain.ClassEntry) (domain.Duplicate, bool) {
	if len(occurrences) < 2 {
		return domain.Duplicate{}, false
	}

	dup := domain.Duplicate{Name: name, Identical: true}
	for _, e := range occurrences {
		dup.Paths = append(dup.Paths, e.Path)
		if e.Digest != occurrences[0].Digest {
			dup.Identical = false
		}
	}
	sort.Strings(dup.Paths)
	return dup, true
}
