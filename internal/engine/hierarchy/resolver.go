// Package hierarchy implements the class-hierarchy resolution engine.
//
// The engine answers subtype and common-ancestor queries over type names
// referenced inside rewritten bytecode, without ever loading a class into a
// runtime. All knowledge comes from classfile bytes supplied by the locator
// and decoded by the classfile decoder.
package hierarchy

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hierarchy = (*Resolver)(nil)

// emptyInterfaces is the shared marker published for every type that
// implements nothing. It must never be appended to.
var emptyInterfaces = []domain.TypeName{}

// Resolver holds the session-scoped memo tables and answers hierarchy
// queries against them. The tables grow monotonically; Reset clears them
// between independent resolution sessions.
//
// A single mutex guards both tables. I/O and decoding happen outside the
// lock, so concurrent misses on the same type at worst duplicate work; the
// first published entry wins and results are identical either way.
type Resolver struct {
	locator ports.Locator
	decoder ports.ClassfileDecoder
	logger  ports.Logger

	mu           sync.Mutex
	superclasses map[domain.TypeName]domain.TypeName
	interfaces   map[domain.TypeName][]domain.TypeName
}

// NewResolver creates a Resolver with empty memo tables.
func NewResolver(locator ports.Locator, decoder ports.ClassfileDecoder, logger ports.Logger) *Resolver {
	return &Resolver{
		locator:      locator,
		decoder:      decoder,
		logger:       logger,
		superclasses: make(map[domain.TypeName]domain.TypeName),
		interfaces:   make(map[domain.TypeName][]domain.TypeName),
	}
}

// GetSuperClass returns the immediate superclass of t, resolving and caching
// it on first use. Interface detection for t runs as a side effect of the
// first resolution.
//
// An unreachable or malformed classfile degrades to the zero TypeName after
// a diagnostic, so one unreadable ancestor does not abort a whole
// resolution. Failures are not cached; a repeated query re-attempts the
// lookup and re-emits the diagnostic.
func (r *Resolver) GetSuperClass(ctx context.Context, t domain.TypeName, loader ports.LoaderContext) domain.TypeName {
	if t.IsZero() {
		return domain.TypeName{}
	}
	if super, ok := r.cachedSuper(t); ok {
		return super
	}

	data, err := r.locator.Locate(ctx, t, loader)
	if err != nil {
		r.diagnose(t, err)
		return domain.TypeName{}
	}
	super, err := r.decoder.ReadSuperclassName(data)
	if err != nil {
		r.diagnose(t, err)
		return domain.TypeName{}
	}
	r.storeSuper(t, super)

	if err := r.detect(ctx, t, data, loader); err != nil {
		// The superclass edge stays cached; only the interface sequence is
		// missing and will be re-attempted on the next query.
		r.diagnose(t, err)
		return domain.TypeName{}
	}
	return super
}

// DetectInterfaces ensures t's transitive interface sequence is cached.
// It is an idempotent no-op when the sequence is already present.
func (r *Resolver) DetectInterfaces(ctx context.Context, t domain.TypeName, loader ports.LoaderContext) error {
	return r.detect(ctx, t, nil, loader)
}

// detect builds and publishes t's transitive interface sequence. data may
// carry t's already-located classfile bytes; when nil they are located
// first, forcing the superclass edge write as a side effect.
//
// The sequence lists, for each direct interface in declaration order, the
// interface itself followed by its own transitive sequence. Duplicates
// arising from diamond interface inheritance are preserved.
func (r *Resolver) detect(ctx context.Context, t domain.TypeName, data []byte, loader ports.LoaderContext) error {
	if _, ok := r.cachedInterfaces(t); ok {
		return nil
	}

	if data == nil {
		located, err := r.locator.Locate(ctx, t, loader)
		if err != nil {
			return err
		}
		super, err := r.decoder.ReadSuperclassName(located)
		if err != nil {
			return err
		}
		r.storeSuper(t, super)
		data = located
	}

	direct, err := r.decoder.ReadDirectInterfaceNames(data)
	if err != nil {
		return err
	}
	if len(direct) == 0 {
		r.storeInterfaces(t, emptyInterfaces)
		return nil
	}

	seq := make([]domain.TypeName, 0, len(direct))
	for _, ifc := range direct {
		seq = append(seq, ifc)
		if err := r.detect(ctx, ifc, nil, loader); err != nil {
			return err
		}
		inherited, _ := r.cachedInterfaces(ifc)
		seq = append(seq, inherited...)
	}
	r.storeInterfaces(t, seq)
	return nil
}

// IsAssignableFrom reports whether t1 is assignable from t2: t1 equals t2,
// is a transitive superclass of t2, or is among the interfaces t2
// implements directly or transitively.
//
// A zero t1 is caller misuse and fails fast with domain.ErrInvalidQuery.
func (r *Resolver) IsAssignableFrom(ctx context.Context, t1, t2 domain.TypeName, loader ports.LoaderContext) (bool, error) {
	if t1.IsZero() {
		return false, zerr.With(domain.ErrInvalidQuery, "second_operand", t2.String())
	}

	for {
		if t1 == t2 {
			return true, nil
		}
		if t2.IsZero() || t2 == domain.RootClass {
			return false, nil
		}

		// Populates t2's interface sequence as a side effect.
		super := r.GetSuperClass(ctx, t2, loader)

		if seq, ok := r.cachedInterfaces(t2); ok {
			for _, ifc := range seq {
				if t1 == ifc {
					return true, nil
				}
			}
		}

		t2 = super
	}
}

// CommonSuperClass returns the nearest common ancestor of two class types.
//
// When t2 already dominates t1 the walk short-circuits to t2; otherwise the
// result comes from walking t1's superclass chain, which makes the operation
// intentionally asymmetric in its operands. The result is only defined for
// class-type operands; interfaces must be guarded by the caller.
func (r *Resolver) CommonSuperClass(ctx context.Context, t1, t2 domain.TypeName, loader ports.LoaderContext) (domain.TypeName, error) {
	dominates, err := r.IsAssignableFrom(ctx, t2, t1, loader)
	if err != nil {
		return domain.TypeName{}, err
	}
	if dominates {
		return t2, nil
	}

	candidate := t1
	for {
		ok, err := r.IsAssignableFrom(ctx, candidate, t2, loader)
		if err != nil {
			return domain.TypeName{}, err
		}
		if ok {
			return candidate, nil
		}

		next := r.GetSuperClass(ctx, candidate, loader)
		if next.IsZero() {
			return domain.TypeName{}, zerr.With(zerr.With(domain.ErrHierarchyIncomplete,
				"type", candidate.String()), "operand", t1.String())
		}
		candidate = next
	}
}

// TransitiveInterfaces returns t's transitive interface sequence, resolving
// it first if needed. The returned slice is shared and must not be mutated.
func (r *Resolver) TransitiveInterfaces(ctx context.Context, t domain.TypeName, loader ports.LoaderContext) ([]domain.TypeName, error) {
	if err := r.detect(ctx, t, nil, loader); err != nil {
		return nil, err
	}
	seq, _ := r.cachedInterfaces(t)
	return seq, nil
}

// Reset clears both memo tables. It must be called between independent
// resolution sessions that reuse type names against different classpath
// contents.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.superclasses = make(map[domain.TypeName]domain.TypeName)
	r.interfaces = make(map[domain.TypeName][]domain.TypeName)
}

func (r *Resolver) cachedSuper(t domain.TypeName) (domain.TypeName, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	super, ok := r.superclasses[t]
	return super, ok
}

func (r *Resolver) cachedInterfaces(t domain.TypeName) ([]domain.TypeName, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seq, ok := r.interfaces[t]
	return seq, ok
}

// storeSuper publishes the superclass edge for t. Insert-once: a concurrent
// duplicate resolution keeps the first published value.
func (r *Resolver) storeSuper(t, super domain.TypeName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.superclasses[t]; !ok {
		r.superclasses[t] = super
	}
}

// storeInterfaces publishes a fully built interface sequence. Insert-once,
// so readers never observe a partially built slice.
func (r *Resolver) storeInterfaces(t domain.TypeName, seq []domain.TypeName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interfaces[t]; !ok {
		r.interfaces[t] = seq
	}
}

func (r *Resolver) diagnose(t domain.TypeName, err error) {
	r.logger.Warn(fmt.Sprintf("failed to read class %s: %v", t, err))
}
