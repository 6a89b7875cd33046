package ports

import (
	"context"

	"go.trai.ch/lineage/internal/core/domain"
)

// Hierarchy is the query surface consumed by the surrounding bytecode rewriter.
//
//go:generate mockgen -source=hierarchy.go -destination=mocks/mock_hierarchy.go -package=mocks
type Hierarchy interface {
	// GetSuperClass returns the immediate superclass of t, or the zero
	// TypeName when t is the root class or its classfile cannot be resolved.
	GetSuperClass(ctx context.Context, t domain.TypeName, loader LoaderContext) domain.TypeName

	// IsAssignableFrom reports whether t1 is assignable from t2, i.e. t1 is
	// t2 itself, a transitive superclass of t2, or an interface t2
	// implements. A zero t1 is caller misuse and yields domain.ErrInvalidQuery.
	IsAssignableFrom(ctx context.Context, t1, t2 domain.TypeName, loader LoaderContext) (bool, error)

	// CommonSuperClass returns the nearest common ancestor of two class
	// types. The result is not guaranteed symmetric in its operands, and the
	// behavior for interface-typed operands is undefined; callers must guard
	// against passing interfaces.
	CommonSuperClass(ctx context.Context, t1, t2 domain.TypeName, loader LoaderContext) (domain.TypeName, error)

	// Reset clears all cached hierarchy state. It must be called between
	// independent resolution sessions that reuse type names against
	// different classpath contents.
	Reset()
}
