package ports

import (
	"context"

	"go.trai.ch/lineage/internal/core/domain"
)

// Locator resolves a type name to raw classfile bytes by trying an ordered
// sequence of resource roots and name-extension candidates.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate returns the classfile bytes for the given type. It returns
	// domain.ErrClassNotFound (possibly wrapped) when no candidate source
	// yields bytes. The first stream found wins; later candidates are not
	// tried.
	Locate(ctx context.Context, name domain.TypeName, loader LoaderContext) ([]byte, error)
}
