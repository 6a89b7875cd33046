package ports

import "go.trai.ch/lineage/internal/core/domain"

// ClasspathWalker enumerates the classfiles under a classpath root.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type ClasspathWalker interface {
	// Entries returns one entry per classfile found under root, with a
	// content digest per entry.
	Entries(root string) ([]domain.ClassEntry, error)
}
