// Package ports defines the interfaces between the resolution engine and its adapters.
package ports

import "go.trai.ch/lineage/internal/core/domain"

// ClassfileDecoder extracts hierarchy information from raw classfile bytes.
// Any decoder satisfying these two operations is interchangeable; the engine
// never inspects classfile bytes itself.
//
//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks
type ClassfileDecoder interface {
	// ReadSuperclassName returns the immediate superclass name encoded in data.
	// The zero TypeName is returned for the root class, which has none.
	ReadSuperclassName(data []byte) (domain.TypeName, error)

	// ReadDirectInterfaceNames returns the directly implemented interface
	// names in classfile declaration order.
	ReadDirectInterfaceNames(data []byte) ([]domain.TypeName, error)
}
