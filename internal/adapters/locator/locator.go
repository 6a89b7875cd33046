// Package locator resolves type names to classfile bytes.
package locator

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ClassExtension is the primary classfile extension.
	ClassExtension = ".class"
	// FallbackExtension is always tried against the system resolver after
	// ClassExtension, so "Boo.class" wins over "Boo.clazz".
	FallbackExtension = ".clazz"
)

var _ ports.Locator = (*Locator)(nil)

// Locator finds classfile bytes by trying an ordered sequence of resource
// resolvers and name-extension candidates.
type Locator struct {
	system     ports.LoaderContext
	extensions []string
}

// New creates a Locator backed by the given system-wide resolver. extensions
// is the ordered list of custom classfile extensions (without the leading
// dot) tried after the primary extension at every resolver.
func New(system ports.LoaderContext, extensions []string) *Locator {
	return &Locator{
		system:     system,
		extensions: extensions,
	}
}

// Locate returns the classfile bytes for the given type name.
//
// For a static instrumentation context the context itself is consulted first,
// then the system resolver. For any other context the system resolver is
// consulted first with ".class", then ".clazz", and finally the original
// context is retried as a last resort when it differs from the system
// resolver. The first stream found wins.
func (l *Locator) Locate(ctx context.Context, name domain.TypeName, loader ports.LoaderContext) ([]byte, error) {
	if name.IsZero() {
		return nil, zerr.With(domain.ErrClassNotFound, "type", "")
	}
	res := name.String()

	if loader != nil {
		if _, static := loader.(ports.StaticInstrumentation); static {
			if data, ok := l.open(ctx, loader, res, ClassExtension); ok {
				return data, nil
			}
			if data, ok := l.open(ctx, l.system, res, ClassExtension); ok {
				return data, nil
			}
			return nil, zerr.With(domain.ErrClassNotFound, "type", res)
		}
	}

	if data, ok := l.open(ctx, l.system, res, ClassExtension); ok {
		return data, nil
	}
	if data, ok := l.open(ctx, l.system, res, FallbackExtension); ok {
		return data, nil
	}
	if loader != nil && loader != l.system {
		if data, ok := l.open(ctx, loader, res, ClassExtension); ok {
			return data, nil
		}
	}
	return nil, zerr.With(domain.ErrClassNotFound, "type", res)
}

// open tries a single resolver with the primary extension followed by each
// configured custom extension. Failures other than a found stream are
// swallowed; the locator is strictly best-effort per candidate.
func (l *Locator) open(ctx context.Context, resolver ports.LoaderContext, name, ext string) ([]byte, bool) {
	if resolver == nil || ctx.Err() != nil {
		return nil, false
	}

	if data, ok := l.tryOpen(resolver, name, ext); ok {
		return data, true
	}
	for _, custom := range l.extensions {
		if data, ok := l.tryOpen(resolver, name, "."+custom); ok {
			return data, true
		}
	}
	return nil, false
}

func (l *Locator) tryOpen(resolver ports.LoaderContext, name, ext string) ([]byte, bool) {
	rc, err := resolver.OpenResource(name, ext)
	if err != nil && errors.Is(err, fs.ErrPermission) {
		// One elevated-access retry when the resolver provides the capability.
		if p, ok := resolver.(ports.PrivilegedOpener); ok {
			rc, err = p.OpenResourcePrivileged(name, ext)
		}
	}
	if err != nil {
		return nil, false
	}

	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		return nil, false
	}
	return data, true
}
