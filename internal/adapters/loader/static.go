package loader

import (
	"io"

	"go.trai.ch/lineage/internal/core/ports"
)

var (
	_ ports.LoaderContext         = (*StaticContext)(nil)
	_ ports.StaticInstrumentation = (*StaticContext)(nil)
)

// StaticContext wraps a loader context for a static instrumentation run.
// The locator consults such contexts before the system resolver.
type StaticContext struct {
	inner ports.LoaderContext
}

// NewStaticContext wraps the given context.
func NewStaticContext(inner ports.LoaderContext) *StaticContext {
	return &StaticContext{inner: inner}
}

// OpenResource delegates to the wrapped context.
func (c *StaticContext) OpenResource(name, ext string) (io.ReadCloser, error) {
	return c.inner.OpenResource(name, ext)
}

// OpenResourcePrivileged delegates when the wrapped context provides the
// elevated-access capability.
func (c *StaticContext) OpenResourcePrivileged(name, ext string) (io.ReadCloser, error) {
	if p, ok := c.inner.(ports.PrivilegedOpener); ok {
		return p.OpenResourcePrivileged(name, ext)
	}
	return c.inner.OpenResource(name, ext)
}

// StaticInstrumentation marks this context as the static instrumentation variant.
func (c *StaticContext) StaticInstrumentation() {}
