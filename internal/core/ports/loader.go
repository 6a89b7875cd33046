package ports

import "io"

// LoaderContext is an opaque handle describing where classfile bytes may be
// found. It is owned by the caller and passed by reference into every query.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type LoaderContext interface {
	// OpenResource opens the resource identified by name+ext, e.g.
	// ("java/util/List", ".class"). It returns domain.ErrResourceNotFound
	// (possibly wrapped) when no such resource exists.
	OpenResource(name, ext string) (io.ReadCloser, error)
}

// StaticInstrumentation marks a LoaderContext as belonging to a static
// instrumentation run. The locator gives such contexts priority over the
// system resolver instead of the other way around.
type StaticInstrumentation interface {
	StaticInstrumentation()
}

// PrivilegedOpener is an optional elevated-access capability. When a resource
// open fails with a permission error, the locator retries once through this
// interface if the context provides it.
type PrivilegedOpener interface {
	OpenResourcePrivileged(name, ext string) (io.ReadCloser, error)
}
