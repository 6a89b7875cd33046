// Package loader implements loader contexts over directories and jar archives.
package loader

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LoaderContext = (*PathContext)(nil)

// PathContext resolves resources against an ordered list of classpath roots.
// A root is either a directory or a jar/zip archive. Archives are opened
// lazily and kept open for the lifetime of the context.
type PathContext struct {
	roots []string

	mu       sync.Mutex
	archives map[string]*zip.ReadCloser
}

// NewPathContext creates a context searching the given roots in order.
func NewPathContext(roots ...string) *PathContext {
	return &PathContext{
		roots:    roots,
		archives: make(map[string]*zip.ReadCloser),
	}
}

// Roots returns the configured classpath roots.
func (c *PathContext) Roots() []string {
	return c.roots
}

// OpenResource opens the resource identified by name+ext, trying each root in
// order. Resources that do not exist anywhere yield domain.ErrResourceNotFound.
// A permission failure is reported immediately so the caller may retry with
// elevated access.
func (c *PathContext) OpenResource(name, ext string) (io.ReadCloser, error) {
	res := name + ext
	for _, root := range c.roots {
		var (
			rc  io.ReadCloser
			err error
		)
		if isArchive(root) {
			rc, err = c.openFromArchive(root, res)
		} else {
			rc, err = openFromDir(root, res)
		}
		if err == nil {
			return rc, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, err
		}
		// Keep trying the remaining roots.
	}
	return nil, zerr.With(domain.ErrResourceNotFound, "resource", res)
}

// Close releases any archives opened so far.
func (c *PathContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for path, archive := range c.archives {
		if err := archive.Close(); err != nil {
			errs = append(errs, zerr.With(err, "archive", path))
		}
		delete(c.archives, path)
	}
	return errors.Join(errs...)
}

func (c *PathContext) openFromArchive(path, res string) (io.ReadCloser, error) {
	archive, err := c.archive(path)
	if err != nil {
		return nil, err
	}
	f, err := archive.Open(res)
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrResourceNotFound, "resource", res), "archive", path)
	}
	return f, nil
}

func (c *PathContext) archive(path string) (*zip.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if archive, ok := c.archives[path]; ok {
		return archive, nil
	}
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrClasspathEntryInvalid.Error()), "entry", path)
	}
	c.archives[path] = archive
	return archive, nil
}

func openFromDir(root, res string) (io.ReadCloser, error) {
	path := filepath.Join(root, filepath.FromSlash(res))
	f, err := os.Open(path) //nolint:gosec // Classpath roots are caller-controlled
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, err
		}
		return nil, zerr.With(zerr.With(domain.ErrResourceNotFound, "resource", res), "root", root)
	}
	return f, nil
}

func isArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jar", ".zip":
		return true
	default:
		return false
	}
}
