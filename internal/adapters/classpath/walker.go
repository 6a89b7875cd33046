// Package classpath discovers classfiles across classpath roots.
package classpath

import (
	"archive/zip"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClasspathWalker = (*Walker)(nil)

// Walker enumerates the classfiles under a classpath root, which is either a
// directory tree or a jar/zip archive. Every entry carries an XXHash content
// digest so duplicate classfiles across roots can be told apart from exact
// copies.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Entries returns one ClassEntry per classfile found under root.
func (w *Walker) Entries(root string) ([]domain.ClassEntry, error) {
	if isArchive(root) {
		return w.archiveEntries(root)
	}
	return w.dirEntries(root)
}

func (w *Walker) dirEntries(root string) ([]domain.ClassEntry, error) {
	var entries []domain.ClassEntry
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".class") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		digest, err := digestFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, domain.ClassEntry{
			Name:   nameOf(filepath.ToSlash(rel)),
			Root:   root,
			Path:   path,
			Digest: digest,
		})
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrClasspathEntryInvalid.Error()), "entry", root)
	}
	return entries, nil
}

func (w *Walker) archiveEntries(root string) ([]domain.ClassEntry, error) {
	archive, err := zip.OpenReader(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrClasspathEntryInvalid.Error()), "entry", root)
	}
	defer archive.Close() //nolint:errcheck // Read-only archive

	var entries []domain.ClassEntry
	for _, f := range archive.File {
		if !strings.HasSuffix(f.Name, ".class") {
			continue
		}
		digest, err := digestArchiveFile(f)
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrClasspathEntryInvalid.Error()), "entry", root), "resource", f.Name)
		}
		entries = append(entries, domain.ClassEntry{
			Name:   nameOf(f.Name),
			Root:   root,
			Path:   root + "!" + f.Name,
			Digest: digest,
		})
	}
	return entries, nil
}

func digestFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking a caller-controlled root
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return digestReader(f)
}

func digestArchiveFile(f *zip.File) (uint64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	return digestReader(rc)
}

func digestReader(r io.Reader) (uint64, error) {
	hasher := xxhash.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

func nameOf(res string) domain.TypeName {
	return domain.NewTypeName(strings.TrimSuffix(res, ".class"))
}

func isArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jar", ".zip":
		return true
	default:
		return false
	}
}
