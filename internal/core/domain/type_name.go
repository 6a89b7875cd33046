package domain

import "unique"

// RootClass is the top of the single-inheritance class hierarchy.
// It is the only class without a superclass.
var RootClass = NewTypeName("java/lang/Object")

// TypeName is a value object holding the canonical binary name of a class or
// interface in internal slash-separated form (e.g. "java/util/List").
// It wraps a unique.Handle[string] so that the many repeated names seen during
// a resolution session share storage and compare in constant time.
// The zero value represents "no type" (an unresolved or absent name).
type TypeName struct {
	h unique.Handle[string]
}

// NewTypeName creates a new TypeName from a binary class name.
// It uses the unique package to intern the string.
func NewTypeName(name string) TypeName {
	return TypeName{
		h: unique.Make(name),
	}
}

// NewTypeNames creates a new TypeName slice from a string slice.
func NewTypeNames(names []string) []TypeName {
	res := make([]TypeName, len(names))
	for i, n := range names {
		res[i] = NewTypeName(n)
	}
	return res
}

// IsZero reports whether t is the zero TypeName, i.e. no type at all.
func (t TypeName) IsZero() bool {
	return t == TypeName{}
}

// String returns the underlying binary name, or "" for the zero value.
func (t TypeName) String() string {
	if t.IsZero() {
		return ""
	}
	return t.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeName) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Empty text yields the zero TypeName.
func (t *TypeName) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = TypeName{}
		return nil
	}
	t.h = unique.Make(string(text))
	return nil
}
