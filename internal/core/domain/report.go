package domain

// ClassEntry describes a single classfile discovered during a classpath scan.
type ClassEntry struct {
	Name   TypeName
	Root   string
	Path   string
	Digest uint64
}

// Duplicate records a type name that was found in more than one classpath
// location. Identical reports whether all occurrences carry the same content
// digest; divergent duplicates are the ones worth flagging to the user.
type Duplicate struct {
	Name      TypeName
	Paths     []string
	Identical bool
}

// ScanReport summarizes a classpath scan.
type ScanReport struct {
	// Types is the number of distinct type names seen.
	Types int
	// Classfiles is the number of classfiles visited, including duplicates.
	Classfiles int
	// Resolved is the number of types whose full superclass chain resolved.
	Resolved int
	// Unresolved lists types with at least one unreachable ancestor.
	Unresolved []TypeName
	// Duplicates lists type names found in more than one location.
	Duplicates []Duplicate
}
