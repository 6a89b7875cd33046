package domain

import "go.trai.ch/zerr"

var (
	// ErrClassNotFound is returned when no candidate source yields classfile bytes for a type.
	ErrClassNotFound = zerr.New("class not found for hierarchy resolution")

	// ErrMalformedClassfile is returned when classfile bytes cannot be decoded.
	ErrMalformedClassfile = zerr.New("malformed classfile")

	// ErrResourceNotFound is returned by a loader context when a named resource does not exist.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrInvalidQuery is returned when IsAssignableFrom is called with a zero first operand.
	ErrInvalidQuery = zerr.New("can't read superclass bytecode, please add it to the classpath")

	// ErrHierarchyIncomplete is returned when a common-ancestor walk reaches an
	// ancestor whose classfile could not be resolved.
	ErrHierarchyIncomplete = zerr.New("superclass chain could not be resolved")

	// ErrConfigNotFound is returned when no lineage.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find lineage.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrClasspathEntryInvalid is returned when a configured classpath entry is
	// neither a directory nor a readable archive.
	ErrClasspathEntryInvalid = zerr.New("invalid classpath entry")

	// ErrNoTypesSpecified is returned when a CLI query is missing its type operands.
	ErrNoTypesSpecified = zerr.New("no type names specified")

	// ErrScanFailed is returned when a classpath scan aborts.
	ErrScanFailed = zerr.New("classpath scan failed")
)
