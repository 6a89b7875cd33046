package loader

import (
	"os"
	"path/filepath"
)

// SystemContext is the process-wide resource resolver, the analog of the
// platform's system class loader. It searches the entries of the CLASSPATH
// environment variable, falling back to the working directory when unset.
type SystemContext struct {
	*PathContext
}

// NewSystemContext builds the system resolver from the CLASSPATH environment
// variable.
func NewSystemContext() *SystemContext {
	entries := filepath.SplitList(os.Getenv("CLASSPATH"))
	if len(entries) == 0 {
		entries = []string{"."}
	}
	return &SystemContext{PathContext: NewPathContext(entries...)}
}
