package domain

import "runtime"

// Config holds the resolution session configuration.
type Config struct {
	// Classpath is the ordered list of directories and jar archives searched
	// for classfiles.
	Classpath []string
	// Extensions is the ordered list of custom classfile extensions (without
	// the leading dot) tried after ".class" and ".clazz". Default empty.
	Extensions []string
	// Workers bounds scan parallelism.
	Workers int
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}

// DefaultConfig returns the configuration used when no lineage.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Classpath: []string{"."},
		Workers:   runtime.NumCPU(),
	}
}
