// Package config provides the configuration loader for lineage.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lineage/internal/core/domain"
	"go.trai.ch/lineage/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for by walking up from the
// working directory.
const FileName = "lineage.yaml"

// ExtensionsEnv names the environment variable carrying custom classfile
// extensions as a colon-separated list, e.g. "clazz:instr". When set it
// takes precedence over the config file.
const ExtensionsEnv = "LINEAGE_CLEXT"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads lineage.yaml starting at cwd and walking up towards the
// filesystem root. A missing file yields the defaults, not an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, found := findConfiguration(cwd)
	if found {
		var file Lineagefile
		if err := readAndUnmarshalYAML(path, &file); err != nil {
			return nil, err
		}
		applyFile(cfg, &file, filepath.Dir(path))
	}

	if env, ok := os.LookupEnv(ExtensionsEnv); ok {
		cfg.Extensions = splitExtensions(env)
	}

	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func applyFile(cfg *domain.Config, file *Lineagefile, dir string) {
	if len(file.Classpath) > 0 {
		cfg.Classpath = make([]string, len(file.Classpath))
		for i, entry := range file.Classpath {
			if filepath.IsAbs(entry) {
				cfg.Classpath[i] = entry
			} else {
				cfg.Classpath[i] = filepath.Join(dir, entry)
			}
		}
	}
	if len(file.Extensions) > 0 {
		cfg.Extensions = normalizeExtensions(file.Extensions)
	}
	if file.Workers > 0 {
		cfg.Workers = file.Workers
	}
	cfg.JSONLogs = file.Log == "json"
}

func splitExtensions(value string) []string {
	return normalizeExtensions(strings.Split(value, ":"))
}

func normalizeExtensions(raw []string) []string {
	exts := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from walk-up discovery
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}
