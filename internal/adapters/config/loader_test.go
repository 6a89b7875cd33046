package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lineage/internal/adapters/config"
	"go.trai.ch/lineage/internal/adapters/logger"
	"go.trai.ch/lineage/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))
}

func TestLoader_Defaults(t *testing.T) {
	dir := t.TempDir()

	l := config.NewLoader(logger.New())
	cfg, err := l.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, cfg.Classpath)
	assert.Empty(t, cfg.Extensions)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.False(t, cfg.JSONLogs)
}

func TestLoader_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
classpath:
  - classes
  - lib/app.jar
extensions:
  - clazz
  - .instr
workers: 2
log: json
`)

	l := config.NewLoader(logger.New())
	cfg, err := l.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "classes"),
		filepath.Join(dir, "lib/app.jar"),
	}, cfg.Classpath)
	assert.Equal(t, []string{"clazz", "instr"}, cfg.Extensions)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.JSONLogs)
}

func TestLoader_WalkUpDiscovery(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "workers: 3\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	l := config.NewLoader(logger.New())
	cfg, err := l.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoader_EnvExtensionsTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "extensions: [clazz]\n")
	t.Setenv(config.ExtensionsEnv, "instr:probe")

	l := config.NewLoader(logger.New())
	cfg, err := l.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"instr", "probe"}, cfg.Extensions)
}

func TestLoader_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "classpath: [unterminated\n")

	l := config.NewLoader(logger.New())
	_, err := l.Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}
