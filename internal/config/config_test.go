package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	t.Setenv("EUCHRE_CONFIG_FILE", filepath.Join(t.TempDir(), "no-such-file.yaml"))

	assert.NoError(t, Load())
	c := Instance()
	assert.Equal(t, "./sql", c.MigrationsPath)
	assert.Equal(t, 10, c.Game.WinThreshold)
	assert.Equal(t, 60, c.PlayerCreateDelay)
}

func TestLoad_fileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "pgDsn: postgres://example/db\ngame:\n  winThreshold: 5\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("EUCHRE_CONFIG_FILE", path)
	t.Setenv("EUCHRE_MIGRATIONS_PATH", "/tmp/migrations")

	assert.NoError(t, Load())
	c := Instance()
	assert.Equal(t, "postgres://example/db", c.PGDSN)
	assert.Equal(t, 5, c.Game.WinThreshold)

	// the environment wins over the file
	assert.Equal(t, "/tmp/migrations", c.MigrationsPath)
}
