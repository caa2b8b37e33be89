package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde prefix", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, ".local/share/ladle/ladle.db"),
			ExpandPath("~/.local/share/ladle/ladle.db"))
	})

	t.Run("bare tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("LADLE_TEST_DIR", "/tmp/ladle")
		assert.Equal(t, "/tmp/ladle/ladle.db", ExpandPath("$LADLE_TEST_DIR/ladle.db"))
	})

	t.Run("plain path unchanged", func(t *testing.T) {
		assert.Equal(t, "/var/lib/ladle.db", ExpandPath("/var/lib/ladle.db"))
		assert.Equal(t, "", ExpandPath(""))
	})
}
