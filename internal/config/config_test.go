package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/gametools/internal/observability/log"
)

func TestParse(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		c, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("Overrides", func(t *testing.T) {
		c, err := Parse(strings.NewReader("log:\n  level: debug\ngrid:\n  width: 8\n"))
		require.NoError(t, err)
		require.Equal(t, log.LevelDebug, c.LogLevel())
		require.Equal(t, "console", c.Log.Encoding)
		require.Equal(t, 8, c.Grid.Width)
		require.Equal(t, 16, c.Grid.Height)
	})

	t.Run("Invalid values", func(t *testing.T) {
		for _, in := range []string{
			"log:\n  level: loud\n",
			"log:\n  encoding: xml\n",
			"grid:\n  height: -1\n",
			"grid:\n  width: 9223372036854775807\n  height: 2\n",
		} {
			_, err := Parse(strings.NewReader(in))
			require.ErrorIs(t, err, ErrInvalidConfig, in)
		}
	})

	t.Run("Unknown keys", func(t *testing.T) {
		_, err := Parse(strings.NewReader("colour: blue\n"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("No path", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gametools.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  encoding: json\n"), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "json", c.Log.Encoding)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
