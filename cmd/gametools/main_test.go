package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"distance", []string{"distance", "0,0,0", "3,4,0"}, "5\n"},
		{"equal", []string{"equal", "1,2,3", "1,2,3.0000001"}, "true\n"},
		{"not equal", []string{"equal", "1,2,3", "1,2,3.1"}, "false\n"},
		{"manhattan", []string{"manhattan", "0,0", "3,-4"}, "7\n"},
		{"adjacent", []string{"adjacent", "5,5"}, "6,5\n4,5\n5,6\n5,4\n"},
		{"inbounds default grid", []string{"inbounds", "15,15"}, "true\n"},
		{"inbounds explicit grid", []string{"inbounds", "3,1", "3x2"}, "false\n"},
		{"inbounds truncates", []string{"inbounds", "-0.5,1.9", "3x2"}, "true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			require.Equal(t, 0, code, errOut)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRunScenes(t *testing.T) {
	code, out, errOut := runCLI(t, "scenes", "Assets/Scenes/Boot.unity", "Assets/Scenes/Main.unity")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "0\tBoot\tAssets/Scenes/Boot.unity\t"))
	require.True(t, strings.HasPrefix(lines[1], "1\tMain\t"))

	code, _, errOut = runCLI(t, "scenes", "A.unity", "A.unity")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "scene already loaded")
}

func TestRunErrors(t *testing.T) {
	t.Run("No command", func(t *testing.T) {
		code, _, errOut := runCLI(t)
		require.Equal(t, 2, code)
		require.Contains(t, errOut, "usage:")
	})

	t.Run("Unknown command", func(t *testing.T) {
		code, _, errOut := runCLI(t, "teleport")
		require.Equal(t, 2, code)
		require.Contains(t, errOut, `unknown command "teleport"`)
	})

	t.Run("Wrong arity", func(t *testing.T) {
		code, _, _ := runCLI(t, "distance", "1,2,3")
		require.Equal(t, 2, code)
	})

	t.Run("Bad numbers", func(t *testing.T) {
		for _, args := range [][]string{
			{"distance", "1,2", "3,4,5"},
			{"manhattan", "a,b", "0,0"},
			{"inbounds", "1,1", "3by2"},
			{"inbounds", "1,1", "-3x2"},
			{"inbounds", "0,0", "9223372036854775807x2"},
		} {
			code, _, errOut := runCLI(t, args...)
			require.Equal(t, 1, code, args)
			require.Contains(t, errOut, "invalid argument", args)
		}
	})

	t.Run("Oversized config grid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "huge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 4611686018427387904\n  height: 4\n"), 0o600))
		code, _, errOut := runCLI(t, "-config", path, "inbounds", "0,0")
		require.Equal(t, 1, code)
		require.Contains(t, errOut, "invalid configuration")
	})

	t.Run("Bad config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))
		code, _, errOut := runCLI(t, "-config", path, "adjacent", "0,0")
		require.Equal(t, 1, code)
		require.Contains(t, errOut, "invalid configuration")
	})
}

func TestRunConfigGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gametools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 2\n  height: 2\n"), 0o600))

	code, out, _ := runCLI(t, "-config", path, "inbounds", "2,0")
	require.Equal(t, 0, code)
	require.Equal(t, "false\n", out)
}
