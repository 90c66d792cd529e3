package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeEnv lays out <dir>/<name>/bin/activate the way `python3 -m venv` does
// on POSIX systems and returns the environment root.
// It fails the test immediately on error.
func MakeEnv(t testing.TB, dir, name string) string {
	t.Helper()

	root := filepath.Join(dir, name)
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755), "Failed to create %s", bin)
	require.NoError(t, os.WriteFile(filepath.Join(bin, "activate"), []byte("# activate\n"), 0o644), "Failed to write activate script")

	return root
}

// SetupWorkspace creates a temporary directory holding the named environments.
// It returns the absolute path to the temp dir.
func SetupWorkspace(t testing.TB, envs ...string) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for _, name := range envs {
		MakeEnv(t, absPath, name)
	}
	return absPath
}
