package venvctl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/venvctl/internal/testutils"
	"github.com/aretw0/venvctl/pkg/adapters/memory"
	"github.com/aretw0/venvctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = domain.Layout{BinDir: "bin", Script: "activate"}

// fakeVenv behaves like `python3 -m venv <name>`: it refuses a non-empty
// target and otherwise lays out the activation script.
func fakeVenv(t *testing.T) *memory.Runner {
	return memory.NewRunner(func(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
		name := cmd.Args[len(cmd.Args)-1]
		target := filepath.Join(cmd.Dir, name)
		if entries, err := os.ReadDir(target); err == nil && len(entries) > 0 {
			return domain.ProcessResult{
				ExitCode: 1,
				Stderr:   fmt.Sprintf("Error: [Errno 17] File exists: '%s'\n", name),
			}, nil
		}
		testutils.MakeEnv(t, cmd.Dir, name)
		return domain.ProcessResult{}, nil
	})
}

func newTestManager(dir string, opts ...Option) *Manager {
	base := []Option{
		WithDir(dir),
		WithLayout(testLayout),
		WithRunner(memory.NewRunner(nil)),
		WithConfirmer(memory.NewConfirmer()),
	}
	return New(append(base, opts...)...)
}

func TestManager_List(t *testing.T) {
	t.Run("Finds Only Directories With Activation Script", func(t *testing.T) {
		dir := t.TempDir()
		testutils.MakeEnv(t, dir, "envA")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "envB"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "envC", "bin"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

		envs, err := newTestManager(dir).List(context.Background())
		require.NoError(t, err)
		require.Len(t, envs, 1)
		assert.Equal(t, "envA", envs[0].Name)
		assert.Equal(t, filepath.Join(dir, "envA", "bin", "activate"), envs[0].Activate)
	})

	t.Run("Does Not Recurse", func(t *testing.T) {
		dir := t.TempDir()
		testutils.MakeEnv(t, filepath.Join(dir, "projects"), "nested")

		envs, err := newTestManager(dir).List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, envs)
	})

	t.Run("Sorted By Name", func(t *testing.T) {
		dir := t.TempDir()
		testutils.MakeEnv(t, dir, "zeta")
		testutils.MakeEnv(t, dir, "alpha")

		envs, err := newTestManager(dir).List(context.Background())
		require.NoError(t, err)
		require.Len(t, envs, 2)
		assert.Equal(t, "alpha", envs[0].Name)
		assert.Equal(t, "zeta", envs[1].Name)
	})

	t.Run("Empty Directory", func(t *testing.T) {
		envs, err := newTestManager(t.TempDir()).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, envs)
		assert.Empty(t, envs)
	})

	t.Run("Follows Symlinks", func(t *testing.T) {
		dir := t.TempDir()
		other := t.TempDir()
		testutils.MakeEnv(t, other, "real")
		if err := os.Symlink(filepath.Join(other, "real"), filepath.Join(dir, "linked")); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		envs, err := newTestManager(dir).List(context.Background())
		require.NoError(t, err)
		require.Len(t, envs, 1)
		assert.Equal(t, "linked", envs[0].Name)
	})

	t.Run("Missing Directory", func(t *testing.T) {
		_, err := newTestManager(filepath.Join(t.TempDir(), "gone")).List(context.Background())
		assert.ErrorIs(t, err, domain.ErrScanFailed)
	})
}

func TestManager_Create(t *testing.T) {
	t.Run("Creates Environment", func(t *testing.T) {
		dir := t.TempDir()
		runner := fakeVenv(t)
		m := newTestManager(dir, WithRunner(runner))

		env, err := m.Create(context.Background(), "venv")
		require.NoError(t, err)
		assert.Equal(t, "venv", env.Name)
		assert.FileExists(t, env.Activate)

		calls := runner.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, DefaultInterpreter, calls[0].Name)
		assert.Equal(t, []string{"-m", "venv", "venv"}, calls[0].Args)
		assert.Equal(t, dir, calls[0].Dir)
	})

	t.Run("Second Create Fails And Keeps First", func(t *testing.T) {
		dir := t.TempDir()
		m := newTestManager(dir, WithRunner(fakeVenv(t)))

		_, err := m.Create(context.Background(), "venv")
		require.NoError(t, err)
		marker := filepath.Join(dir, "venv", "bin", "activate")
		before, err := os.ReadFile(marker)
		require.NoError(t, err)

		_, err = m.Create(context.Background(), "venv")
		require.ErrorIs(t, err, domain.ErrProcessFailed)

		var pe *domain.ProcessError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.ExitCode)
		assert.Contains(t, pe.Stderr, "File exists")

		after, err := os.ReadFile(marker)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Interpreter Missing", func(t *testing.T) {
		runner := memory.NewRunner(func(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
			return domain.ProcessResult{}, fmt.Errorf("%s: %w", cmd.Name, domain.ErrInterpreterNotFound)
		})
		_, err := newTestManager(t.TempDir(), WithRunner(runner)).Create(context.Background(), "venv")
		assert.ErrorIs(t, err, domain.ErrInterpreterNotFound)
	})

	t.Run("Custom Interpreter And Args", func(t *testing.T) {
		runner := memory.NewRunner(nil)
		m := newTestManager(t.TempDir(), WithRunner(runner), WithInterpreter("python3.12"), WithVenvArgs("--without-pip"))

		_, err := m.Create(context.Background(), "venv")
		require.NoError(t, err)
		calls := runner.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "python3.12", calls[0].Name)
		assert.Equal(t, []string{"-m", "venv", "venv", "--without-pip"}, calls[0].Args)
	})

	t.Run("Empty Name", func(t *testing.T) {
		runner := memory.NewRunner(nil)
		_, err := newTestManager(t.TempDir(), WithRunner(runner)).Create(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidName)
		assert.Empty(t, runner.Calls())
	})
}

func TestManager_Delete(t *testing.T) {
	t.Run("Missing Environment Does Not Prompt", func(t *testing.T) {
		dir := t.TempDir()
		confirmer := memory.NewConfirmer("y")
		m := newTestManager(dir, WithConfirmer(confirmer))

		err := m.Delete(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrEnvironmentNotFound)
		assert.Empty(t, confirmer.Prompts())
	})

	t.Run("Declined Keeps Directory", func(t *testing.T) {
		for _, answer := range []string{"n", "", "yes", "no"} {
			dir := t.TempDir()
			testutils.MakeEnv(t, dir, "venv")
			confirmer := memory.NewConfirmer(answer)

			err := newTestManager(dir, WithConfirmer(confirmer)).Delete(context.Background(), "venv")
			assert.ErrorIs(t, err, domain.ErrDeletionCancelled, "answer %q", answer)
			assert.FileExists(t, filepath.Join(dir, "venv", "bin", "activate"))
			assert.Equal(t, []string{DeletePrompt("venv")}, confirmer.Prompts())
		}
	})

	t.Run("Confirmed Removes Tree", func(t *testing.T) {
		for _, answer := range []string{"y", "Y"} {
			dir := t.TempDir()
			testutils.MakeEnv(t, dir, "venv")
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "venv", "lib", "site-packages"), 0o755))

			err := newTestManager(dir, WithConfirmer(memory.NewConfirmer(answer))).Delete(context.Background(), "venv")
			require.NoError(t, err)
			assert.NoDirExists(t, filepath.Join(dir, "venv"))
		}
	})

	t.Run("Plain Directory Is Removed Too", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "scratch"), 0o755))

		err := newTestManager(dir, WithConfirmer(memory.NewConfirmer("y"))).Delete(context.Background(), "scratch")
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(dir, "scratch"))
	})

	t.Run("Regular File Is Refused", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "venv")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := newTestManager(dir, WithConfirmer(memory.NewConfirmer("y"))).Delete(context.Background(), "venv")
		assert.ErrorIs(t, err, domain.ErrRemoveFailed)
		assert.FileExists(t, file)
	})

	t.Run("Dangling Symlink Does Not Prompt", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "venv")); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
		confirmer := memory.NewConfirmer("y")

		err := newTestManager(dir, WithConfirmer(confirmer)).Delete(context.Background(), "venv")
		assert.ErrorIs(t, err, domain.ErrEnvironmentNotFound)
		assert.Empty(t, confirmer.Prompts())
	})

	t.Run("Symlink To Environment Is Refused", func(t *testing.T) {
		dir := t.TempDir()
		target := testutils.MakeEnv(t, t.TempDir(), "real")
		link := filepath.Join(dir, "venv")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
		confirmer := memory.NewConfirmer("y")

		err := newTestManager(dir, WithConfirmer(confirmer)).Delete(context.Background(), "venv")
		assert.ErrorIs(t, err, domain.ErrRemoveFailed)
		assert.Len(t, confirmer.Prompts(), 1)

		_, lerr := os.Lstat(link)
		assert.NoError(t, lerr, "link must survive")
		assert.FileExists(t, filepath.Join(target, "bin", "activate"))
	})

	t.Run("Removal Failure Is Reported", func(t *testing.T) {
		dir := t.TempDir()
		testutils.MakeEnv(t, dir, "venv")
		m := newTestManager(dir, WithConfirmer(memory.NewConfirmer("y")))
		m.removeAll = func(string) error { return os.ErrPermission }

		err := m.Delete(context.Background(), "venv")
		assert.ErrorIs(t, err, domain.ErrRemoveFailed)
		assert.Contains(t, err.Error(), "permission denied")
		assert.DirExists(t, filepath.Join(dir, "venv"))
	})

	t.Run("Interrupted Prompt", func(t *testing.T) {
		dir := t.TempDir()
		testutils.MakeEnv(t, dir, "venv")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newTestManager(dir).Delete(ctx, "venv")
		assert.True(t, errors.Is(err, context.Canceled))
		assert.DirExists(t, filepath.Join(dir, "venv"))
	})

	t.Run("Empty Name", func(t *testing.T) {
		err := newTestManager(t.TempDir()).Delete(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})
}

func TestNew_Defaults(t *testing.T) {
	m := New()
	assert.Equal(t, ".", m.Dir())
	assert.Equal(t, DefaultInterpreter, m.Interpreter())
	assert.Equal(t, domain.DefaultLayout(), m.Layout())
}
