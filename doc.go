/*
Package venvctl manages Python virtual environments living as directories
under a working directory.

An environment is recognized solely by its activation script
(`<name>/bin/activate`, or `<name>/Scripts/activate` on Windows). The
filesystem is the only state store: nothing is cached between calls.

# Usage

	m := venvctl.New(venvctl.WithDir("."))

	envs, err := m.List(ctx)
	env, err := m.Create(ctx, "venv")
	err = m.Delete(ctx, "venv") // asks for confirmation on stdin

Creation is delegated to `python3 -m venv` through a ports.ProcessRunner and
deletion is guarded by a ports.Confirmer. Both can be swapped with
WithRunner and WithConfirmer, which is how the in-memory adapters are used
in tests.

# Errors

Operations return errors from package domain wrapped with context, so
callers use errors.Is / errors.As:

	var pe *domain.ProcessError
	if errors.As(err, &pe) {
		fmt.Println(pe.Stderr)
	}
*/
package venvctl
