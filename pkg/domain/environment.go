package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Environment is a virtual-environment directory found in (or created under)
// the working directory.
type Environment struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Activate string `json:"activate"`
}

// Layout describes where the activation script lives inside an environment.
type Layout struct {
	BinDir string `yaml:"bin_dir" json:"bin_dir" mapstructure:"bin_dir"`
	Script string `yaml:"script" json:"script" mapstructure:"script"`
}

// DefaultLayout returns the layout produced by `python -m venv` on the current OS.
func DefaultLayout() Layout {
	if runtime.GOOS == "windows" {
		return Layout{BinDir: "Scripts", Script: "activate"}
	}
	return Layout{BinDir: "bin", Script: "activate"}
}

// Marker returns the activation script path of the environment rooted at root.
func (l Layout) Marker(root string) string {
	return filepath.Join(root, l.BinDir, l.Script)
}

// Hint is the shell snippet a user types to activate the named environment.
// It always uses forward slashes, matching what users paste into a POSIX shell.
func (l Layout) Hint(name string) string {
	return "source " + strings.Join([]string{name, l.BinDir, l.Script}, "/")
}

// NewEnvironment builds the Environment for name under dir.
func NewEnvironment(dir, name string, layout Layout) Environment {
	root := filepath.Join(dir, name)
	return Environment{
		Name:     name,
		Path:     root,
		Activate: layout.Marker(root),
	}
}

// IsAffirmative reports whether a confirmation answer means "yes".
// Only a single y (any case) confirms; surrounding whitespace is ignored.
func IsAffirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
