package domain

// Command is a request to run an external executable.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// ProcessResult is what a finished process left behind.
// A non-zero ExitCode is a normal result, not an error of the runner.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status 0.
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}
