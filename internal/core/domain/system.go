package domain

// RunResult captures a synchronous system command's outcome.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
