package domain

// Invocation describes an external process run by the toolchain.
type Invocation struct {
	// Command is the executable followed by its arguments.
	Command []string

	// WorkingDir is the directory the process runs in. Empty means the current directory.
	WorkingDir string

	// Environment holds variables set on top of the inherited environment.
	Environment map[string]string
}
