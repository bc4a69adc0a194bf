package executor

import "context"

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
}

// Executor defines the interface for executing external commands
type Executor interface {
	Run(ctx context.Context, cmd Command) (string, error)
}
