package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned when Command.Name is blank.
var ErrEmptyCommand = errors.New("executor: empty command")

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Run executes cmd and returns its stdout.
func (e *implExecutor) Run(ctx context.Context, c Command) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", c.Name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", c.Name, err)
	}

	return stdout.String(), nil
}
