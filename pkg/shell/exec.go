// Package shell provides utilities for executing external commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result holds the output and exit code of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner is an interface for executing external commands.
// This allows for mocking in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// DefaultRunner implements the Runner interface using real execution.
type DefaultRunner struct{}

// NewRunner creates a new DefaultRunner.
func NewRunner() Runner {
	return &DefaultRunner{}
}

// Run executes a command with context support.
func (r *DefaultRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	return runCmd(ctx, name, args...)
}

// runCmd is the internal function that executes commands.
func runCmd(ctx context.Context, name string, args ...string) (*Result, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		ExitCode: 0,
		Duration: time.Since(start),
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, fmt.Errorf("failed to execute '%s': %w", name, err)
}

// Run executes a command with a background context.
func Run(name string, args ...string) (*Result, error) {
	return runCmd(context.Background(), name, args...)
}

// RunWithTimeout executes a command, killing it after the timeout.
func RunWithTimeout(timeout time.Duration, name string, args ...string) (*Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return runCmd(ctx, name, args...)
}
