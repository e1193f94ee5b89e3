/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package engine wraps the container engine command line. The installer
// only depends on exit codes: any non-zero exit aborts the pipeline and
// already-started containers are left as they are for the operator to
// inspect with engine-native commands.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Engine defines the interface for container engine operations
type Engine interface {
	// EnsureInstalled makes sure the engine binary is available, installing
	// it with the host package manager when it is missing
	EnsureInstalled(ctx context.Context) error

	// Pull resolves and fetches every image the manifest references
	Pull(ctx context.Context, manifestPath string) error

	// Up starts all services in dependency order
	Up(ctx context.Context, manifestPath string) error
}

// CommandError reports a collaborator command that exited non-zero
type CommandError struct {
	Command string
	Args    []string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s %s failed: %v", e.Command, strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandRunner abstracts process execution so tests can substitute a fake
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	LookPath(name string) (string, error)
}

// ExecRunner implements CommandRunner with os/exec, streaming the child's
// output to the given writers
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the process stdout/stderr
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the named command and waits for it to finish
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return &CommandError{Command: name, Args: args, Err: err}
	}
	return nil
}

// LookPath reports where the named binary resolves on PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// DockerComposeEngine implements Engine using the docker CLI with the
// compose plugin
type DockerComposeEngine struct {
	runner CommandRunner
}

// NewDockerComposeEngine creates an engine backed by the docker CLI
func NewDockerComposeEngine(runner CommandRunner) *DockerComposeEngine {
	return &DockerComposeEngine{runner: runner}
}

// EnsureInstalled installs docker and the compose plugin via the host
// package manager when the docker binary is absent, then enables and
// starts the daemon. A docker binary already on PATH is left untouched.
func (e *DockerComposeEngine) EnsureInstalled(ctx context.Context) error {
	if _, err := e.runner.LookPath("docker"); err == nil {
		return nil
	}

	if err := installEnginePackages(ctx, e.runner); err != nil {
		return err
	}

	if err := e.runner.Run(ctx, "systemctl", "enable", "--now", "docker"); err != nil {
		return fmt.Errorf("failed to start container engine: %w", err)
	}
	return nil
}

// Pull fetches all images referenced by the manifest
func (e *DockerComposeEngine) Pull(ctx context.Context, manifestPath string) error {
	if err := e.runner.Run(ctx, "docker", "compose", "-f", manifestPath, "pull"); err != nil {
		return fmt.Errorf("failed to pull stack images: %w", err)
	}
	return nil
}

// Up starts the stack detached; compose honours the depends_on edges in
// the manifest
func (e *DockerComposeEngine) Up(ctx context.Context, manifestPath string) error {
	if err := e.runner.Run(ctx, "docker", "compose", "-f", manifestPath, "up", "-d"); err != nil {
		return fmt.Errorf("failed to start stack: %w", err)
	}
	return nil
}

// installEnginePackages installs docker with dnf, falling back to yum on
// older hosts
func installEnginePackages(ctx context.Context, runner CommandRunner) error {
	packages := []string{"docker", "docker-compose-plugin"}

	manager := "dnf"
	if _, err := runner.LookPath(manager); err != nil {
		manager = "yum"
		if _, err := runner.LookPath(manager); err != nil {
			return fmt.Errorf("no supported package manager found to install the container engine")
		}
	}

	args := append([]string{"install", "-y"}, packages...)
	if err := runner.Run(ctx, manager, args...); err != nil {
		return fmt.Errorf("failed to install container engine packages: %w", err)
	}
	return nil
}
