/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter defines the interface for interactive secret entry
type Prompter interface {
	ReadSecret(label string) (string, error)
}

// TerminalPrompter implements Prompter using the controlling terminal.
// When stdin is a terminal the value is read with echo suppressed; when it
// is not (piped input, tests) it falls back to a plain buffered line read.
type TerminalPrompter struct {
	input  io.Reader
	output io.Writer
}

// NewTerminalPrompter creates a prompter bound to stdin/stderr
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{input: os.Stdin, output: os.Stderr}
}

// ReadSecret prompts for a secret value with input echo suppressed.
// An empty response means "no value supplied"; callers treat that as the
// auto-generate path, never as an error.
func (p *TerminalPrompter) ReadSecret(label string) (string, error) {
	fmt.Fprintf(p.output, "%s (leave empty to auto-generate): ", label)

	if file, ok := p.input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		value, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(p.output)
		if err != nil {
			return "", fmt.Errorf("failed to read secret input: %w", err)
		}
		return strings.TrimSpace(string(value)), nil
	}

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read secret input: %w", err)
		}
		// EOF - treat as no value supplied
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// defaultPrompter is the package-level default prompter
var defaultPrompter Prompter = NewTerminalPrompter()

// SetPrompter allows injection of a custom prompter (for testing)
func SetPrompter(p Prompter) {
	defaultPrompter = p
}

// GetDefaultPrompter returns the current default prompter (for testing)
func GetDefaultPrompter() Prompter {
	return defaultPrompter
}

// ReadSecret prompts for a secret value using the default prompter
func ReadSecret(label string) (string, error) {
	return defaultPrompter.ReadSecret(label)
}
