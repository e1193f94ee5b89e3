/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package firewall opens the stack's HTTP port when the host runs a
// managed firewall. A host without firewalld is a valid configuration,
// not an error; the exposure stage is simply skipped.
package firewall

import (
	"context"
	"fmt"
	"strconv"

	"github.com/orien/ipamup/internal/engine"
)

// Manager defines the interface for host firewall operations
type Manager interface {
	// Active reports whether a firewall manager is running on the host
	Active(ctx context.Context) bool

	// AllowHTTP permanently allows the stack's HTTP traffic and reloads
	// the active ruleset
	AllowHTTP(ctx context.Context, port int) error
}

// FirewalldManager implements Manager using the firewall-cmd CLI
type FirewalldManager struct {
	runner engine.CommandRunner
}

// NewFirewalldManager creates a manager backed by firewall-cmd
func NewFirewalldManager(runner engine.CommandRunner) *FirewalldManager {
	return &FirewalldManager{runner: runner}
}

// Active reports whether firewalld is installed and running. Any failure
// (missing binary, daemon not running) classifies the host as unmanaged.
func (m *FirewalldManager) Active(ctx context.Context) bool {
	if _, err := m.runner.LookPath("firewall-cmd"); err != nil {
		return false
	}
	return m.runner.Run(ctx, "firewall-cmd", "--state") == nil
}

// AllowHTTP adds a permanent allow rule for the stack's published port and
// reloads the ruleset so it takes effect immediately. Port 80 uses the
// named http service; any other port is opened directly.
func (m *FirewalldManager) AllowHTTP(ctx context.Context, port int) error {
	var addArgs []string
	if port == 80 {
		addArgs = []string{"--permanent", "--add-service=http"}
	} else {
		addArgs = []string{"--permanent", "--add-port=" + strconv.Itoa(port) + "/tcp"}
	}

	if err := m.runner.Run(ctx, "firewall-cmd", addArgs...); err != nil {
		return fmt.Errorf("failed to add firewall rule: %w", err)
	}
	if err := m.runner.Run(ctx, "firewall-cmd", "--reload"); err != nil {
		return fmt.Errorf("failed to reload firewall ruleset: %w", err)
	}
	return nil
}
