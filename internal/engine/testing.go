/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package engine

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEngine implements Engine for testing
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) EnsureInstalled(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) Pull(ctx context.Context, manifestPath string) error {
	args := m.Called(ctx, manifestPath)
	return args.Error(0)
}

func (m *MockEngine) Up(ctx context.Context, manifestPath string) error {
	args := m.Called(ctx, manifestPath)
	return args.Error(0)
}

// MockCommandRunner implements CommandRunner for testing
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	callArgs := m.Called(ctx, name, args)
	return callArgs.Error(0)
}

func (m *MockCommandRunner) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}
