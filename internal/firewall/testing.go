/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package firewall

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockManager implements Manager for testing
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Active(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockManager) AllowHTTP(ctx context.Context, port int) error {
	args := m.Called(ctx, port)
	return args.Error(0)
}
