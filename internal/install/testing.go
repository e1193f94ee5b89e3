/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package install

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner implements Runner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, opts Options) (*Result, error) {
	args := m.Called(ctx, opts)
	if result := args.Get(0); result != nil {
		return result.(*Result), args.Error(1)
	}
	return nil, args.Error(1)
}
