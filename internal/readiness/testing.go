/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package readiness

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProber implements Prober for testing
type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
