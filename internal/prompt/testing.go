/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

// ReadSecret mock implementation
func (m *MockPrompter) ReadSecret(label string) (string, error) {
	args := m.Called(label)
	return args.String(0), args.Error(1)
}
