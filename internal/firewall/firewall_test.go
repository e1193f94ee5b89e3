/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package firewall

import (
	"context"
	"errors"
	"testing"

	"github.com/orien/ipamup/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActive_TrueWhenFirewalldRuns(t *testing.T) {
	mockRunner := &engine.MockCommandRunner{}
	mockRunner.On("LookPath", "firewall-cmd").Return("/usr/bin/firewall-cmd", nil).Once()
	mockRunner.On("Run", mock.Anything, "firewall-cmd", []string{"--state"}).Return(nil).Once()

	manager := NewFirewalldManager(mockRunner)
	assert.True(t, manager.Active(context.Background()))
	mockRunner.AssertExpectations(t)
}

func TestActive_FalseWithoutBinary(t *testing.T) {
	mockRunner := &engine.MockCommandRunner{}
	mockRunner.On("LookPath", "firewall-cmd").Return("", errors.New("not found")).Once()

	manager := NewFirewalldManager(mockRunner)
	assert.False(t, manager.Active(context.Background()))
	mockRunner.AssertNotCalled(t, "Run")
}

func TestActive_FalseWhenDaemonStopped(t *testing.T) {
	mockRunner := &engine.MockCommandRunner{}
	mockRunner.On("LookPath", "firewall-cmd").Return("/usr/bin/firewall-cmd", nil).Once()
	mockRunner.On("Run", mock.Anything, "firewall-cmd", []string{"--state"}).
		Return(errors.New("not running")).Once()

	manager := NewFirewalldManager(mockRunner)
	assert.False(t, manager.Active(context.Background()))
}

func TestAllowHTTP_UsesNamedServiceForPort80(t *testing.T) {
	mockRunner := &engine.MockCommandRunner{}
	mockRunner.On("Run", mock.Anything, "firewall-cmd",
		[]string{"--permanent", "--add-service=http"}).Return(nil).Once()
	mockRunner.On("Run", mock.Anything, "firewall-cmd",
		[]string{"--reload"}).Return(nil).Once()

	manager := NewFirewalldManager(mockRunner)
	err := manager.AllowHTTP(context.Background(), 80)

	require.NoError(t, err)
	mockRunner.AssertExpectations(t)
}

func TestAllowHTTP_OpensCustomPortDirectly(t *testing.T) {
	mockRunner := &engine.MockCommandRunner{}
	mockRunner.On("Run", mock.Anything, "firewall-cmd",
		[]string{"--permanent", "--add-port=8080/tcp"}).Return(nil).Once()
	mockRunner.On("Run", mock.Anything, "firewall-cmd",
		[]string{"--reload"}).Return(nil).Once()

	manager := NewFirewalldManager(mockRunner)
	err := manager.AllowHTTP(context.Background(), 8080)

	require.NoError(t, err)
	mockRunner.AssertExpectations(t)
}

func TestAllowHTTP_FailsWhenRuleCannotBeAdded(t *testing.T) {
	mockRunner := &engine.MockCommandRunner{}
	mockRunner.On("Run", mock.Anything, "firewall-cmd",
		[]string{"--permanent", "--add-service=http"}).Return(errors.New("denied")).Once()

	manager := NewFirewalldManager(mockRunner)
	err := manager.AllowHTTP(context.Background(), 80)

	assert.ErrorContains(t, err, "failed to add firewall rule")
	mockRunner.AssertNotCalled(t, "Run", mock.Anything, "firewall-cmd", []string{"--reload"})
}
