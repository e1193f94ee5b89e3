/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/orien/ipamup/internal/install"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstallCommand_Exists(t *testing.T) {
	installCmd := findCommand(rootCmd, "install")

	require.NotNil(t, installCmd, "install command should be registered")
	assert.Equal(t, "install", installCmd.Use)
}

func TestInstallCommand_HasFlags(t *testing.T) {
	installCmd := findCommand(rootCmd, "install")
	require.NotNil(t, installCmd)

	for _, name := range []string{"dir", "port", "timezone", "non-interactive", "skip-firewall"} {
		assert.NotNil(t, installCmd.Flags().Lookup(name), "install command should have --%s flag", name)
	}
}

func TestInstallCommand_RunsPipelineWithOptions(t *testing.T) {
	mockRunner := &install.MockRunner{}
	mockRunner.On("Run", mock.Anything, mock.MatchedBy(func(opts install.Options) bool {
		return opts.NonInteractive && opts.InstallDir == "/opt/phpipam" && opts.HTTPPort == 80
	})).Return(&install.Result{Report: "report body\n"}, nil).Once()

	oldInstaller := installer
	SetInstaller(mockRunner)
	defer SetInstaller(oldInstaller)

	rootCmd.SetArgs([]string{"install", "--non-interactive", "--no-colour"})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockRunner.AssertExpectations(t)
}

func TestInstallCommand_ForwardsFlagOverrides(t *testing.T) {
	mockRunner := &install.MockRunner{}
	mockRunner.On("Run", mock.Anything, mock.MatchedBy(func(opts install.Options) bool {
		return opts.InstallDir == "/srv/ipam" && opts.HTTPPort == 8080 && opts.SkipFirewall
	})).Return(&install.Result{}, nil).Once()

	oldInstaller := installer
	SetInstaller(mockRunner)
	defer SetInstaller(oldInstaller)

	rootCmd.SetArgs([]string{
		"install", "--non-interactive", "--no-colour",
		"--dir", "/srv/ipam", "--port", "8080", "--skip-firewall",
	})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockRunner.AssertExpectations(t)
}

func TestInstallCommand_RejectsOutOfRangePortFlag(t *testing.T) {
	mockRunner := &install.MockRunner{}

	oldInstaller := installer
	SetInstaller(mockRunner)
	defer SetInstaller(oldInstaller)

	t.Cleanup(func() {
		portFlag := findCommand(rootCmd, "install").Flags().Lookup("port")
		_ = portFlag.Value.Set(portFlag.DefValue)
		portFlag.Changed = false
	})

	rootCmd.SetArgs([]string{"install", "--non-interactive", "--no-colour", "--port", "99999"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	mockRunner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestInstallCommand_HandlesPipelineError(t *testing.T) {
	mockRunner := &install.MockRunner{}
	mockRunner.On("Run", mock.Anything, mock.Anything).
		Return(nil, errors.New("Readiness failed: stack did not become ready in time")).Once()

	oldInstaller := installer
	SetInstaller(mockRunner)
	defer SetInstaller(oldInstaller)

	rootCmd.SetArgs([]string{"install", "--non-interactive", "--no-colour"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "installation failed")
	mockRunner.AssertExpectations(t)
}

func TestInstallCommand_RejectsPositionalArgs(t *testing.T) {
	oldInstaller := installer
	SetInstaller(&install.MockRunner{})
	defer SetInstaller(oldInstaller)

	rootCmd.SetArgs([]string{"install", "unexpected"})
	err := rootCmd.Execute()

	assert.Error(t, err)
}
