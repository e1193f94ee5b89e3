/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package secrets

import (
	"encoding/base64"
	"testing"

	"github.com/orien/ipamup/internal/model"
	"github.com/orien/ipamup/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EncodesRequestedByteLength(t *testing.T) {
	for _, n := range []int{24, 32} {
		value, err := Generate(n)
		require.NoError(t, err)

		decoded, err := base64.RawURLEncoding.DecodeString(value)
		require.NoError(t, err, "generated value should be valid base64")
		assert.Len(t, decoded, n, "decoded secret should have the requested byte length")
	}
}

func TestGenerate_SuccessiveValuesDiffer(t *testing.T) {
	first, err := Generate(32)
	require.NoError(t, err)

	second, err := Generate(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "successive generated secrets should differ")
}

func TestProvision_UsesSuppliedValuesVerbatim(t *testing.T) {
	mockPrompter := &prompt.MockPrompter{}
	mockPrompter.On("ReadSecret", "MariaDB root password").Return("my-root-secret", nil).Once()
	mockPrompter.On("ReadSecret", "phpIPAM database password").Return("my-db-secret", nil).Once()
	mockPrompter.On("ReadSecret", "phpIPAM admin secret").Return("my-admin-secret", nil).Once()

	provisioner := NewProvisioner(mockPrompter, false)
	credentials, err := provisioner.Provision()

	require.NoError(t, err)
	assert.Equal(t, "my-root-secret", credentials.DatabaseRoot.Value)
	assert.Equal(t, "my-db-secret", credentials.Database.Value)
	assert.Equal(t, "my-admin-secret", credentials.Admin.Value)

	for _, secret := range credentials.All() {
		assert.Equal(t, model.SecretSourceUser, secret.Source)
	}
	mockPrompter.AssertExpectations(t)
}

func TestProvision_GeneratesOnEmptyInput(t *testing.T) {
	mockPrompter := &prompt.MockPrompter{}
	mockPrompter.On("ReadSecret", "MariaDB root password").Return("", nil).Once()
	mockPrompter.On("ReadSecret", "phpIPAM database password").Return("", nil).Once()
	mockPrompter.On("ReadSecret", "phpIPAM admin secret").Return("", nil).Once()

	provisioner := NewProvisioner(mockPrompter, false)
	credentials, err := provisioner.Provision()

	require.NoError(t, err)

	assert.Equal(t, DatabaseRootSecretBytes, credentials.DatabaseRoot.ByteLen)
	assert.Equal(t, DatabaseSecretBytes, credentials.Database.ByteLen)
	assert.Equal(t, AdminSecretBytes, credentials.Admin.ByteLen)

	for _, secret := range credentials.All() {
		assert.Equal(t, model.SecretSourceGenerated, secret.Source)
		assert.NotEmpty(t, secret.Value)
	}

	// the three generated secrets must be distinct
	assert.NotEqual(t, credentials.DatabaseRoot.Value, credentials.Database.Value)
	assert.NotEqual(t, credentials.Database.Value, credentials.Admin.Value)
	mockPrompter.AssertExpectations(t)
}

func TestProvision_NonInteractiveNeverPrompts(t *testing.T) {
	mockPrompter := &prompt.MockPrompter{}

	provisioner := NewProvisioner(mockPrompter, true)
	credentials, err := provisioner.Provision()

	require.NoError(t, err)
	for _, secret := range credentials.All() {
		assert.Equal(t, model.SecretSourceGenerated, secret.Source)
	}
	mockPrompter.AssertNotCalled(t, "ReadSecret")
}

func TestProvision_MixedSuppliedAndGenerated(t *testing.T) {
	mockPrompter := &prompt.MockPrompter{}
	mockPrompter.On("ReadSecret", "MariaDB root password").Return("typed-in", nil).Once()
	mockPrompter.On("ReadSecret", "phpIPAM database password").Return("", nil).Once()
	mockPrompter.On("ReadSecret", "phpIPAM admin secret").Return("", nil).Once()

	provisioner := NewProvisioner(mockPrompter, false)
	credentials, err := provisioner.Provision()

	require.NoError(t, err)
	assert.Equal(t, model.SecretSourceUser, credentials.DatabaseRoot.Source)
	assert.Equal(t, model.SecretSourceGenerated, credentials.Database.Source)
	assert.Equal(t, model.SecretSourceGenerated, credentials.Admin.Source)
	mockPrompter.AssertExpectations(t)
}
