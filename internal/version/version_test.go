/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_ContainsAllFields(t *testing.T) {
	info := Info()

	assert.Contains(t, info, "ipamup")
	assert.Contains(t, info, Version)
	assert.Contains(t, info, GitCommit)
	assert.Contains(t, info, BuildDate)
	assert.Contains(t, info, GoVersion)
	assert.Contains(t, info, Platform)
}

func TestShort_ReturnsVersionOnly(t *testing.T) {
	assert.Equal(t, Version, Short())
}
