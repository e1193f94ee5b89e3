/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_MarkersWithoutColour(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinterTo(&out, false)

	printer.Stage("Credentials")
	printer.Success("generated %d secrets", 3)
	printer.Skip("no managed firewall detected")
	printer.Failure("probe timed out")
	printer.Info("attempt %d", 2)

	output := out.String()
	assert.Contains(t, output, "==> Credentials")
	assert.Contains(t, output, "✓ generated 3 secrets")
	assert.Contains(t, output, "- no managed firewall detected")
	assert.Contains(t, output, "✗ probe timed out")
	assert.Contains(t, output, "attempt 2")
}

func TestPrinter_PlainEchoesVerbatim(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinterTo(&out, false)

	printer.Plain("report contents\n")
	assert.Equal(t, "report contents\n", out.String())
}
