/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package secrets provisions the three credentials the stack needs:
// the MariaDB root password, the phpIPAM database user password and the
// phpIPAM admin secret. Each slot accepts an interactively supplied value;
// an empty response falls through to cryptographically random generation.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/orien/ipamup/internal/model"
	"github.com/orien/ipamup/internal/prompt"
)

// Byte lengths of the generated secrets, before encoding
const (
	DatabaseRootSecretBytes = 32
	DatabaseSecretBytes     = 32
	AdminSecretBytes        = 24
)

// Generate returns a random secret of n bytes, encoded as unpadded
// URL-safe base64 so the value is printable and shell-safe
func Generate(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Provisioner collects or generates the credential set
type Provisioner struct {
	prompter       prompt.Prompter
	nonInteractive bool
}

// NewProvisioner creates a provisioner using the given prompter.
// With nonInteractive set, all prompts are skipped and every secret is
// generated.
func NewProvisioner(prompter prompt.Prompter, nonInteractive bool) *Provisioner {
	return &Provisioner{
		prompter:       prompter,
		nonInteractive: nonInteractive,
	}
}

// Provision fills all three secret slots. Secret values are never echoed
// during entry and never printed here; disclosure happens only in the
// credential report after the stack is confirmed healthy.
func (p *Provisioner) Provision() (model.Credentials, error) {
	root, err := p.provisionSlot("MariaDB root password", DatabaseRootSecretBytes)
	if err != nil {
		return model.Credentials{}, err
	}

	database, err := p.provisionSlot("phpIPAM database password", DatabaseSecretBytes)
	if err != nil {
		return model.Credentials{}, err
	}

	admin, err := p.provisionSlot("phpIPAM admin secret", AdminSecretBytes)
	if err != nil {
		return model.Credentials{}, err
	}

	return model.Credentials{
		DatabaseRoot: root,
		Database:     database,
		Admin:        admin,
	}, nil
}

// provisionSlot resolves a single secret slot: prompt first, generate on
// empty input
func (p *Provisioner) provisionSlot(name string, byteLen int) (model.Secret, error) {
	if !p.nonInteractive {
		value, err := p.prompter.ReadSecret(name)
		if err != nil {
			return model.Secret{}, fmt.Errorf("failed to prompt for %s: %w", name, err)
		}
		if value != "" {
			return model.Secret{
				Name:   name,
				Value:  value,
				Source: model.SecretSourceUser,
			}, nil
		}
	}

	value, err := Generate(byteLen)
	if err != nil {
		return model.Secret{}, fmt.Errorf("failed to generate %s: %w", name, err)
	}
	return model.Secret{
		Name:    name,
		Value:   value,
		Source:  model.SecretSourceGenerated,
		ByteLen: byteLen,
	}, nil
}
