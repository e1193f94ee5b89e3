/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

// SecretSource records where a secret value came from
type SecretSource string

const (
	// SecretSourceUser marks a value typed in at the interactive prompt
	SecretSourceUser SecretSource = "user"

	// SecretSourceGenerated marks a value produced by the random generator
	SecretSourceGenerated SecretSource = "generated"
)

// Secret represents a single credential used by the stack.
// Once provisioned the value is immutable and every consumer (manifest,
// environment file, credential report) must see the same value.
type Secret struct {
	Name    string
	Value   string
	Source  SecretSource
	ByteLen int
}

// Credentials is the full set of secrets the installer provisions
type Credentials struct {
	DatabaseRoot Secret // MariaDB root password
	Database     Secret // phpIPAM database user password
	Admin        Secret // phpIPAM admin secret
}

// All returns the secrets in report order
func (c Credentials) All() []Secret {
	return []Secret{c.DatabaseRoot, c.Database, c.Admin}
}

// ServiceSpec describes one containerised service in the stack
type ServiceSpec struct {
	Name        string
	Image       string
	Restart     string
	Environment map[string]string
	Ports       []string
	DependsOn   []string
	Volumes     []string
}

// StackInputs is the complete input set for manifest rendering.
// Rendering is a pure function of this struct: identical inputs must
// always produce identical output.
type StackInputs struct {
	Credentials Credentials

	DatabaseName string
	DatabaseUser string
	DatabaseHost string

	DatabaseImage string
	WebImage      string
	CronImage     string

	HTTPPort int
	Timezone string
}

// Fixed configuration constants for the phpIPAM stack
const (
	DatabaseServiceName = "phpipam-mariadb"
	WebServiceName      = "phpipam-web"
	CronServiceName     = "phpipam-cron"

	DatabaseVolumeName = "phpipam-db-data"
	LogoVolumeName     = "phpipam-logo"

	DatabaseName = "phpipam"
	DatabaseUser = "phpipam"

	// DefaultLogin is the publicly known first-login credential pair the
	// operator is expected to change immediately after installation.
	DefaultLogin = "Admin / ipamadmin"
)
