/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package report composes the credential report written after the stack is
// confirmed healthy. The report file is the single source of truth for the
// generated secrets once the installer exits; terminal output is not
// otherwise retained.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orien/ipamup/internal/model"
	"github.com/orien/ipamup/internal/render"
)

// Filename of the report within the install directory
const Filename = "install-report.txt"

// The report contains plaintext secrets, so owner read/write only
const reportFileMode = 0o600

// Data is everything the report enumerates
type Data struct {
	InstalledAt time.Time
	InstallDir  string
	HTTPPort    int
	Credentials model.Credentials
}

// Format renders the report document
func Format(d Data) string {
	var output strings.Builder

	manifestPath := filepath.Join(d.InstallDir, render.ManifestFilename)

	output.WriteString("phpIPAM stack installation report\n")
	output.WriteString("=================================\n\n")
	output.WriteString(fmt.Sprintf("Installed: %s\n", d.InstalledAt.Format("2006-01-02 15:04:05 MST")))
	output.WriteString(fmt.Sprintf("Location:  %s\n", d.InstallDir))
	output.WriteString(fmt.Sprintf("Address:   http://localhost:%d/\n", d.HTTPPort))

	output.WriteString("\nCredentials:\n")
	for _, secret := range d.Credentials.All() {
		output.WriteString(fmt.Sprintf("  %-28s %s (%s)\n", secret.Name+":", secret.Value, secret.Source))
	}
	output.WriteString(fmt.Sprintf("  %-28s %s  <- change this on first login\n", "Web login:", model.DefaultLogin))

	output.WriteString("\nOperational commands:\n")
	output.WriteString(fmt.Sprintf("  Status:  docker compose -f %s ps\n", manifestPath))
	output.WriteString(fmt.Sprintf("  Logs:    docker compose -f %s logs -f\n", manifestPath))
	output.WriteString(fmt.Sprintf("  Backup:  docker compose -f %s exec %s mysqldump -uroot -p'%s' phpipam > phpipam-backup.sql\n",
		manifestPath, model.DatabaseServiceName, d.Credentials.DatabaseRoot.Value))
	output.WriteString(fmt.Sprintf("  Restore: docker compose -f %s exec -T %s mysql -uroot -p'%s' phpipam < phpipam-backup.sql\n",
		manifestPath, model.DatabaseServiceName, d.Credentials.DatabaseRoot.Value))
	output.WriteString(fmt.Sprintf("  Reset:   docker compose -f %s down -v\n", manifestPath))

	output.WriteString(fmt.Sprintf("\nThis report is kept at %s with owner-only access.\n",
		filepath.Join(d.InstallDir, Filename)))

	return output.String()
}

// Write composes the report and writes it into the install directory with
// owner-only permissions. It returns the written path and the document so
// the caller can echo it to the terminal.
func Write(d Data) (string, string, error) {
	content := Format(d)
	path := filepath.Join(d.InstallDir, Filename)

	if err := os.WriteFile(path, []byte(content), reportFileMode); err != nil {
		return "", "", fmt.Errorf("failed to write credential report %s: %w", path, err)
	}
	return path, content, nil
}
