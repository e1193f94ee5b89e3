/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/ipamup/internal/install"
	"github.com/orien/ipamup/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// installer can be injected for testing
	installer install.Runner
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the phpIPAM stack",
	Long: `Install the phpIPAM stack on this host.

The installer runs the full provisioning pipeline: it verifies root
privileges, makes sure the container engine is available, collects or
generates the three stack secrets, renders the docker-compose manifest
and environment file, starts the stack, waits until the web frontend
answers over HTTP, opens the firewall when firewalld is running, and
finally writes the credential report.

Each secret can be supplied at the prompt (input is never echoed);
pressing ENTER generates a random value instead. With --non-interactive
every secret is generated without prompting.

Examples:
  ipamup install                         # Interactive install to /opt/phpipam
  ipamup install --non-interactive       # Generate all secrets, no prompts
  ipamup install --dir /srv/ipam --port 8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := buildOptions(cmd, cfg)
		if err != nil {
			return err
		}

		printer := newPrinter(cmd)
		result, err := getInstaller(printer).Run(ctx, opts)
		if err != nil {
			return fmt.Errorf("installation failed: %w", err)
		}

		printer.Banner("phpIPAM stack installed successfully")
		printer.Plain(result.Report)
		return nil
	},
}

// getInstaller returns the installer instance, creating a default one if none is set
func getInstaller(printer *ui.Printer) install.Runner {
	if installer != nil {
		return installer
	}
	return install.NewDefaultInstaller(printer)
}

// SetInstaller allows injection of an installer (for testing)
func SetInstaller(r install.Runner) {
	installer = r
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().String("dir", "/opt/phpipam", "installation directory")
	installCmd.Flags().Int("port", 80, "published HTTP port")
	installCmd.Flags().String("timezone", "UTC", "timezone for the stack containers")
	installCmd.Flags().Bool("non-interactive", false, "generate all secrets without prompting")
	installCmd.Flags().Bool("skip-firewall", false, "never touch the host firewall")
}
