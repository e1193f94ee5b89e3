/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ipamup",
	Short: "An unattended installer for a dockerised phpIPAM stack",
	Long: `Ipamup provisions a complete phpIPAM installation on a single Docker host:

• Generates or collects the database and admin credentials
• Renders a docker-compose manifest and an environment reference file
• Pulls the images and starts the stack in dependency order
• Waits until the web frontend answers over HTTP
• Opens the firewall when the host runs firewalld
• Writes a credential report with the generated secrets

The whole pipeline is fail-fast: the first failing step stops the
installation and leaves already-started containers in place for
inspection.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// RootCommand exposes the root command for documentation tooling
func RootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "ipamup.yaml", "config file (default is ipamup.yaml)")
	rootCmd.PersistentFlags().Bool("no-colour", false, "disable coloured output")
}
