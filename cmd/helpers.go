/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"time"

	"github.com/orien/ipamup/internal/config"
	"github.com/orien/ipamup/internal/install"
	"github.com/orien/ipamup/internal/ui"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file named by the persistent --config flag
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	return config.Load(configFile)
}

// newPrinter creates a printer honouring the --no-colour flag
func newPrinter(cmd *cobra.Command) *ui.Printer {
	noColour, _ := cmd.Flags().GetBool("no-colour")
	return ui.NewPrinter(!noColour)
}

// buildOptions layers command flags over the file configuration. The
// layered result passes through Config.Validate again so a flag value is
// held to the same checks as a file value.
func buildOptions(cmd *cobra.Command, cfg config.Config) (install.Options, error) {
	if cmd.Flags().Changed("dir") {
		cfg.InstallDir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("port") {
		cfg.HTTPPort, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("timezone") {
		cfg.Timezone, _ = cmd.Flags().GetString("timezone")
	}
	if cmd.Flags().Changed("skip-firewall") {
		cfg.SkipFirewall, _ = cmd.Flags().GetBool("skip-firewall")
	}

	if err := cfg.Validate(); err != nil {
		return install.Options{}, err
	}

	opts := install.Options{
		InstallDir:    cfg.InstallDir,
		HTTPPort:      cfg.HTTPPort,
		Timezone:      cfg.Timezone,
		DatabaseImage: cfg.Images.Database,
		WebImage:      cfg.Images.Web,
		CronImage:     cfg.Images.Cron,
		SkipFirewall:  cfg.SkipFirewall,
		ProbeInterval: time.Duration(cfg.Probe.Interval),
		ProbeAttempts: cfg.Probe.Attempts,
	}
	if cmd.Flags().Changed("non-interactive") {
		opts.NonInteractive, _ = cmd.Flags().GetBool("non-interactive")
	}

	return opts, nil
}
