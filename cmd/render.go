/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/orien/ipamup/internal/model"
	"github.com/orien/ipamup/internal/render"
	"github.com/orien/ipamup/internal/secrets"

	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the stack manifest without installing",
	Long: `Render the docker-compose manifest the installer would use and print
it to standard output, without touching the container engine or the host.

Fresh secrets are generated for the preview; a subsequent install generates
its own. With --write the manifest and the environment reference file are
written into the installation directory instead of printed.

Examples:
  ipamup render                  # Preview the manifest on stdout
  ipamup render --port 8080      # Preview with a different published port
  ipamup render --write          # Write both artifacts to /opt/phpipam`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := buildOptions(cmd, cfg)
		if err != nil {
			return err
		}

		provisioner := secrets.NewProvisioner(nil, true)
		credentials, err := provisioner.Provision()
		if err != nil {
			return err
		}

		inputs := model.StackInputs{
			Credentials:   credentials,
			DatabaseName:  model.DatabaseName,
			DatabaseUser:  model.DatabaseUser,
			DatabaseHost:  model.DatabaseServiceName,
			DatabaseImage: opts.DatabaseImage,
			WebImage:      opts.WebImage,
			CronImage:     opts.CronImage,
			HTTPPort:      opts.HTTPPort,
			Timezone:      opts.Timezone,
		}

		renderer := render.NewRenderer()

		write, _ := cmd.Flags().GetBool("write")
		if write {
			artifacts, err := renderer.WriteArtifacts(opts.InstallDir, inputs)
			if err != nil {
				return err
			}
			printer := newPrinter(cmd)
			printer.Success("wrote %s", artifacts.ManifestPath)
			printer.Success("wrote %s", artifacts.EnvironmentPath)
			return nil
		}

		manifest, err := renderer.RenderManifest(inputs)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), manifest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("dir", "/opt/phpipam", "installation directory")
	renderCmd.Flags().Int("port", 80, "published HTTP port")
	renderCmd.Flags().String("timezone", "UTC", "timezone for the stack containers")
	renderCmd.Flags().Bool("write", false, "write the artifacts instead of printing")
}
