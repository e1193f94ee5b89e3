/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import "fmt"

// Services builds the fixed three-service specification set from the
// resolved stack inputs. The web and cron services always declare a
// dependency on the database service; the launcher relies on these edges
// for start ordering.
func Services(in StackInputs) []ServiceSpec {
	database := ServiceSpec{
		Name:    DatabaseServiceName,
		Image:   in.DatabaseImage,
		Restart: "unless-stopped",
		Environment: map[string]string{
			"MYSQL_ROOT_PASSWORD": in.Credentials.DatabaseRoot.Value,
			"MYSQL_DATABASE":      in.DatabaseName,
			"MYSQL_USER":          in.DatabaseUser,
			"MYSQL_PASSWORD":      in.Credentials.Database.Value,
		},
		Volumes: []string{
			fmt.Sprintf("%s:/var/lib/mysql", DatabaseVolumeName),
		},
	}

	web := ServiceSpec{
		Name:    WebServiceName,
		Image:   in.WebImage,
		Restart: "unless-stopped",
		Environment: map[string]string{
			"TZ":                    in.Timezone,
			"IPAM_DATABASE_HOST":    in.DatabaseHost,
			"IPAM_DATABASE_USER":    in.DatabaseUser,
			"IPAM_DATABASE_PASS":    in.Credentials.Database.Value,
			"IPAM_DATABASE_WEBHOST": "%",
			"IPAM_ADMIN_PASS":       in.Credentials.Admin.Value,
		},
		Ports: []string{
			fmt.Sprintf("%d:80", in.HTTPPort),
		},
		DependsOn: []string{DatabaseServiceName},
		Volumes: []string{
			fmt.Sprintf("%s:/phpipam/css/images/logo", LogoVolumeName),
		},
	}

	cron := ServiceSpec{
		Name:    CronServiceName,
		Image:   in.CronImage,
		Restart: "unless-stopped",
		Environment: map[string]string{
			"TZ":                 in.Timezone,
			"IPAM_DATABASE_HOST": in.DatabaseHost,
			"IPAM_DATABASE_USER": in.DatabaseUser,
			"IPAM_DATABASE_PASS": in.Credentials.Database.Value,
			"SCAN_INTERVAL":      "1h",
		},
		DependsOn: []string{DatabaseServiceName},
	}

	return []ServiceSpec{database, web, cron}
}

// VolumeNames returns the named volumes the stack declares
func VolumeNames() []string {
	return []string{DatabaseVolumeName, LogoVolumeName}
}
