/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package render

// manifestTemplate renders the docker-compose stack definition from the
// service specification set. Environment maps are ranged with sorted keys
// by text/template, so output is deterministic for identical inputs.
const manifestTemplate = `services:
{{- range .Services }}
  {{ .Name }}:
    image: {{ .Image }}
    restart: {{ .Restart }}
{{- if .Ports }}
    ports:
{{- range .Ports }}
      - "{{ . }}"
{{- end }}
{{- end }}
{{- if .Environment }}
    environment:
{{- range $key, $value := .Environment }}
      - "{{ $key }}={{ $value }}"
{{- end }}
{{- end }}
{{- if .DependsOn }}
    depends_on:
{{- range .DependsOn }}
      - {{ . }}
{{- end }}
{{- end }}
{{- if .Volumes }}
    volumes:
{{- range .Volumes }}
      - {{ . }}
{{- end }}
{{- end }}
{{- end }}

volumes:
{{- range .Volumes }}
  {{ . }}:
{{- end }}
`

// environmentTemplate renders the companion environment reference file.
// The generation date comment is the only part allowed to vary between
// renders of identical inputs.
const environmentTemplate = `# phpIPAM stack environment reference
# Generated: {{ date "2006-01-02 15:04:05 MST" .GeneratedAt }}
#
# Reference copy of the environment the stack was started with. This file
# contains plaintext secrets; it must stay readable by its owner only.

TZ={{ .Timezone }}
IPAM_DATABASE_HOST={{ .DatabaseHost }}
IPAM_DATABASE_NAME={{ .DatabaseName }}
IPAM_DATABASE_USER={{ .DatabaseUser }}
IPAM_DATABASE_PASS={{ .DatabasePassword }}
MYSQL_ROOT_PASSWORD={{ .DatabaseRootPassword }}
IPAM_ADMIN_PASS={{ .AdminSecret }}
`
