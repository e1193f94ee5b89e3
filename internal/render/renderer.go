/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package render turns the resolved stack inputs into the two on-disk
// artifacts the installer produces: the docker-compose manifest and the
// environment reference file. Rendering is deterministic; the rendered
// manifest is parsed with compose-go before it is accepted.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/compose-spec/compose-go/v2/loader"
	composetypes "github.com/compose-spec/compose-go/v2/types"

	"github.com/orien/ipamup/internal/model"
)

// Artifact filenames within the install directory
const (
	ManifestFilename    = "docker-compose.yml"
	EnvironmentFilename = "phpipam.env"
)

// Both artifacts embed plaintext secrets, so they are written owner
// read/write only
const artifactFileMode = 0o600

// Artifacts records where the rendered documents were written
type Artifacts struct {
	ManifestPath    string
	EnvironmentPath string
}

// Renderer produces the stack definition and environment reference
type Renderer struct {
	processor TemplateProcessor
	now       func() time.Time
}

// NewRenderer creates a renderer with the default template processor
func NewRenderer() *Renderer {
	return &Renderer{
		processor: NewStackTemplateProcessor(),
		now:       time.Now,
	}
}

// SetProcessor allows injecting a custom template processor (for testing)
func (r *Renderer) SetProcessor(processor TemplateProcessor) {
	r.processor = processor
}

// SetClock allows injecting a fixed clock (for testing)
func (r *Renderer) SetClock(now func() time.Time) {
	r.now = now
}

// RenderManifest renders the docker-compose stack definition. The output
// is a pure function of the inputs: identical inputs yield byte-identical
// documents.
func (r *Renderer) RenderManifest(in model.StackInputs) (string, error) {
	content, err := r.processor.Process(manifestTemplate, map[string]interface{}{
		"Services": model.Services(in),
		"Volumes":  model.VolumeNames(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}

	if err := validateManifest(content); err != nil {
		return "", fmt.Errorf("rendered manifest is invalid: %w", err)
	}

	return content, nil
}

// RenderEnvironment renders the environment reference file. Apart from the
// labelled generation date comment the output is deterministic.
func (r *Renderer) RenderEnvironment(in model.StackInputs) (string, error) {
	content, err := r.processor.Process(environmentTemplate, map[string]interface{}{
		"GeneratedAt":          r.now(),
		"Timezone":             in.Timezone,
		"DatabaseHost":         in.DatabaseHost,
		"DatabaseName":         in.DatabaseName,
		"DatabaseUser":         in.DatabaseUser,
		"DatabasePassword":     in.Credentials.Database.Value,
		"DatabaseRootPassword": in.Credentials.DatabaseRoot.Value,
		"AdminSecret":          in.Credentials.Admin.Value,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render environment file: %w", err)
	}
	return content, nil
}

// WriteArtifacts renders both documents and writes them into dir, creating
// the directory if absent. Both files carry owner-only permissions because
// they contain plaintext secrets.
func (r *Renderer) WriteArtifacts(dir string, in model.StackInputs) (Artifacts, error) {
	manifest, err := r.RenderManifest(in)
	if err != nil {
		return Artifacts{}, err
	}

	environment, err := r.RenderEnvironment(in)
	if err != nil {
		return Artifacts{}, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("failed to create install directory %s: %w", dir, err)
	}

	artifacts := Artifacts{
		ManifestPath:    filepath.Join(dir, ManifestFilename),
		EnvironmentPath: filepath.Join(dir, EnvironmentFilename),
	}

	if err := os.WriteFile(artifacts.ManifestPath, []byte(manifest), artifactFileMode); err != nil {
		return Artifacts{}, fmt.Errorf("failed to write manifest %s: %w", artifacts.ManifestPath, err)
	}
	if err := os.WriteFile(artifacts.EnvironmentPath, []byte(environment), artifactFileMode); err != nil {
		return Artifacts{}, fmt.Errorf("failed to write environment file %s: %w", artifacts.EnvironmentPath, err)
	}

	return artifacts, nil
}

// validateManifest parses the rendered document with the compose-go loader
// so a bad template fails at render time, not inside the container engine
func validateManifest(content string) error {
	details := composetypes.ConfigDetails{
		WorkingDir: ".",
		ConfigFiles: []composetypes.ConfigFile{
			{Filename: ManifestFilename, Content: []byte(content)},
		},
		Environment: composetypes.Mapping{},
	}

	_, err := loader.Load(details, func(o *loader.Options) {
		o.SetProjectName("phpipam", true)
		o.SkipInterpolation = true
	})
	return err
}
