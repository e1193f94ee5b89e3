/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateProcessor defines the interface for rendering stack templates
type TemplateProcessor interface {
	Process(templateContent string, variables map[string]interface{}) (string, error)
}

// StackTemplateProcessor implements TemplateProcessor using Go's
// text/template with Sprig functions
type StackTemplateProcessor struct{}

// NewStackTemplateProcessor creates a new stack template processor
func NewStackTemplateProcessor() *StackTemplateProcessor {
	return &StackTemplateProcessor{}
}

// Process renders a stack template with the provided variables using Go
// templates and Sprig functions
func (tp *StackTemplateProcessor) Process(templateContent string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("stack").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, variables)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
