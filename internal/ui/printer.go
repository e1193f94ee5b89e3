/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes styled progress markers for the pipeline stages
type Printer struct {
	out    io.Writer
	styles *Styles
}

// NewPrinter creates a printer writing styled output to stdout
func NewPrinter(useColour bool) *Printer {
	return &Printer{out: os.Stdout, styles: NewStyles(useColour)}
}

// NewPrinterTo creates a printer writing to the given writer (for testing)
func NewPrinterTo(out io.Writer, useColour bool) *Printer {
	return &Printer{out: out, styles: NewStyles(useColour)}
}

// Stage announces the start of a pipeline stage
func (p *Printer) Stage(name string) {
	fmt.Fprintln(p.out, p.styles.Stage.Render("==> "+name))
}

// Success reports a completed step
func (p *Printer) Success(format string, a ...interface{}) {
	fmt.Fprintln(p.out, p.styles.Success.Render("  ✓ "+fmt.Sprintf(format, a...)))
}

// Skip reports an intentionally skipped step
func (p *Printer) Skip(format string, a ...interface{}) {
	fmt.Fprintln(p.out, p.styles.Skip.Render("  - "+fmt.Sprintf(format, a...)))
}

// Failure reports a fatal step error
func (p *Printer) Failure(format string, a ...interface{}) {
	fmt.Fprintln(p.out, p.styles.Failure.Render("  ✗ "+fmt.Sprintf(format, a...)))
}

// Info reports neutral progress detail
func (p *Printer) Info(format string, a ...interface{}) {
	fmt.Fprintln(p.out, p.styles.Subtle.Render("    "+fmt.Sprintf(format, a...)))
}

// Banner prints the final success banner
func (p *Printer) Banner(text string) {
	fmt.Fprintln(p.out, p.styles.Banner.Render(text))
}

// Plain prints unstyled text, used to echo the credential report
func (p *Printer) Plain(text string) {
	fmt.Fprint(p.out, text)
}
