/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package install drives the provisioning pipeline: preflight, engine
// bootstrap, credential provisioning, manifest rendering, stack launch,
// readiness gate, network exposure and credential report. Stages run
// strictly in order and every failure is fatal; only the firewall stage
// may be skipped when its precondition is absent.
package install

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/orien/ipamup/internal/engine"
	"github.com/orien/ipamup/internal/firewall"
	"github.com/orien/ipamup/internal/model"
	"github.com/orien/ipamup/internal/prompt"
	"github.com/orien/ipamup/internal/readiness"
	"github.com/orien/ipamup/internal/render"
	"github.com/orien/ipamup/internal/report"
	"github.com/orien/ipamup/internal/secrets"
	"github.com/orien/ipamup/internal/ui"
)

// ErrPrivilege is returned by preflight when the process lacks root
var ErrPrivilege = errors.New("root privileges are required to install the stack")

// Options carries the resolved installer configuration
type Options struct {
	InstallDir string
	HTTPPort   int
	Timezone   string

	DatabaseImage string
	WebImage      string
	CronImage     string

	NonInteractive bool
	SkipFirewall   bool

	ProbeInterval time.Duration
	ProbeAttempts int
}

// Result reports what a successful installation produced
type Result struct {
	Credentials model.Credentials
	Artifacts   render.Artifacts
	ReportPath  string
	Report      string
}

// Runner defines the interface for running the installation pipeline
type Runner interface {
	Run(ctx context.Context, opts Options) (*Result, error)
}

// StackInstaller implements Runner against a container engine and host
// firewall
type StackInstaller struct {
	engine   engine.Engine
	firewall firewall.Manager
	renderer *render.Renderer
	printer  *ui.Printer

	// injectable for tests
	prompter       prompt.Prompter
	proberFactory  func(port int) readiness.Prober
	checkPrivilege func() error
	now            func() time.Time
}

// NewStackInstaller creates an installer over the given collaborators
func NewStackInstaller(eng engine.Engine, fw firewall.Manager, printer *ui.Printer) *StackInstaller {
	return &StackInstaller{
		engine:   eng,
		firewall: fw,
		renderer: render.NewRenderer(),
		printer:  printer,
		prompter: prompt.GetDefaultPrompter(),
		proberFactory: func(port int) readiness.Prober {
			return readiness.NewHTTPProber(fmt.Sprintf("http://127.0.0.1:%d/", port))
		},
		checkPrivilege: requireRoot,
		now:            time.Now,
	}
}

// NewDefaultInstaller creates an installer wired to the real docker CLI
// and firewalld
func NewDefaultInstaller(printer *ui.Printer) *StackInstaller {
	runner := engine.NewExecRunner()
	return NewStackInstaller(
		engine.NewDockerComposeEngine(runner),
		firewall.NewFirewalldManager(runner),
		printer,
	)
}

// SetPrompter allows injecting a custom prompter (for testing)
func (i *StackInstaller) SetPrompter(p prompt.Prompter) {
	i.prompter = p
}

// SetProberFactory allows injecting a custom prober (for testing)
func (i *StackInstaller) SetProberFactory(f func(port int) readiness.Prober) {
	i.proberFactory = f
}

// SetPrivilegeCheck allows replacing the root check (for testing)
func (i *StackInstaller) SetPrivilegeCheck(check func() error) {
	i.checkPrivilege = check
}

// SetClock allows injecting a fixed clock (for testing)
func (i *StackInstaller) SetClock(now func() time.Time) {
	i.now = now
	i.renderer.SetClock(now)
}

// state is the mutable pipeline state threaded through the stages
type state struct {
	opts        Options
	credentials model.Credentials
	inputs      model.StackInputs
	artifacts   render.Artifacts
	reportPath  string
	report      string
}

// stage is one named step of the pipeline
type stage struct {
	name string
	run  func(ctx context.Context, st *state) error
}

// Run executes the pipeline. The first stage error halts everything;
// containers already started stay up for the operator to inspect or reset
// with engine-native commands.
func (i *StackInstaller) Run(ctx context.Context, opts Options) (*Result, error) {
	st := &state{opts: opts}

	stages := []stage{
		{"Preflight", i.preflight},
		{"Container engine", i.ensureEngine},
		{"Credentials", i.provisionCredentials},
		{"Stack manifest", i.renderManifest},
		{"Stack launch", i.launchStack},
		{"Readiness", i.awaitReady},
		{"Firewall", i.exposeNetwork},
		{"Credential report", i.writeReport},
	}

	for _, s := range stages {
		i.printer.Stage(s.name)
		if err := s.run(ctx, st); err != nil {
			i.printer.Failure("%v", err)
			return nil, fmt.Errorf("%s failed: %w", s.name, err)
		}
	}

	return &Result{
		Credentials: st.credentials,
		Artifacts:   st.artifacts,
		ReportPath:  st.reportPath,
		Report:      st.report,
	}, nil
}

func (i *StackInstaller) preflight(ctx context.Context, st *state) error {
	if err := i.checkPrivilege(); err != nil {
		return err
	}
	i.printer.Success("running with root privileges")
	return nil
}

func (i *StackInstaller) ensureEngine(ctx context.Context, st *state) error {
	if err := i.engine.EnsureInstalled(ctx); err != nil {
		return err
	}
	i.printer.Success("container engine available")
	return nil
}

func (i *StackInstaller) provisionCredentials(ctx context.Context, st *state) error {
	provisioner := secrets.NewProvisioner(i.prompter, st.opts.NonInteractive)
	credentials, err := provisioner.Provision()
	if err != nil {
		return err
	}
	st.credentials = credentials

	for _, secret := range credentials.All() {
		if secret.Source == model.SecretSourceGenerated {
			i.printer.Success("%s: generated", secret.Name)
		} else {
			i.printer.Success("%s: supplied", secret.Name)
		}
	}
	return nil
}

func (i *StackInstaller) renderManifest(ctx context.Context, st *state) error {
	st.inputs = model.StackInputs{
		Credentials:   st.credentials,
		DatabaseName:  model.DatabaseName,
		DatabaseUser:  model.DatabaseUser,
		DatabaseHost:  model.DatabaseServiceName,
		DatabaseImage: st.opts.DatabaseImage,
		WebImage:      st.opts.WebImage,
		CronImage:     st.opts.CronImage,
		HTTPPort:      st.opts.HTTPPort,
		Timezone:      st.opts.Timezone,
	}

	artifacts, err := i.renderer.WriteArtifacts(st.opts.InstallDir, st.inputs)
	if err != nil {
		return err
	}
	st.artifacts = artifacts

	i.printer.Success("wrote %s", artifacts.ManifestPath)
	i.printer.Success("wrote %s", artifacts.EnvironmentPath)
	return nil
}

func (i *StackInstaller) launchStack(ctx context.Context, st *state) error {
	i.printer.Info("pulling images")
	if err := i.engine.Pull(ctx, st.artifacts.ManifestPath); err != nil {
		return err
	}

	i.printer.Info("starting services")
	if err := i.engine.Up(ctx, st.artifacts.ManifestPath); err != nil {
		return err
	}

	i.printer.Success("stack started")
	return nil
}

func (i *StackInstaller) awaitReady(ctx context.Context, st *state) error {
	gate := readiness.NewGate(
		i.proberFactory(st.opts.HTTPPort),
		st.opts.ProbeInterval,
		st.opts.ProbeAttempts,
	)
	gate.OnAttempt = func(attempt int, err error) {
		i.printer.Info("attempt %d/%d: not ready yet", attempt, st.opts.ProbeAttempts)
	}

	if err := gate.Wait(ctx); err != nil {
		if errors.Is(err, readiness.ErrTimedOut) {
			return fmt.Errorf("%w (inspect the container logs with: docker compose -f %s logs)",
				err, st.artifacts.ManifestPath)
		}
		return err
	}

	i.printer.Success("stack is answering on port %d", st.opts.HTTPPort)
	return nil
}

func (i *StackInstaller) exposeNetwork(ctx context.Context, st *state) error {
	if st.opts.SkipFirewall {
		i.printer.Skip("firewall configuration disabled")
		return nil
	}
	if !i.firewall.Active(ctx) {
		i.printer.Skip("no managed firewall detected")
		return nil
	}

	if err := i.firewall.AllowHTTP(ctx, st.opts.HTTPPort); err != nil {
		return err
	}
	i.printer.Success("firewall allows HTTP on port %d", st.opts.HTTPPort)
	return nil
}

func (i *StackInstaller) writeReport(ctx context.Context, st *state) error {
	path, content, err := report.Write(report.Data{
		InstalledAt: i.now(),
		InstallDir:  st.opts.InstallDir,
		HTTPPort:    st.opts.HTTPPort,
		Credentials: st.credentials,
	})
	if err != nil {
		return err
	}

	st.reportPath = path
	st.report = content
	i.printer.Success("wrote %s", path)
	return nil
}

// requireRoot is the default privilege check
func requireRoot() error {
	if os.Geteuid() != 0 {
		return ErrPrivilege
	}
	return nil
}
