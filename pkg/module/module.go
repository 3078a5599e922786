// Package module wraps the cluster's `module` command (Lmod). Activation
// commands come out of the database as shell lines, so they run through a
// shell rather than being parsed here.
package module

import (
	"io"
	"os"
	"os/exec"

	utillog "github.com/harvardinformatics/module-query/pkg/util/log"
)

var log = utillog.StderrLog

// Interface is what the activation checker needs from the module system.
type Interface interface {
	// Purge unloads all loaded modules.
	Purge() error

	// Activate purges and then runs an activation command sequence. With
	// quiet set, the command's output is discarded.
	Activate(activation string, quiet bool) error
}

// CommandOpts holds the streams a command writes to.
type CommandOpts struct {
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner runs an external command.
type CommandRunner interface {
	RunWithOptions(opts CommandOpts, name string, arg ...string) error
}

// NewCommandRunner returns a CommandRunner backed by os/exec.
func NewCommandRunner() CommandRunner {
	return &runner{}
}

type runner struct{}

func (r *runner) RunWithOptions(opts CommandOpts, name string, arg ...string) error {
	cmd := exec.Command(name, arg...)
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}
	return cmd.Run()
}

// Modules drives the module command through a CommandRunner.
type Modules struct {
	runner CommandRunner
}

// New creates a Modules wrapper using the default command runner.
func New() *Modules {
	return &Modules{runner: NewCommandRunner()}
}

// NewWithRunner creates a Modules wrapper with the given runner. Used by
// tests.
func NewWithRunner(runner CommandRunner) *Modules {
	return &Modules{runner: runner}
}

// Purge unloads all loaded modules.
func (m *Modules) Purge() error {
	return m.run("module purge", true)
}

// Activate purges loaded modules and runs the activation command sequence.
func (m *Modules) Activate(activation string, quiet bool) error {
	return m.run("module purge && "+activation, quiet)
}

func (m *Modules) run(script string, quiet bool) error {
	log.V(3).Infof("Executing shell command '%s'", script)
	opts := CommandOpts{}
	if !quiet {
		opts.Stdout = os.Stdout
		opts.Stderr = os.Stderr
	}
	return m.runner.RunWithOptions(opts, "sh", "-c", script)
}
