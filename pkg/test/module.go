package test

import (
	"io"

	"github.com/harvardinformatics/module-query/pkg/module"
)

// Command records one command passed to the FakeCommandRunner.
type Command struct {
	Name   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// FakeCommandRunner provides a fake command runner that records the
// commands it is asked to run.
type FakeCommandRunner struct {
	Commands []Command
	Err      error
}

// RunWithOptions records the command and returns the configured error.
func (f *FakeCommandRunner) RunWithOptions(opts module.CommandOpts, name string, arg ...string) error {
	f.Commands = append(f.Commands, Command{
		Name:   name,
		Args:   arg,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	return f.Err
}

// FakeModules provides a fake module system. Activations listed in
// FailingActivations report failure.
type FakeModules struct {
	Purges             int
	Activated          []string
	Quiet              []bool
	FailingActivations map[string]error
}

// Purge records the purge.
func (f *FakeModules) Purge() error {
	f.Purges++
	return nil
}

// Activate records the activation and fails when the activation is listed
// as failing.
func (f *FakeModules) Activate(activation string, quiet bool) error {
	f.Activated = append(f.Activated, activation)
	f.Quiet = append(f.Quiet, quiet)
	if err, ok := f.FailingActivations[activation]; ok {
		return err
	}
	return nil
}
