// Package activation audits the activation column of the build table by
// running each stored activation command through the module system.
package activation

import (
	"fmt"
	"io"
	"os"

	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/db"
	mqerr "github.com/harvardinformatics/module-query/pkg/errors"
	"github.com/harvardinformatics/module-query/pkg/module"
	"github.com/harvardinformatics/module-query/pkg/util/interrupt"
	utillog "github.com/harvardinformatics/module-query/pkg/util/log"
)

var log = utillog.StderrLog

// Checker runs activation commands and reports whether each one works.
type Checker struct {
	Modules module.Interface
	Out     io.Writer

	// Verbose streams the module command output instead of discarding it.
	Verbose bool
}

// New creates a Checker writing to out.
func New(out io.Writer, verbose bool) *Checker {
	return &Checker{
		Modules: module.New(),
		Out:     out,
		Verbose: verbose,
	}
}

// Audit fetches the activations matching search from the database and runs
// each one through Check. A search that matches no builds is an error so the
// caller can report it with the no-match exit code.
func (c *Checker) Audit(client db.Client, search string, flavors []string) error {
	builds, err := client.FetchActivations(search, flavors)
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		return mqerr.NewNoMatchError(search, flavors)
	}
	return c.Check(builds)
}

// Check attempts every activation in turn, printing Success or Fail for
// each, and finishes with a module purge so the session is left clean. An
// interrupt during the loop still purges, and the process exits 0 the way
// an interrupted interactive audit is expected to.
func (c *Checker) Check(builds []api.Activation) error {
	handler := interrupt.New(func(os.Signal) {
		os.Exit(0)
	}, c.purge)
	return handler.Run(func() error {
		for _, build := range builds {
			fmt.Fprintf(c.Out, "Attempting %s for build %s... ", build.Activation, build.Name)
			result := "Fail"
			if err := c.Modules.Activate(build.Activation, !c.Verbose); err == nil {
				result = "Success"
			} else {
				log.V(2).Infof("Activation %q failed: %v", build.Activation, err)
			}
			fmt.Fprintf(c.Out, "%s\n", result)
		}
		return nil
	})
}

func (c *Checker) purge() {
	if err := c.Modules.Purge(); err != nil {
		log.V(1).Infof("Final module purge failed: %v", err)
	}
}
