package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/api/constants"
	"github.com/harvardinformatics/module-query/pkg/api/validation"
	cmdutil "github.com/harvardinformatics/module-query/pkg/cmd"
	"github.com/harvardinformatics/module-query/pkg/config"
	"github.com/harvardinformatics/module-query/pkg/db"
	mqerr "github.com/harvardinformatics/module-query/pkg/errors"
	"github.com/harvardinformatics/module-query/pkg/report"
	"github.com/harvardinformatics/module-query/pkg/util"
	"github.com/harvardinformatics/module-query/pkg/util/interrupt"
	utillog "github.com/harvardinformatics/module-query/pkg/util/log"
	"github.com/harvardinformatics/module-query/pkg/version"
)

var log = utillog.StderrLog

func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version",
		Long:  "Display version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("module-query %v\n", version.Get())
		},
	}
}

func newCmdGenBashCompletion(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "genbashcompletion",
		Short: "Generate Bash completion for the module-query command",
		Long:  "Generate Bash completion for the module-query command into standard output",
		Run: func(cmd *cobra.Command, args []string) {
			root.GenBashCompletion(os.Stdout)
		},
	}
}

func newCmdQuery(cfg *api.Config) *cobra.Command {
	flavors := ""

	queryCmd := &cobra.Command{
		Use:   "module-query [flags] BUILD",
		Args:  cobra.ArbitraryArgs,
		Short: "Query the applications database",
		Long: "Module-query is a command line query tool for the applications database.\n\n" +
			"It works like the module spider command: a search matching a single build\n" +
			"prints the full detail, including the module load command; a search matching\n" +
			"several builds prints a consolidated report grouped by application.",
		Example: `
# Find out how to load samtools
$ module-query samtools

# Search a single build flavor
$ module-query samtools --flavors 'HeLmod CentOS 7'

# Search descriptions too
$ module-query "sequence alignment" --full-text
`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				cmd.Help()
				os.Exit(mqerr.DefaultErrorCode)
			}
			log.V(1).Infof("Running module-query version %q", version.Get())

			checkErr(completeConfig(cfg, flavors, args[0]))

			if cfg.Verbose > 0 {
				fmt.Println("Verbose mode on")
				fmt.Printf("Searching for %s\n", cfg.Search)
			}

			if errs := validation.ValidateQueryConfig(cfg); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
				}
				fmt.Println()
				cmd.Help()
				// exit 1 is reserved for a search with no matches
				os.Exit(mqerr.DefaultErrorCode)
			}

			// an interrupted interactive query is not a failure
			handler := interrupt.New(func(os.Signal) {
				os.Exit(0)
			})
			checkErr(handler.Run(func() error {
				return runQuery(cfg)
			}))
		},
	}

	cmdutil.AddCommonFlags(queryCmd, cfg, &flavors)
	queryCmd.Flags().CountVarP(&(cfg.Verbose), "verbose", "v", "Set verbosity level")
	queryCmd.Flags().BoolVar(&(cfg.FullText), "full-text", false, "Search all text, including description.")
	queryCmd.Flags().IntVar(&(cfg.DisplayWidth), "width", 0, "Override the detected terminal width")

	return queryCmd
}

// completeConfig fills the database coordinates from the environment and an
// optional environment file, and parses the flavor list.
func completeConfig(cfg *api.Config, flavors, search string) error {
	env := config.FromEnvironment()
	cfg.Host = env.Host
	cfg.Database = env.Database
	cfg.User = env.User
	cfg.Password = env.Password
	if len(cfg.EnvironmentFile) > 0 {
		if err := config.LoadEnvironmentFile(cfg, cfg.EnvironmentFile); err != nil {
			return err
		}
	}
	cfg.Flavors = cmdutil.ParseFlavors(flavors)
	cfg.Search = search
	return nil
}

func runQuery(cfg *api.Config) error {
	client, err := db.New(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	records, err := client.FetchBuildReports(cfg.Search, cfg.Flavors, cfg.FullText)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return mqerr.NewNoMatchError(cfg.Search, cfg.Flavors)
	}

	width := cfg.DisplayWidth
	if width == 0 {
		width = util.TerminalWidth()
	}
	reporter := report.New(os.Stdout, width)

	// the full monty for a single match
	if len(records) == 1 {
		return reporter.Detail(records[0])
	}
	return reporter.Consolidated(records)
}

// setupLog makes --loglevel reflect in klog's -v flag
func setupLog(flags *pflag.FlagSet) {
	klog.InitFlags(flag.CommandLine)

	from := flag.CommandLine
	if fflag := from.Lookup("v"); fflag != nil {
		level := fflag.Value.(*klog.Level)
		loglevelPtr := (*int32)(level)
		flags.Int32Var(loglevelPtr, "loglevel", 0, "Set the level of log output (0-5)")
	}

	flag.CommandLine.Set("logtostderr", "true")
	if len(os.Getenv(constants.DebugEnv)) > 0 {
		flag.CommandLine.Set("v", "3")
	}
}

func checkErr(err error) {
	if err == nil {
		return
	}
	if e, ok := err.(mqerr.Error); ok {
		if e.ErrorCode == mqerr.NoMatchErrorCode {
			fmt.Fprintln(os.Stderr, e.Message)
			os.Exit(e.ErrorCode)
		}
		log.Errorf("An error occurred: %v", e)
		log.Errorf("Suggested solution: %v", e.Suggestion)
		if e.Details != nil {
			log.V(1).Infof("Details: %v", e.Details)
		}
		log.Error("If the problem persists contact rchelp, " +
			"providing a log from your query using --loglevel=3")
		os.Exit(e.ErrorCode)
	}
	log.Errorf("An error occurred: %v", err)
	os.Exit(mqerr.DefaultErrorCode)
}

func main() {
	cfg := &api.Config{}
	queryCmd := newCmdQuery(cfg)
	queryCmd.AddCommand(newCmdVersion())
	queryCmd.AddCommand(newCmdGenBashCompletion(queryCmd))
	setupLog(queryCmd.PersistentFlags())

	// Without this fake command line parse, klog complains its flags have
	// not been interpreted
	flag.CommandLine.Parse([]string{})

	err := queryCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
