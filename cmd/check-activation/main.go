package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/harvardinformatics/module-query/pkg/activation"
	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/api/constants"
	"github.com/harvardinformatics/module-query/pkg/api/validation"
	cmdutil "github.com/harvardinformatics/module-query/pkg/cmd"
	"github.com/harvardinformatics/module-query/pkg/config"
	"github.com/harvardinformatics/module-query/pkg/db"
	mqerr "github.com/harvardinformatics/module-query/pkg/errors"
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
			fmt.Printf("check-activation %v\n", version.Get())
		},
	}
}

func newCmdCheck(cfg *api.Config) *cobra.Command {
	flavors := ""
	verbose := false

	checkCmd := &cobra.Command{
		Use:   "check-activation [flags] SEARCH",
		Args:  cobra.ArbitraryArgs,
		Short: "Verify stored build activation commands",
		Long: "Check-activation retrieves the activation command for builds matching the\n" +
			"search text and ensures each one still works by running it through the\n" +
			"module command. Pass an empty search to audit every build of the given\n" +
			"flavors.",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				cmd.Help()
				os.Exit(mqerr.DefaultErrorCode)
			}

			checkErr(completeConfig(cfg, flavors, args[0]))

			if errs := validation.ValidateConfig(cfg); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
				}
				fmt.Println()
				cmd.Help()
				// exit 1 is reserved for a search with no matches
				os.Exit(mqerr.DefaultErrorCode)
			}

			checkErr(runCheck(cfg, verbose))
		},
	}

	cmdutil.AddCommonFlags(checkCmd, cfg, &flavors)
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the output of the activation commands")

	return checkCmd
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

func runCheck(cfg *api.Config, verbose bool) error {
	client, err := db.New(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return activation.New(os.Stdout, verbose).Audit(client, cfg.Search, cfg.Flavors)
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
		os.Exit(e.ErrorCode)
	}
	log.Errorf("An error occurred: %v", err)
	os.Exit(mqerr.DefaultErrorCode)
}

func main() {
	cfg := &api.Config{}
	checkCmd := newCmdCheck(cfg)
	checkCmd.AddCommand(newCmdVersion())
	setupLog(checkCmd.PersistentFlags())

	// Without this fake command line parse, klog complains its flags have
	// not been interpreted
	flag.CommandLine.Parse([]string{})

	err := checkCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
