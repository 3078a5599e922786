package cmd

import (
	"regexp"

	"github.com/spf13/cobra"

	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/config"
)

// flavorSeparator splits a comma separated flavor list, tolerating spaces
// around the commas.
var flavorSeparator = regexp.MustCompile(`\s*,\s*`)

// AddCommonFlags adds the flags shared by the module-query and
// check-activation commands.
func AddCommonFlags(c *cobra.Command, cfg *api.Config, flavors *string) {
	c.Flags().StringVar(flavors, "flavors", config.DefaultFlavors(),
		"Comma separated list of application flavors")
	c.Flags().StringVarP(&(cfg.EnvironmentFile), "env-file", "E", "",
		"Specify the path to a file with MODULE_QUERY_* variables")
}

// ParseFlavors splits a comma separated flavor list into flavor names.
func ParseFlavors(flavors string) []string {
	if len(flavors) == 0 {
		return nil
	}
	return flavorSeparator.Split(flavors, -1)
}
