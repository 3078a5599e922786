// Package config assembles the query configuration from MODULE_QUERY_*
// environment variables, with optional overrides from an environment file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/api/constants"
	utillog "github.com/harvardinformatics/module-query/pkg/util/log"
)

var log = utillog.StderrLog

// FromEnvironment builds a Config from the MODULE_QUERY_* environment
// variables, falling back to the built-in defaults. The password has no
// default.
func FromEnvironment() *api.Config {
	return &api.Config{
		Host:     envOrDefault(constants.HostEnv, constants.DefaultHost),
		Database: envOrDefault(constants.DatabaseEnv, constants.DefaultDatabase),
		User:     envOrDefault(constants.UserEnv, constants.DefaultUser),
		Password: os.Getenv(constants.PasswordEnv),
	}
}

// LoadEnvironmentFile reads MODULE_QUERY_* variables from a dotenv style
// file and applies them on top of the config. Variables the tools do not
// consume are ignored.
func LoadEnvironmentFile(cfg *api.Config, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("unable to read environment file %q: %w", path, err)
	}
	for name, value := range vars {
		switch name {
		case constants.HostEnv:
			cfg.Host = value
		case constants.DatabaseEnv:
			cfg.Database = value
		case constants.UserEnv:
			cfg.User = value
		case constants.PasswordEnv:
			cfg.Password = value
		default:
			log.V(2).Infof("Ignoring variable %q from environment file %q", name, path)
		}
	}
	return nil
}

// DefaultFlavors returns the flavor list from FASRCSW_FLAVORS, or the
// built-in list when the variable is not set.
func DefaultFlavors() string {
	if flavors := os.Getenv(constants.FlavorsEnv); len(flavors) > 0 {
		return flavors
	}
	return constants.DefaultFlavors
}

func envOrDefault(name, defaultValue string) string {
	if value := os.Getenv(name); len(value) > 0 {
		return value
	}
	return defaultValue
}
