// Package validation checks a query configuration for missing or invalid
// fields before a database connection is attempted.
package validation

import (
	"fmt"

	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/api/constants"
)

// ValidateQueryConfig returns the problems with a module-query config. On
// top of the common checks a query needs a non-empty search term.
func ValidateQueryConfig(config *api.Config) []Error {
	errs := []Error{}
	if len(config.Search) == 0 {
		errs = append(errs, NewError("search", "a build name search term is required"))
	}
	return append(errs, ValidateConfig(config)...)
}

// ValidateConfig returns a list of problems with the config, one per field.
// An empty list means the config is usable. An empty search term is
// tolerated; check-activation uses it to audit every build.
func ValidateConfig(config *api.Config) []Error {
	errs := []Error{}
	if len(config.Flavors) == 0 {
		errs = append(errs, NewError("flavors", "at least one build flavor is required"))
	}
	if len(config.Password) == 0 {
		errs = append(errs, NewError("password", fmt.Sprintf("a database password is required; set %s", constants.PasswordEnv)))
	}
	if len(config.Host) == 0 {
		errs = append(errs, NewError("host", "a database host is required"))
	}
	return errs
}

// Error describes a single validation failure.
type Error struct {
	Field   string
	Message string
}

// NewError creates a validation error for the named config field.
func NewError(field, message string) Error {
	return Error{Field: field, Message: message}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
