// Package errors provides errors with user friendly messages and suggested
// solutions for the query tools.
package errors

import (
	"fmt"
	"strings"
)

// Common error codes reported on exit. 1 is reserved for a search with no
// matching builds; everything else that goes wrong is a plain failure.
const (
	NoMatchErrorCode     = 1
	ConnectionErrorCode  = 2
	QueryErrorCode       = 2
	ReportParseErrorCode = 2
	DefaultErrorCode     = 2
)

// Error is the error type the command line tools report to users. It carries
// a message for the user, the underlying details, a suggested solution and
// the process exit code.
type Error struct {
	Message    string
	Details    error
	ErrorCode  int
	Suggestion string
}

// Error returns a string for the user describing the failure.
func (e Error) Error() string {
	return e.Message
}

// NewConnectionError returns an error for a database connection that could
// not be established after retries.
func NewConnectionError(host string, err error) error {
	return Error{
		Message:    fmt.Sprintf("Unable to connect to %s", host),
		Details:    err,
		ErrorCode:  ConnectionErrorCode,
		Suggestion: "check that MODULE_QUERY_HOST and MODULE_QUERY_PASSWD are set correctly and that the database is reachable from this host",
	}
}

// NewQueryError returns an error for a query that the database rejected.
func NewQueryError(err error) error {
	return Error{
		Message:    fmt.Sprintf("Database query failed: %v", err),
		Details:    err,
		ErrorCode:  QueryErrorCode,
		Suggestion: "rerun with --loglevel=3 to see the query that failed",
	}
}

// NewReportParseError returns an error for a build_report row whose
// report_text column could not be decoded.
func NewReportParseError(buildName string, err error) error {
	return Error{
		Message:    "Unable to parse the build report for this module.  Please report to rchelp.",
		Details:    fmt.Errorf("build %s: %w", buildName, err),
		ErrorCode:  ReportParseErrorCode,
		Suggestion: fmt.Sprintf("the report_text record for build %q holds invalid JSON and needs to be fixed in the database", buildName),
	}
}

// NewNoMatchError returns an error for a search that matched no builds.
func NewNoMatchError(search string, flavors []string) error {
	return Error{
		Message:    fmt.Sprintf("\nUnable to find a match for '%s' \nsearch was limited to build flavors %s\n", search, strings.Join(flavors, ", ")),
		ErrorCode:  NoMatchErrorCode,
		Suggestion: "try a shorter search term or widen the list given to --flavors",
	}
}
