package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Config contains essential fields for performing a query against the
// applications database.
type Config struct {
	// Host is the database host name.
	Host string

	// Database is the name of the applications database.
	Database string

	// User is the database user name.
	User string

	// Password is the database password.
	Password string

	// Flavors is the list of build stack names the search is limited to.
	Flavors []string

	// Search is the (possibly partial) build name to search for.
	Search string

	// FullText searches the whole report text instead of the build name.
	FullText bool

	// Verbose increases the amount of output produced.
	Verbose int

	// EnvironmentFile is a path to a file with MODULE_QUERY_* variables.
	EnvironmentFile string

	// DisplayWidth overrides the detected terminal width when non-zero.
	DisplayWidth int
}

// BuildReportRecord is a single row of the build_report table. ReportText
// holds the raw JSON document describing the build.
type BuildReportRecord struct {
	AppName        string
	BuildName      string
	BuildStackName string
	BuildOrder     int
	ReportText     string
}

// BuildReport is the parsed form of a build_report row's report_text column.
type BuildReport struct {
	Title                string   `json:"title"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Activation           string   `json:"activation"`
	BuildStack           string   `json:"build_stack"`
	BuildStackActivation string   `json:"build_stack_activation"`
	RunDependencies      []string `json:"run_dependencies"`
	Comments             string   `json:"comments"`
	PreferredBuild       Bool     `json:"preferred_build"`
}

// ParseBuildReport decodes the report_text JSON of a build_report row.
func ParseBuildReport(record BuildReportRecord) (*BuildReport, error) {
	report := &BuildReport{}
	if err := json.Unmarshal([]byte(record.ReportText), report); err != nil {
		return nil, err
	}
	return report, nil
}

// Activation is one row of the build/build_stack join: a build name and the
// module command sequence that activates it.
type Activation struct {
	Name       string
	Activation string
}

// Bool is a boolean that tolerates the 0/1 and "true"/"false" encodings both
// found in report_text documents, depending on the loader that wrote them.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(bytes.Trim(data, `"`)) {
	case "true", "1":
		*b = true
	case "false", "0", "null", "":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %q", data)
	}
	return nil
}
