package test

import (
	"github.com/harvardinformatics/module-query/pkg/api"
)

// FakeDatabase provides a fake applications database client.
type FakeDatabase struct {
	Reports      []api.BuildReportRecord
	ReportsError error

	Activations      []api.Activation
	ActivationsError error

	Search   string
	Flavors  []string
	FullText bool

	Closed bool
}

// FetchBuildReports returns the configured build report records.
func (f *FakeDatabase) FetchBuildReports(search string, flavors []string, fullText bool) ([]api.BuildReportRecord, error) {
	f.Search = search
	f.Flavors = flavors
	f.FullText = fullText
	return f.Reports, f.ReportsError
}

// FetchActivations returns the configured activations.
func (f *FakeDatabase) FetchActivations(search string, flavors []string) ([]api.Activation, error) {
	f.Search = search
	f.Flavors = flavors
	return f.Activations, f.ActivationsError
}

// Close records that the client was closed.
func (f *FakeDatabase) Close() error {
	f.Closed = true
	return nil
}
