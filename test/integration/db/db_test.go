//go:build integration
// +build integration

package db

import (
	"os"
	"testing"

	"github.com/harvardinformatics/module-query/pkg/api/constants"
	"github.com/harvardinformatics/module-query/pkg/config"
	"github.com/harvardinformatics/module-query/pkg/db"
)

// These tests need a running applications database seeded with
// hack/database.sql; the compose environment provides one. They are skipped
// unless MODULE_QUERY_PASSWD is set.

func client(t *testing.T) db.Client {
	t.Helper()
	if os.Getenv(constants.PasswordEnv) == "" {
		t.Skipf("skipping database integration tests, %s is not set", constants.PasswordEnv)
	}
	cfg := config.FromEnvironment()
	c, err := db.New(cfg)
	if err != nil {
		t.Fatalf("unable to connect to %s: %v", cfg.Host, err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestFetchBuildReports(t *testing.T) {
	c := client(t)

	records, err := c.FetchBuildReports("samtools", []string{"HeLmod CentOS 7"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 samtools build reports, got %d", len(records))
	}
	if records[0].BuildOrder > records[1].BuildOrder {
		t.Errorf("expected records ordered by build order, got %d before %d", records[0].BuildOrder, records[1].BuildOrder)
	}
}

func TestFetchBuildReportsFullText(t *testing.T) {
	c := client(t)

	records, err := c.FetchBuildReports("reference genome", []string{"HeLmod CentOS 7"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 full text match, got %d", len(records))
	}
	if records[0].AppName != "bwa" {
		t.Errorf("expected a bwa record, got %+v", records[0])
	}
}

func TestFetchBuildReportsNoMatch(t *testing.T) {
	c := client(t)

	records, err := c.FetchBuildReports("no-such-build", []string{"HeLmod CentOS 7"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestFetchActivations(t *testing.T) {
	c := client(t)

	activations, err := c.FetchActivations("samtools", []string{"HeLmod CentOS 7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activations) != 2 {
		t.Fatalf("expected 2 activations, got %d", len(activations))
	}
	for _, a := range activations {
		if a.Activation == "" {
			t.Errorf("expected an activation command for %s", a.Name)
		}
	}
}
