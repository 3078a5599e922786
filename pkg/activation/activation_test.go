package activation

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/harvardinformatics/module-query/pkg/api"
	mqerr "github.com/harvardinformatics/module-query/pkg/errors"
	"github.com/harvardinformatics/module-query/pkg/test"
)

func TestCheck(t *testing.T) {
	modules := &test.FakeModules{
		FailingActivations: map[string]error{
			"module load broken/1.0": errors.New("exit status 1"),
		},
	}
	out := &bytes.Buffer{}
	checker := &Checker{Modules: modules, Out: out}

	builds := []api.Activation{
		{Name: "gcc/9.3.0-fasrc01", Activation: "module load gcc/9.3.0-fasrc01"},
		{Name: "broken/1.0", Activation: "module load broken/1.0"},
	}
	if err := checker.Check(builds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Attempting module load gcc/9.3.0-fasrc01 for build gcc/9.3.0-fasrc01... Success\n" +
		"Attempting module load broken/1.0 for build broken/1.0... Fail\n"
	if out.String() != expected {
		t.Errorf("expected output %q, got %q", expected, out.String())
	}

	if modules.Purges != 1 {
		t.Errorf("expected a final purge, got %d purges", modules.Purges)
	}
	if len(modules.Activated) != 2 {
		t.Errorf("expected 2 activations, got %d", len(modules.Activated))
	}
}

func TestCheckQuiet(t *testing.T) {
	modules := &test.FakeModules{}
	checker := &Checker{Modules: modules, Out: &bytes.Buffer{}}

	if err := checker.Check([]api.Activation{{Name: "gcc", Activation: "module load gcc"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules.Quiet) != 1 || !modules.Quiet[0] {
		t.Error("expected activation to run quietly by default")
	}
}

func TestCheckVerbose(t *testing.T) {
	modules := &test.FakeModules{}
	checker := &Checker{Modules: modules, Out: &bytes.Buffer{}, Verbose: true}

	if err := checker.Check([]api.Activation{{Name: "gcc", Activation: "module load gcc"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules.Quiet) != 1 || modules.Quiet[0] {
		t.Error("expected verbose activation to stream output")
	}
}

func TestAudit(t *testing.T) {
	database := &test.FakeDatabase{
		Activations: []api.Activation{
			{Name: "gcc/9.3.0-fasrc01", Activation: "module load gcc/9.3.0-fasrc01"},
		},
	}
	modules := &test.FakeModules{}
	out := &bytes.Buffer{}
	checker := &Checker{Modules: modules, Out: out}

	if err := checker.Audit(database, "gcc", []string{"HeLmod CentOS 7"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if database.Search != "gcc" {
		t.Errorf("expected the search term to reach the database, got %q", database.Search)
	}
	if !reflect.DeepEqual(database.Flavors, []string{"HeLmod CentOS 7"}) {
		t.Errorf("expected the flavors to reach the database, got %v", database.Flavors)
	}
	if !strings.Contains(out.String(), "Attempting module load gcc/9.3.0-fasrc01 for build gcc/9.3.0-fasrc01... Success") {
		t.Errorf("unexpected output %q", out.String())
	}
	if modules.Purges != 1 {
		t.Errorf("expected a final purge, got %d purges", modules.Purges)
	}
}

func TestAuditNoMatch(t *testing.T) {
	database := &test.FakeDatabase{}
	checker := &Checker{Modules: &test.FakeModules{}, Out: &bytes.Buffer{}}

	err := checker.Audit(database, "nosuchmodule", []string{"Bioconda"})
	if err == nil {
		t.Fatal("expected an error for a search with no matches")
	}
	e, ok := err.(mqerr.Error)
	if !ok {
		t.Fatalf("expected an mqerr.Error, got %T", err)
	}
	if e.ErrorCode != mqerr.NoMatchErrorCode {
		t.Errorf("expected error code %d, got %d", mqerr.NoMatchErrorCode, e.ErrorCode)
	}
	if !strings.Contains(e.Message, "nosuchmodule") {
		t.Errorf("expected message to name the search term, got %q", e.Message)
	}
}

func TestAuditFetchError(t *testing.T) {
	fetchErr := errors.New("connection reset")
	database := &test.FakeDatabase{ActivationsError: fetchErr}
	checker := &Checker{Modules: &test.FakeModules{}, Out: &bytes.Buffer{}}

	if err := checker.Audit(database, "gcc", nil); err != fetchErr {
		t.Errorf("expected the fetch error back, got %v", err)
	}
}

func TestCheckEmpty(t *testing.T) {
	modules := &test.FakeModules{}
	checker := &Checker{Modules: modules, Out: &bytes.Buffer{}}

	if err := checker.Check(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modules.Purges != 1 {
		t.Errorf("expected a final purge even with no builds, got %d", modules.Purges)
	}
}
