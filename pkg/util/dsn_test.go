package util

import (
	"testing"
)

func TestRedactDSNPassword(t *testing.T) {

	inputs := []string{
		"modulequery:secret@tcp(rcdb-internal:3306)/p3",
		"modulequery:@tcp(rcdb-internal:3306)/p3",
		"tcp(rcdb-internal:3306)/p3",
	}

	expected := []string{
		"modulequery:xxxxx@tcp(rcdb-internal:3306)/p3",
		"modulequery:xxxxx@tcp(rcdb-internal:3306)/p3",
		"tcp(rcdb-internal:3306)/p3",
	}
	for i := range inputs {
		result := RedactDSNPassword(inputs[i])
		if result != expected[i] {
			t.Errorf("expected %s to be redacted to %s, but got %s", inputs[i], expected[i], result)
		}
	}
}
