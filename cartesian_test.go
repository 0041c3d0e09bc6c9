package goczml_test

import (
	"testing"

	goczml "github.com/reoring/goczml"
)

func TestNewCartesian3_AcceptsTriple(t *testing.T) {
	c, err := goczml.NewCartesian3([]float64{0, 1, 0})
	if err != nil {
		t.Fatalf("expected triple to be accepted, got %v", err)
	}
	want := "[\n    0,\n    1,\n    0\n]"
	if got := c.String(); got != want {
		t.Fatalf("expected fragment %q, got %q", want, got)
	}
}

func TestNewCartesian3_AcceptsTimeTaggedQuadruples(t *testing.T) {
	c, err := goczml.NewCartesian3([]float64{0, 15000000, 30000000, 10000000})
	if err != nil {
		t.Fatalf("expected one quadruple to be accepted, got %v", err)
	}
	// Large integral components keep their plain decimal text.
	want := "[\n    0,\n    15000000,\n    30000000,\n    10000000\n]"
	if got := c.String(); got != want {
		t.Fatalf("expected fragment %q, got %q", want, got)
	}
}

func TestNewCartesian3_RejectsBadLength(t *testing.T) {
	for _, values := range [][]float64{{1, 2}, {1, 2, 3, 4, 5}} {
		_, err := goczml.NewCartesian3(values)
		if err == nil {
			t.Fatalf("expected error for %d values, got nil", len(values))
		}
		if err.Error() != "Input values must have either 3 or N * 4 values, where N is the number of time-tagged samples." {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		iss, _ := goczml.AsIssues(err)
		if iss[0].Code != goczml.CodeInvalidLength {
			t.Fatalf("expected code %q, got %q", goczml.CodeInvalidLength, iss[0].Code)
		}
	}
}

func TestNewCartesian3_AcceptsMultipleSamples(t *testing.T) {
	values := []float64{0, 1, 2, 3, 60, 4, 5, 6}
	c, err := goczml.NewCartesian3(values)
	if err != nil {
		t.Fatalf("expected two quadruples to be accepted, got %v", err)
	}
	if len(c.Values()) != 8 {
		t.Fatalf("expected 8 values back, got %d", len(c.Values()))
	}
}

func TestNewCartesian3_ComponentsUnbounded(t *testing.T) {
	if _, err := goczml.NewCartesian3([]float64{-1e12, 3.14159, 2.5e8}); err != nil {
		t.Fatalf("expected unbounded components to be accepted, got %v", err)
	}
}

func TestCartesian3_ZeroValue(t *testing.T) {
	var zero goczml.Cartesian3
	if !zero.IsZero() {
		t.Fatalf("expected zero value to report IsZero")
	}
	if got := zero.String(); got != "[]" {
		t.Fatalf("expected zero value to render [], got %s", got)
	}

	c, err := goczml.NewCartesian3(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsZero() {
		t.Fatalf("expected constructed empty list to be non-zero")
	}
}

func TestNewCartesian3_AcceptsEmpty(t *testing.T) {
	c, err := goczml.NewCartesian3(nil)
	if err != nil {
		t.Fatalf("expected empty input to be accepted, got %v", err)
	}
	if got := c.String(); got != "[]" {
		t.Fatalf("expected empty list to render [], got %s", got)
	}
}
