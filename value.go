package goczml

import (
	"fmt"
	"math"
)

// Value is a validated CZML value. String returns the canonical JSON
// fragment for the value, byte-identical to its MarshalJSON output, so a
// fragment can be embedded in a larger document or printed on its own.
type Value interface {
	fmt.Stringer
	MarshalJSON() ([]byte, error)
}

const msgNotFinite = "Invalid values. Input values must be finite numbers"

// ---- shared numeric checks ----

// checkFinite rejects NaN and ±Inf elements. JSON has no encoding for
// either, so they are refused at construction rather than at render time.
// Structural (length) checks run before this one.
func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Issues{IssueAt(i, CodeNotFinite, msgNotFinite)}
		}
	}
	return nil
}

// copyValues snapshots caller-owned data. The copy is never nil so that an
// empty list renders as [] rather than null.
func copyValues(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}
