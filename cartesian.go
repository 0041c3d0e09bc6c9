package goczml

const msgCartesianLength = "Input values must have either 3 or N * 4 values, where N is the number of time-tagged samples."

// Cartesian3 is a position or vector in three-dimensional Cartesian
// coordinates: one bare (x, y, z) triple or N time-tagged (time, x, y, z)
// quadruples. Components are unbounded reals; only finiteness is enforced.
// The zero value is not valid; construct via NewCartesian3.
type Cartesian3 struct {
	values []float64
}

// NewCartesian3 validates the triple-or-quadruples shape.
func NewCartesian3(values []float64) (Cartesian3, error) {
	if len(values) != 3 && len(values)%4 != 0 {
		return Cartesian3{}, Issues{NewIssue(CodeInvalidLength, msgCartesianLength)}
	}
	if err := checkFinite(values); err != nil {
		return Cartesian3{}, err
	}
	return Cartesian3{values: copyValues(values)}, nil
}

// Values returns a copy of the stored elements in original order.
func (c Cartesian3) Values() []float64 { return copyValues(c.values) }

// IsZero reports whether c is the zero value rather than a constructed,
// possibly empty, list.
func (c Cartesian3) IsZero() bool { return c.values == nil }

// String returns the canonical fragment: a pretty-printed JSON array, one
// element per line.
func (c Cartesian3) String() string { return jsonFragment(c.values) }

// MarshalJSON returns the same bytes as String.
func (c Cartesian3) MarshalJSON() ([]byte, error) { return []byte(c.String()), nil }
