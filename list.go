package goczml

const msgTripleLength = "Invalid values. Input values should be arrays of size 3 * N"

// checkTriples enforces whole groups of three. These list variants carry no
// leading time component, so an empty list is the only other legal shape
// besides N complete triples.
func checkTriples(values []float64) error {
	if len(values)%3 != 0 {
		return Issues{NewIssue(CodeInvalidLength, msgTripleLength)}
	}
	return checkFinite(values)
}

// CartographicRadiansList is a flat list of geodetic positions as repeated
// (longitude, latitude, height) triples, longitude and latitude in radians,
// height in meters. Units are nominal: no conversion or range check happens
// at this layer. The zero value is not valid; construct via
// NewCartographicRadiansList.
type CartographicRadiansList struct {
	values []float64
}

// NewCartographicRadiansList validates that values holds whole
// (longitude, latitude, height) triples.
func NewCartographicRadiansList(values []float64) (CartographicRadiansList, error) {
	if err := checkTriples(values); err != nil {
		return CartographicRadiansList{}, err
	}
	return CartographicRadiansList{values: copyValues(values)}, nil
}

// Values returns a copy of the stored elements in original order.
func (c CartographicRadiansList) Values() []float64 { return copyValues(c.values) }

// IsZero reports whether c is the zero value rather than a constructed,
// possibly empty, list.
func (c CartographicRadiansList) IsZero() bool { return c.values == nil }

// String returns the canonical fragment: a pretty-printed JSON array, one
// element per line.
func (c CartographicRadiansList) String() string { return jsonFragment(c.values) }

// MarshalJSON returns the same bytes as String.
func (c CartographicRadiansList) MarshalJSON() ([]byte, error) { return []byte(c.String()), nil }

// CartographicDegreesList is the degree-valued twin of
// CartographicRadiansList: repeated (longitude, latitude, height) triples
// with angles in degrees. The zero value is not valid; construct via
// NewCartographicDegreesList.
type CartographicDegreesList struct {
	values []float64
}

// NewCartographicDegreesList validates that values holds whole
// (longitude, latitude, height) triples.
func NewCartographicDegreesList(values []float64) (CartographicDegreesList, error) {
	if err := checkTriples(values); err != nil {
		return CartographicDegreesList{}, err
	}
	return CartographicDegreesList{values: copyValues(values)}, nil
}

func (c CartographicDegreesList) Values() []float64 { return copyValues(c.values) }
func (c CartographicDegreesList) IsZero() bool      { return c.values == nil }
func (c CartographicDegreesList) String() string    { return jsonFragment(c.values) }

func (c CartographicDegreesList) MarshalJSON() ([]byte, error) { return []byte(c.String()), nil }

// DistanceDisplayCondition is a flat list of (time, near, far) samples
// bounding the camera distances at which an object stays visible. The zero
// value is not valid; construct via NewDistanceDisplayCondition.
type DistanceDisplayCondition struct {
	values []float64
}

// NewDistanceDisplayCondition validates that values holds whole
// (time, near, far) triples.
func NewDistanceDisplayCondition(values []float64) (DistanceDisplayCondition, error) {
	if err := checkTriples(values); err != nil {
		return DistanceDisplayCondition{}, err
	}
	return DistanceDisplayCondition{values: copyValues(values)}, nil
}

func (d DistanceDisplayCondition) Values() []float64 { return copyValues(d.values) }
func (d DistanceDisplayCondition) IsZero() bool      { return d.values == nil }
func (d DistanceDisplayCondition) String() string    { return jsonFragment(d.values) }

func (d DistanceDisplayCondition) MarshalJSON() ([]byte, error) { return []byte(d.String()), nil }
