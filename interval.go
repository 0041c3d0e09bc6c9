package goczml

import "fmt"

// TimeInterval is a span of time rendered as "<start>/<end>" with both
// endpoints in canonical UTC whole-second form. The zero value is not
// valid; construct via NewTimeInterval. Passing nil for both endpoints
// yields the all-time default interval.
type TimeInterval struct {
	start string
	end   string
}

// NewTimeInterval normalizes both endpoints and enforces that start does
// not come after end; equal endpoints are allowed. A nil start defaults to
// UnboundedPast, a nil end to UnboundedFuture.
func NewTimeInterval(start, end TimeValue) (TimeInterval, error) {
	startStr := UnboundedPast
	if start != nil {
		s, err := FormatDateTime(start)
		if err != nil {
			return TimeInterval{}, err
		}
		startStr = s
	}
	endStr := UnboundedFuture
	if end != nil {
		e, err := FormatDateTime(end)
		if err != nil {
			return TimeInterval{}, err
		}
		endStr = e
	}
	// Canonical timestamps are fixed-width, so chronological order is byte
	// order, and the sentinels sort before and after every real instant.
	if startStr > endStr {
		return TimeInterval{}, Issues{NewIssue(CodeIntervalOrder,
			fmt.Sprintf("Invalid interval. Start time %s is after end time %s", startStr, endStr))}
	}
	return TimeInterval{start: startStr, end: endStr}, nil
}

// Start returns the normalized start bound.
func (ti TimeInterval) Start() string { return ti.start }

// End returns the normalized end bound.
func (ti TimeInterval) End() string { return ti.end }

// IsZero reports whether ti is the zero value.
func (ti TimeInterval) IsZero() bool { return ti.start == "" && ti.end == "" }

// String returns the canonical fragment, the quoted "<start>/<end>" form.
func (ti TimeInterval) String() string { return jsonStringFragment(ti.start + "/" + ti.end) }

// MarshalJSON returns the same bytes as String.
func (ti TimeInterval) MarshalJSON() ([]byte, error) { return []byte(ti.String()), nil }
