package goczml

import (
	"fmt"
	"math"
	"time"
)

// Reserved interval bounds. CZML uses these literals for "unbounded past"
// and "unbounded future"; they are not real calendar instants (note the
// 24:00:00 end-of-day form) and pass through the formatter verbatim.
const (
	UnboundedPast   = "0000-00-00T00:00:00Z"
	UnboundedFuture = "9999-12-31T24:00:00Z"
)

// iso8601Z is the canonical CZML timestamp layout: UTC, whole seconds.
// Formatting with it drops any sub-second component without rounding.
const iso8601Z = "2006-01-02T15:04:05Z"

// formatInstant renders the canonical whole-second form of an instant.
// UTC years outside 0000-9999 cannot fill the fixed four-digit field and
// are refused rather than widened; time.Time reaches far beyond the
// calendar range the canonical form can express.
func formatInstant(t time.Time) (string, error) {
	u := t.UTC()
	if y := u.Year(); y < 0 || y > 9999 {
		return "", Issues{NewIssue(CodeOutOfRange,
			fmt.Sprintf("Invalid datetime value. Year %d is outside the range 0-9999", y))}
	}
	return u.Format(iso8601Z), nil
}

// TimeValue is a time-like input accepted by FormatDateTime: a native
// time.Time (wrap with Time), an astronomical JulianDate, or an ISO 8601
// string (wrap with ISO). The set is closed.
type TimeValue interface {
	// normalize renders the canonical UTC whole-second form.
	normalize() (string, error)
}

// Time wraps a native instant. It always carries zone information, so it is
// converted with t.UTC() and never hits the "assume UTC" branch that string
// inputs get.
func Time(t time.Time) TimeValue { return clockValue{t: t} }

type clockValue struct {
	t time.Time
}

func (c clockValue) normalize() (string, error) {
	return formatInstant(c.t)
}

// unixEpochJD anchors Julian day numbers to Unix time: JD 2440587.5 is
// 1970-01-01T00:00:00Z.
const unixEpochJD = 2440587.5

// JulianDate is an astronomical time expressed in days since the Julian
// epoch, fractional days included.
type JulianDate float64

// Time converts the Julian date to its UTC instant.
func (jd JulianDate) Time() time.Time {
	seconds := (float64(jd) - unixEpochJD) * 86400
	sec := math.Floor(seconds)
	nsec := math.Round((seconds - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

func (jd JulianDate) normalize() (string, error) {
	if math.IsNaN(float64(jd)) || math.IsInf(float64(jd), 0) {
		return "", Issues{NewIssue(CodeNotFinite, msgNotFinite)}
	}
	return formatInstant(jd.Time())
}

// ISO wraps an ISO 8601-like string. Offset-carrying forms are shifted to
// UTC; offset-less forms are taken as already UTC. The two reserved
// sentinels pass through verbatim.
func ISO(s string) TimeValue { return isoValue(s) }

type isoValue string

// isoLayouts are the accepted offset-less layouts, tried after RFC 3339.
// time.Parse treats a missing zone as UTC, which is exactly the contract
// for these forms.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (s isoValue) normalize() (string, error) {
	raw := string(s)
	if raw == UnboundedPast || raw == UnboundedFuture {
		return raw, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return formatInstant(t)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return formatInstant(t)
		}
	}
	return "", Issues{NewIssue(CodeMalformedTimestamp, fmt.Sprintf("Invalid datetime format: %q", raw))}
}

// FormatDateTime renders any accepted time-like input in the canonical UTC
// whole-second form YYYY-MM-DDTHH:MM:SSZ. Sub-second precision is truncated,
// never rounded. Sentinel strings are returned unchanged. The failure modes
// are an unparseable ISO input, a non-finite JulianDate, and an instant
// whose UTC year falls outside 0000-9999.
func FormatDateTime(v TimeValue) (string, error) {
	if v == nil {
		return "", Issues{NewIssue(CodeMalformedTimestamp, "Invalid datetime value. Input must not be nil")}
	}
	return v.normalize()
}
