package goczml_test

import (
	"math"
	"testing"
	"time"

	goczml "github.com/reoring/goczml"
)

func TestFormatDateTime_NativeTime(t *testing.T) {
	in := time.Date(2019, 1, 1, 12, 0, 0, 0, time.UTC)
	got, err := goczml.FormatDateTime(goczml.Time(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2019-01-01T12:00:00Z" {
		t.Fatalf("expected canonical form, got %q", got)
	}
}

func TestFormatDateTime_NativeTimeShiftsZone(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	in := time.Date(2019, 9, 2, 23, 59, 59, 0, zone)
	got, err := goczml.FormatDateTime(goczml.Time(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2019-09-02T21:59:59Z" {
		t.Fatalf("expected zone shift to UTC, got %q", got)
	}
}

func TestFormatDateTime_TruncatesSubSeconds(t *testing.T) {
	in := time.Date(2012, 3, 15, 10, 16, 6, 974000000, time.UTC)
	got, err := goczml.FormatDateTime(goczml.Time(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2012-03-15T10:16:06Z" {
		t.Fatalf("expected truncation toward the past, got %q", got)
	}
}

func TestFormatDateTime_ISOOffsetShiftsToUTC(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.ISO("2019-09-02T23:59:59+02:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2019-09-02T21:59:59Z" {
		t.Fatalf("expected offset shift to UTC, got %q", got)
	}
}

func TestFormatDateTime_ISOWithoutZoneAssumesUTC(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.ISO("2019-01-01T12:00:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2019-01-01T12:00:00Z" {
		t.Fatalf("expected offset-less input to stay as-is, got %q", got)
	}
}

func TestFormatDateTime_ISOFractionTruncated(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.ISO("2012-03-15T10:16:06.974Z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2012-03-15T10:16:06Z" {
		t.Fatalf("expected fractional seconds dropped, got %q", got)
	}
}

func TestFormatDateTime_ISOShortForms(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.ISO("2019-01-01T12:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2019-01-01T12:00:00Z" {
		t.Fatalf("expected minute form to expand, got %q", got)
	}

	got, err = goczml.FormatDateTime(goczml.ISO("2019-01-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2019-01-01T00:00:00Z" {
		t.Fatalf("expected date form to expand to midnight, got %q", got)
	}
}

func TestFormatDateTime_ISORejectsUnknownForm(t *testing.T) {
	_, err := goczml.FormatDateTime(goczml.ISO("2019/01/01"))
	if err == nil {
		t.Fatalf("expected error for slash-separated date, got nil")
	}
	if err.Error() != `Invalid datetime format: "2019/01/01"` {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	iss, _ := goczml.AsIssues(err)
	if iss[0].Code != goczml.CodeMalformedTimestamp {
		t.Fatalf("expected code %q, got %q", goczml.CodeMalformedTimestamp, iss[0].Code)
	}
}

func TestFormatDateTime_SentinelsPassThrough(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.ISO(goczml.UnboundedPast))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != goczml.UnboundedPast {
		t.Fatalf("expected sentinel unchanged, got %q", got)
	}

	got, err = goczml.FormatDateTime(goczml.ISO(goczml.UnboundedFuture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != goczml.UnboundedFuture {
		t.Fatalf("expected sentinel unchanged, got %q", got)
	}
}

func TestJulianDate_UnixEpoch(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.JulianDate(2440587.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1970-01-01T00:00:00Z" {
		t.Fatalf("expected the Unix epoch, got %q", got)
	}
}

func TestJulianDate_J2000(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.JulianDate(2451545.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2000-01-01T12:00:00Z" {
		t.Fatalf("expected J2000 noon, got %q", got)
	}
}

func TestJulianDate_FractionTruncated(t *testing.T) {
	jd := goczml.JulianDate(2440587.5 + 10.9/86400.0)
	got, err := goczml.FormatDateTime(jd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1970-01-01T00:00:10Z" {
		t.Fatalf("expected 10.9s to truncate to :10, got %q", got)
	}
}

func TestJulianDate_TimeAccessor(t *testing.T) {
	at := goczml.JulianDate(2440588.0).Time()
	want := time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Fatalf("expected %v, got %v", want, at)
	}
}

func TestFormatDateTime_RejectsYearAboveCalendarMax(t *testing.T) {
	in := time.Date(10000, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err := goczml.FormatDateTime(goczml.Time(in))
	if err == nil {
		t.Fatalf("expected error for year 10000, got nil")
	}
	if err.Error() != "Invalid datetime value. Year 10000 is outside the range 0-9999" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	iss, _ := goczml.AsIssues(err)
	if iss[0].Code != goczml.CodeOutOfRange {
		t.Fatalf("expected code %q, got %q", goczml.CodeOutOfRange, iss[0].Code)
	}
}

func TestFormatDateTime_RejectsNegativeYear(t *testing.T) {
	in := time.Date(-44, 3, 15, 0, 0, 0, 0, time.UTC)
	if _, err := goczml.FormatDateTime(goczml.Time(in)); err == nil {
		t.Fatalf("expected error for negative year, got nil")
	}
}

func TestFormatDateTime_CalendarBoundsAccepted(t *testing.T) {
	got, err := goczml.FormatDateTime(goczml.Time(time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "9999-12-31T23:59:59Z" {
		t.Fatalf("expected the last four-digit instant, got %q", got)
	}

	got, err = goczml.FormatDateTime(goczml.Time(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0000-01-01T00:00:00Z" {
		t.Fatalf("expected year zero to render four digits, got %q", got)
	}
}

func TestFormatDateTime_YearGuardAppliesAfterZoneShift(t *testing.T) {
	// Local year 10000, but 9999 once shifted to UTC.
	zone := time.FixedZone("EAT", 3*60*60)
	in := time.Date(10000, 1, 1, 1, 0, 0, 0, zone)
	got, err := goczml.FormatDateTime(goczml.Time(in))
	if err != nil {
		t.Fatalf("expected UTC-shifted year 9999 to be accepted, got %v", err)
	}
	if got != "9999-12-31T22:00:00Z" {
		t.Fatalf("unexpected canonical form: %q", got)
	}
}

func TestJulianDate_RejectsYearAboveCalendarMax(t *testing.T) {
	// Roughly 27 million years after the epoch.
	_, err := goczml.FormatDateTime(goczml.JulianDate(1e10))
	if err == nil {
		t.Fatalf("expected error for out-of-calendar Julian date, got nil")
	}
	iss, _ := goczml.AsIssues(err)
	if iss[0].Code != goczml.CodeOutOfRange {
		t.Fatalf("expected code %q, got %q", goczml.CodeOutOfRange, iss[0].Code)
	}
}

func TestJulianDate_RejectsNonFinite(t *testing.T) {
	if _, err := goczml.FormatDateTime(goczml.JulianDate(math.NaN())); err == nil {
		t.Fatalf("expected error for NaN Julian date, got nil")
	}
	if _, err := goczml.FormatDateTime(goczml.JulianDate(math.Inf(1))); err == nil {
		t.Fatalf("expected error for infinite Julian date, got nil")
	}
}

func TestFormatDateTime_NilInput(t *testing.T) {
	if _, err := goczml.FormatDateTime(nil); err == nil {
		t.Fatalf("expected error for nil input, got nil")
	}
}
