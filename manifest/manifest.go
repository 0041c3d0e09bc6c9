// Package manifest decodes authored CZML value manifests (JSON or YAML
// documents listing tagged entries) into validated goczml values. Problems
// are reported as goczml.Issues with Index set to the entry position, one
// issue per failing entry, so a whole manifest is checked in a single pass.
package manifest

import (
	"fmt"
	"strings"

	goczml "github.com/reoring/goczml"
)

// Kind identifies which value type a manifest entry carries.
type Kind string

const (
	KindArcType                  Kind = "arcType"
	KindClassificationType       Kind = "classificationType"
	KindHeightReference          Kind = "heightReference"
	KindShadowMode               Kind = "shadowMode"
	KindCartographicRadiansList  Kind = "cartographicRadiansList"
	KindCartographicDegreesList  Kind = "cartographicDegreesList"
	KindDistanceDisplayCondition Kind = "distanceDisplayCondition"
	KindRgba                     Kind = "rgba"
	KindRgbaf                    Kind = "rgbaf"
	KindCartesian3               Kind = "cartesian3"
	KindReference                Kind = "reference"
	KindFont                     Kind = "font"
	KindURI                      Kind = "uri"
	KindInterval                 Kind = "interval"
)

// knownKinds is the hint text attached to unknown-kind issues.
var knownKinds = strings.Join([]string{
	string(KindArcType), string(KindClassificationType), string(KindHeightReference),
	string(KindShadowMode), string(KindCartographicRadiansList), string(KindCartographicDegreesList),
	string(KindDistanceDisplayCondition), string(KindRgba), string(KindRgbaf),
	string(KindCartesian3), string(KindReference), string(KindFont),
	string(KindURI), string(KindInterval),
}, ", ")

// Entry is one validated manifest entry.
type Entry struct {
	Kind  Kind
	Name  string // optional author-supplied label, unique when present
	Value goczml.Value
}

// Manifest is an ordered collection of validated entries.
type Manifest struct {
	Entries []Entry
}

// Render returns the canonical fragments of all entries in input order,
// newline-separated.
func (m Manifest) Render() string {
	parts := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		parts = append(parts, e.Value.String())
	}
	return strings.Join(parts, "\n")
}

// rawEntry is the authored shape before validation. Numeric kinds fill
// Values; string kinds fill Value; interval fills Start and End.
type rawEntry struct {
	Kind   string    `json:"kind" yaml:"kind"`
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Values []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Value  string    `json:"value,omitempty" yaml:"value,omitempty"`
	Start  string    `json:"start,omitempty" yaml:"start,omitempty"`
	End    string    `json:"end,omitempty" yaml:"end,omitempty"`
}

// build validates raw entries in order. On failure the returned manifest
// still holds every entry that did validate, alongside the aggregated
// issues.
func build(raws []rawEntry) (Manifest, error) {
	var iss goczml.Issues
	entries := make([]Entry, 0, len(raws))
	firstByName := make(map[string]int)
	for i, raw := range raws {
		if raw.Name != "" {
			if first, dup := firstByName[raw.Name]; dup {
				iss = goczml.AppendIssues(iss, goczml.Issue{
					Code:    goczml.CodeDuplicateName,
					Message: fmt.Sprintf("Duplicate entry name %q (first used by entry %d)", raw.Name, first),
					Index:   i,
				})
				continue
			}
			firstByName[raw.Name] = i
		}
		v, err := buildValue(raw)
		if err != nil {
			iss = goczml.AppendIssues(iss, entryIssue(i, err))
			continue
		}
		entries = append(entries, Entry{Kind: Kind(raw.Kind), Name: raw.Name, Value: v})
	}
	m := Manifest{Entries: entries}
	if len(iss) > 0 {
		return m, iss
	}
	return m, nil
}

// buildValue dispatches one raw entry to the core constructor for its kind.
func buildValue(raw rawEntry) (goczml.Value, error) {
	if field, ok := strayField(raw); ok {
		iss := goczml.NewIssue(goczml.CodeInvalidFormat,
			fmt.Sprintf("Field %q does not apply to kind %q", field, raw.Kind))
		return nil, goczml.Issues{iss}
	}
	switch Kind(raw.Kind) {
	case KindArcType:
		return liftValue(goczml.NewArcType(raw.Value))
	case KindClassificationType:
		return liftValue(goczml.NewClassificationType(raw.Value))
	case KindHeightReference:
		return liftValue(goczml.NewHeightReference(raw.Value))
	case KindShadowMode:
		return liftValue(goczml.NewShadowMode(raw.Value))
	case KindCartographicRadiansList:
		return liftValue(goczml.NewCartographicRadiansList(raw.Values))
	case KindCartographicDegreesList:
		return liftValue(goczml.NewCartographicDegreesList(raw.Values))
	case KindDistanceDisplayCondition:
		return liftValue(goczml.NewDistanceDisplayCondition(raw.Values))
	case KindRgba:
		return liftValue(goczml.NewRgba(raw.Values))
	case KindRgbaf:
		return liftValue(goczml.NewRgbaf(raw.Values))
	case KindCartesian3:
		return liftValue(goczml.NewCartesian3(raw.Values))
	case KindReference:
		return liftValue(goczml.NewReference(raw.Value))
	case KindFont:
		return liftValue(goczml.NewFont(raw.Value))
	case KindURI:
		return liftValue(goczml.NewURI(raw.Value))
	case KindInterval:
		var start, end goczml.TimeValue
		if raw.Start != "" {
			start = goczml.ISO(raw.Start)
		}
		if raw.End != "" {
			end = goczml.ISO(raw.End)
		}
		return liftValue(goczml.NewTimeInterval(start, end))
	case "":
		iss := goczml.NewIssue(goczml.CodeUnknownKind, "Missing kind")
		iss.Hint = knownKinds
		return nil, goczml.Issues{iss}
	default:
		iss := goczml.NewIssue(goczml.CodeUnknownKind, fmt.Sprintf("Unknown kind %q", raw.Kind))
		iss.Hint = knownKinds
		return nil, goczml.Issues{iss}
	}
}

// strayField returns the first populated field that raw's kind does not
// consume. Strict decoding catches unknown field names; a known field on the
// wrong kind would otherwise be dropped silently (a numeric kind ignores
// "value", so the typo validates an empty list instead of failing).
func strayField(raw rawEntry) (string, bool) {
	switch Kind(raw.Kind) {
	case KindCartographicRadiansList, KindCartographicDegreesList,
		KindDistanceDisplayCondition, KindRgba, KindRgbaf, KindCartesian3:
		switch {
		case raw.Value != "":
			return "value", true
		case raw.Start != "":
			return "start", true
		case raw.End != "":
			return "end", true
		}
	case KindArcType, KindClassificationType, KindHeightReference,
		KindShadowMode, KindReference, KindFont, KindURI:
		switch {
		case raw.Values != nil:
			return "values", true
		case raw.Start != "":
			return "start", true
		case raw.End != "":
			return "end", true
		}
	case KindInterval:
		switch {
		case raw.Values != nil:
			return "values", true
		case raw.Value != "":
			return "value", true
		}
	}
	return "", false
}

// liftValue erases the concrete constructor pair to (Value, error).
func liftValue[T goczml.Value](v T, err error) (goczml.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// entryIssue rewrites a core issue onto the failing entry: same code,
// message and hint, Index pointing at the entry, the original error kept as
// Cause (element-level indexes live there).
func entryIssue(i int, err error) goczml.Issue {
	if inner, ok := goczml.AsIssues(err); ok && len(inner) > 0 {
		return goczml.Issue{
			Code:    inner[0].Code,
			Message: inner[0].Message,
			Hint:    inner[0].Hint,
			Cause:   err,
			Index:   i,
		}
	}
	return goczml.Issue{Code: goczml.CodeParseError, Message: err.Error(), Cause: err, Index: i}
}
