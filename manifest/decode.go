package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	goczml "github.com/reoring/goczml"
	"gopkg.in/yaml.v3"
)

// Parse decodes a manifest, treating data as JSON when the first non-space
// byte opens an array and as YAML otherwise. Use Decode or DecodeYAML when
// the format is known up front.
func Parse(data []byte) (Manifest, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return Decode(data)
	}
	return DecodeYAML(data)
}

// Decode parses a JSON manifest: a single array of entries. Unknown entry
// fields and trailing data are rejected.
func Decode(data []byte) (Manifest, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var raws []rawEntry
	if err := dec.Decode(&raws); err != nil {
		return Manifest{}, goczml.Issues{documentIssue(err)}
	}
	if dec.More() {
		return Manifest{}, goczml.Issues{documentIssue(errors.New("trailing data after manifest array"))}
	}
	return build(raws)
}

// DecodeYAML parses a YAML manifest. Multi-document streams are supported;
// each document is a sequence of entries and the sequences concatenate in
// stream order. Unknown entry fields are rejected.
func DecodeYAML(data []byte) (Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raws []rawEntry
	for {
		var doc []rawEntry
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Manifest{}, goczml.Issues{documentIssue(err)}
		}
		raws = append(raws, doc...)
	}
	return build(raws)
}

// documentIssue wraps a decoder error: the document never reached entry
// validation, so no entry index applies.
func documentIssue(err error) goczml.Issue {
	iss := goczml.NewIssue(goczml.CodeParseError, fmt.Sprintf("Malformed manifest document: %v", err))
	iss.Cause = err
	return iss
}
