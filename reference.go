package goczml

import "strings"

const msgReferenceFormat = "Invalid reference string format. Input must be of the form id#property"

// Reference points at a property of another packet, written id#property.
// The identifier and the property path must both be non-empty and the input
// must contain exactly one # separator. The zero value is not valid;
// construct via NewReference.
type Reference struct {
	id       string
	property string
}

// NewReference validates the id#property form and splits it.
func NewReference(s string) (Reference, error) {
	if strings.Count(s, "#") != 1 {
		return Reference{}, Issues{NewIssue(CodeInvalidFormat, msgReferenceFormat)}
	}
	i := strings.IndexByte(s, '#')
	id, property := s[:i], s[i+1:]
	if id == "" || property == "" {
		return Reference{}, Issues{NewIssue(CodeInvalidFormat, msgReferenceFormat)}
	}
	return Reference{id: id, property: property}, nil
}

// Value returns the full reference string, unchanged from construction.
func (r Reference) Value() string { return r.id + "#" + r.property }

// ID returns the packet identifier before the separator.
func (r Reference) ID() string { return r.id }

// Property returns the property path after the separator.
func (r Reference) Property() string { return r.property }

// IsZero reports whether r is the zero value.
func (r Reference) IsZero() bool { return r.id == "" && r.property == "" }

// String returns the canonical fragment, a double-quoted JSON string.
func (r Reference) String() string { return jsonStringFragment(r.Value()) }

// MarshalJSON returns the same bytes as String.
func (r Reference) MarshalJSON() ([]byte, error) { return []byte(r.String()), nil }
