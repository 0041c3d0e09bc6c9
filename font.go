package goczml

import "strings"

const msgFontEmpty = "Invalid font value. Input must be a non-empty CSS font string"

// Font is a CSS font shorthand such as "20px sans-serif". The string is
// stored verbatim; the grammar is deliberately permissive and only blank
// input is rejected. The zero value is not valid; construct via NewFont.
type Font struct {
	font string
}

// NewFont validates that font is not blank.
func NewFont(font string) (Font, error) {
	if strings.TrimSpace(font) == "" {
		return Font{}, Issues{NewIssue(CodeInvalidFormat, msgFontEmpty)}
	}
	return Font{font: font}, nil
}

// Value returns the stored font string, unchanged from construction.
func (f Font) Value() string { return f.font }

// IsZero reports whether f is the zero value.
func (f Font) IsZero() bool { return f.font == "" }

// String returns the canonical fragment, a double-quoted JSON string.
func (f Font) String() string { return jsonStringFragment(f.font) }

// MarshalJSON returns the same bytes as String.
func (f Font) MarshalJSON() ([]byte, error) { return []byte(f.String()), nil }
