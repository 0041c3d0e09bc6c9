package goczml

import (
	"bytes"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Fragment layout is fixed: arrays indent with four spaces, one element per
// line; numbers use the shortest round-trip form; strings are not
// HTML-escaped. Every value type renders through the helpers below rather
// than touching the JSON encoder directly.

const fragmentIndent = "    "

// encodeFragment renders v without HTML escaping, stripping the trailing
// newline Encode appends.
func encodeFragment(v any, indent string) string {
	var buf bytes.Buffer
	enc := gojson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		// Inputs are validated finite strings and numbers; the encoder
		// cannot fail on them.
		panic("goczml: encode fragment: " + err.Error())
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// jsonFragment renders a numeric list as its canonical array fragment. A nil
// slice renders as [], the same as a constructed empty list, never null.
func jsonFragment(values []float64) string {
	if values == nil {
		values = []float64{}
	}
	return encodeFragment(values, fragmentIndent)
}

// jsonStringFragment renders a string as its quoted JSON form.
func jsonStringFragment(s string) string {
	return encodeFragment(s, "")
}
