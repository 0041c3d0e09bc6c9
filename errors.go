package goczml

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidEnum        = "invalid_enum"
	CodeInvalidLength      = "invalid_length"
	CodeOutOfRange         = "out_of_range"
	CodeNotFinite          = "not_finite"
	CodeInvalidFormat      = "invalid_format"
	CodeMalformedTimestamp = "malformed_timestamp"
	CodeIntervalOrder      = "interval_order"
	// Manifest decoding (entry-level problems)
	CodeParseError    = "parse_error"
	CodeUnknownKind   = "unknown_kind"
	CodeDuplicateName = "duplicate_name"
)

// Issue represents a single validation entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, allowed member sets, etc.
	Cause   error  // Optional: underlying error.
	// Index is the offending element index for list inputs, or the entry
	// index for manifests (-1 when not applicable).
	Index int
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
