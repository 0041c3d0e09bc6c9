package goczml

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vincent-petithory/dataurl"
)

const msgURIFormat = "uri must be a URL or a data URI"

// URIValidator recognizes the two URI shapes CZML accepts: absolute URLs
// and RFC 2397 data URIs. Implementations must be safe for concurrent use.
type URIValidator interface {
	ValidURL(s string) bool
	ValidDataURI(s string) bool
}

var (
	uriValidatorMu sync.RWMutex
	uriValidator   URIValidator = newDefaultURIValidator()
)

// SetURIValidator replaces the URI recognition used by NewURI. Passing nil
// resets to the default validator.
func SetURIValidator(v URIValidator) {
	uriValidatorMu.Lock()
	defer uriValidatorMu.Unlock()
	if v == nil {
		uriValidator = newDefaultURIValidator()
		return
	}
	uriValidator = v
}

func currentURIValidator() URIValidator {
	uriValidatorMu.RLock()
	defer uriValidatorMu.RUnlock()
	return uriValidator
}

// defaultURIValidator delegates URL recognition to go-playground/validator
// and data-URI recognition to a full RFC 2397 decode, which accepts both
// base64 and percent-encoded payloads.
type defaultURIValidator struct {
	v *validator.Validate
}

func newDefaultURIValidator() URIValidator {
	return defaultURIValidator{v: validator.New()}
}

func (d defaultURIValidator) ValidURL(s string) bool {
	return d.v.Var(s, "url") == nil
}

func (d defaultURIValidator) ValidDataURI(s string) bool {
	_, err := dataurl.DecodeString(s)
	return err == nil
}

// URI is the address of external content: an absolute URL or an embedded
// data URI. The string is stored verbatim. The zero value is not valid;
// construct via NewURI.
type URI struct {
	uri string
}

// NewURI validates uri against the current URIValidator. The data-URI
// branch is tried first so that embedded content never depends on how the
// URL branch treats the data scheme.
func NewURI(uri string) (URI, error) {
	val := currentURIValidator()
	if !val.ValidDataURI(uri) && !val.ValidURL(uri) {
		return URI{}, Issues{NewIssue(CodeInvalidFormat, msgURIFormat)}
	}
	return URI{uri: uri}, nil
}

// Value returns the stored URI string, unchanged from construction.
func (u URI) Value() string { return u.uri }

// IsZero reports whether u is the zero value.
func (u URI) IsZero() bool { return u.uri == "" }

// String returns the canonical fragment, a double-quoted JSON string.
func (u URI) String() string { return jsonStringFragment(u.uri) }

// MarshalJSON returns the same bytes as String.
func (u URI) MarshalJSON() ([]byte, error) { return []byte(u.String()), nil }
