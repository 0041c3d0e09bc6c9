package goczml

import "strings"

// Member sets for the enumerated CZML properties. CZML spells members in
// SCREAMING_SNAKE_CASE and matching is exact: no case folding, no trimming.
var (
	arcTypeMembers            = []string{"NONE", "GEODESIC", "RHUMB"}
	classificationTypeMembers = []string{"TERRAIN", "CESIUM_3D_TILE", "BOTH"}
	heightReferenceMembers    = []string{"NONE", "CLAMP_TO_GROUND", "RELATIVE_TO_GROUND"}
	shadowModeMembers         = []string{"DISABLED", "ENABLED", "CAST_ONLY", "RECEIVE_ONLY"}
)

func isMember(s string, allowed []string) bool {
	for _, m := range allowed {
		if s == m {
			return true
		}
	}
	return false
}

// invalidEnum builds the shared rejection for enumerated inputs. The allowed
// set is part of the message and repeated as a hint.
func invalidEnum(allowed []string) Issues {
	set := strings.Join(allowed, ", ")
	iss := NewIssue(CodeInvalidEnum, "Invalid input value. Input should be one of: "+set)
	iss.Hint = set
	return Issues{iss}
}

// ArcType is the type of an arc: how a line between two positions follows
// the globe. The zero value is not valid; construct via NewArcType.
type ArcType struct {
	value string
}

// NewArcType validates s against the arc type member set
// (NONE, GEODESIC, RHUMB).
func NewArcType(s string) (ArcType, error) {
	if !isMember(s, arcTypeMembers) {
		return ArcType{}, invalidEnum(arcTypeMembers)
	}
	return ArcType{value: s}, nil
}

// Value returns the stored member string.
func (a ArcType) Value() string { return a.value }

// IsZero reports whether a is the zero value.
func (a ArcType) IsZero() bool { return a.value == "" }

// String returns the canonical fragment, a double-quoted JSON string.
func (a ArcType) String() string { return jsonStringFragment(a.value) }

// MarshalJSON returns the same bytes as String.
func (a ArcType) MarshalJSON() ([]byte, error) { return []byte(a.String()), nil }

// ClassificationType is the set of surfaces a polygon or polyline
// classifies: terrain, 3D tiles, or both. The zero value is not valid;
// construct via NewClassificationType.
type ClassificationType struct {
	value string
}

// NewClassificationType validates s against the classification member set
// (TERRAIN, CESIUM_3D_TILE, BOTH).
func NewClassificationType(s string) (ClassificationType, error) {
	if !isMember(s, classificationTypeMembers) {
		return ClassificationType{}, invalidEnum(classificationTypeMembers)
	}
	return ClassificationType{value: s}, nil
}

func (c ClassificationType) Value() string  { return c.value }
func (c ClassificationType) IsZero() bool   { return c.value == "" }
func (c ClassificationType) String() string { return jsonStringFragment(c.value) }

func (c ClassificationType) MarshalJSON() ([]byte, error) { return []byte(c.String()), nil }

// HeightReference states what a height is measured relative to. Unlike the
// other enumerated values it carries its own historical failure message.
// The zero value is not valid; construct via NewHeightReference.
type HeightReference struct {
	value string
}

// NewHeightReference validates s against the height reference member set
// (NONE, CLAMP_TO_GROUND, RELATIVE_TO_GROUND).
func NewHeightReference(s string) (HeightReference, error) {
	if !isMember(s, heightReferenceMembers) {
		iss := NewIssue(CodeInvalidEnum, "Invalid height reference value.")
		iss.Hint = strings.Join(heightReferenceMembers, ", ")
		return HeightReference{}, Issues{iss}
	}
	return HeightReference{value: s}, nil
}

func (h HeightReference) Value() string  { return h.value }
func (h HeightReference) IsZero() bool   { return h.value == "" }
func (h HeightReference) String() string { return jsonStringFragment(h.value) }

func (h HeightReference) MarshalJSON() ([]byte, error) { return []byte(h.String()), nil }

// ShadowMode states whether an object casts or receives shadows. The zero
// value is not valid; construct via NewShadowMode.
type ShadowMode struct {
	value string
}

// NewShadowMode validates s against the shadow mode member set
// (DISABLED, ENABLED, CAST_ONLY, RECEIVE_ONLY).
func NewShadowMode(s string) (ShadowMode, error) {
	if !isMember(s, shadowModeMembers) {
		return ShadowMode{}, invalidEnum(shadowModeMembers)
	}
	return ShadowMode{value: s}, nil
}

func (s ShadowMode) Value() string  { return s.value }
func (s ShadowMode) IsZero() bool   { return s.value == "" }
func (s ShadowMode) String() string { return jsonStringFragment(s.value) }

func (s ShadowMode) MarshalJSON() ([]byte, error) { return []byte(s.String()), nil }
