package goczml

import "math"

const (
	msgColorLength   = "Input values must have either 4 or N * 5 values, where N is the number of time-tagged samples."
	msgByteChannels  = "Color values must be integers in the range 0-255."
	msgFloatChannels = "Color values must be floats in the range 0-1."
)

// checkColor enforces the shared color shape: one bare (red, green, blue,
// alpha) quadruple or N time-tagged (time, red, green, blue, alpha)
// quintuples. channelOK is applied to every element except the leading time
// value of each quintuple; time tags are unrestricted.
func checkColor(values []float64, channelOK func(float64) bool, rangeMsg string) error {
	if len(values) != 4 && len(values)%5 != 0 {
		return Issues{NewIssue(CodeInvalidLength, msgColorLength)}
	}
	if err := checkFinite(values); err != nil {
		return err
	}
	if len(values) == 4 {
		for i, v := range values {
			if !channelOK(v) {
				return Issues{IssueAt(i, CodeOutOfRange, rangeMsg)}
			}
		}
		return nil
	}
	for i := 0; i < len(values); i += 5 {
		for j := i + 1; j < i+5; j++ {
			if !channelOK(values[j]) {
				return Issues{IssueAt(j, CodeOutOfRange, rangeMsg)}
			}
		}
	}
	return nil
}

// byteChannel accepts whole numbers in [0,255]. Inputs arrive as float64, so
// "integer" means integral value.
func byteChannel(v float64) bool { return v == math.Trunc(v) && v >= 0 && v <= 255 }

func unitChannel(v float64) bool { return v >= 0 && v <= 1 }

// Rgba is a color with integer channels in [0,255], either a single
// (red, green, blue, alpha) quadruple or time-tagged
// (time, red, green, blue, alpha) quintuples. The zero value is not valid;
// construct via NewRgba.
type Rgba struct {
	values []float64
}

// NewRgba validates the color shape and that every channel is an integer in
// [0,255]. Time tags of quintuple samples are exempt from the channel check.
func NewRgba(values []float64) (Rgba, error) {
	if err := checkColor(values, byteChannel, msgByteChannels); err != nil {
		return Rgba{}, err
	}
	return Rgba{values: copyValues(values)}, nil
}

// Values returns a copy of the stored elements in original order.
func (r Rgba) Values() []float64 { return copyValues(r.values) }

// IsZero reports whether r is the zero value rather than a constructed,
// possibly empty, list.
func (r Rgba) IsZero() bool { return r.values == nil }

// String returns the canonical fragment: a pretty-printed JSON array, one
// element per line.
func (r Rgba) String() string { return jsonFragment(r.values) }

// MarshalJSON returns the same bytes as String.
func (r Rgba) MarshalJSON() ([]byte, error) { return []byte(r.String()), nil }

// Rgbaf is the float-channel twin of Rgba: channels in [0,1], same
// quadruple-or-quintuples shape. The zero value is not valid; construct via
// NewRgbaf.
type Rgbaf struct {
	values []float64
}

// NewRgbaf validates the color shape and that every channel lies in [0,1].
// Time tags of quintuple samples are exempt from the channel check.
func NewRgbaf(values []float64) (Rgbaf, error) {
	if err := checkColor(values, unitChannel, msgFloatChannels); err != nil {
		return Rgbaf{}, err
	}
	return Rgbaf{values: copyValues(values)}, nil
}

func (r Rgbaf) Values() []float64 { return copyValues(r.values) }
func (r Rgbaf) IsZero() bool      { return r.values == nil }
func (r Rgbaf) String() string    { return jsonFragment(r.values) }

func (r Rgbaf) MarshalJSON() ([]byte, error) { return []byte(r.String()), nil }
