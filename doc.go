package goczml

// Package goczml provides:
//
// - Validated value types for CZML properties (colors, coordinate lists, enumerated modes, references, fonts, URIs, time intervals)
// - A stable error model via Issues (code, message, element index)
// - Canonical JSON fragment rendering: String and MarshalJSON emit byte-identical fragments
// - Time normalization for native, Julian-date, and ISO 8601 inputs (FormatDateTime)
//
// Design policy:
// - Keep only public value types in the root package; values are immutable after construction.
// - Place manifest decoding under manifest/ and the CLI under cmd/czml.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  color, err := goczml.NewRgba([]float64{255, 0, 0, 255})
//  pos, err := goczml.NewCartesian3([]float64{0, 15000000, 30000000, 10000000})
//
//  span, err := goczml.NewTimeInterval(goczml.ISO("2019-01-01T12:00:00Z"), nil)
//  fmt.Println(span) // "2019-01-01T12:00:00Z/9999-12-31T24:00:00Z"
//
