// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain types shared across the conversion
// engine: format descriptors, jobs, outcomes, progress events, and
// configuration.
package types

// FormatKind is the tagged variant selecting the conversion strategy for an
// input file. Dispatch is a static table keyed by kind, never a name lookup.
type FormatKind string

const (
	KindImage  FormatKind = "image"
	KindText   FormatKind = "text"
	KindHTML   FormatKind = "html"
	KindOffice FormatKind = "office"
)

// FormatDescriptor maps a set of file extensions to a conversion strategy
// and a human-readable category name. Descriptors are constructed once at
// startup and never mutated; extension sets are disjoint across descriptors.
type FormatDescriptor struct {
	// Extensions lists the claimed extensions in lowercase with a leading
	// dot (e.g. ".jpg").
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Kind selects the converter used for files matching this descriptor.
	Kind FormatKind `json:"kind" yaml:"kind"`

	// DisplayName is the category label shown to users (e.g. "Images").
	DisplayName string `json:"display_name" yaml:"display_name"`
}
