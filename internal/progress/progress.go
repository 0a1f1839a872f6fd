// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress normalizes step counts into percentage events.
package progress

import (
	"math"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// Percent converts a (step, total) pair into a percentage clamped to [0,100].
// A non-positive total yields 0.
func Percent(step, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(step) / float64(total)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Report builds a ProgressEvent for one file's conversion step.
func Report(step, total int, file string) types.ProgressEvent {
	return types.ProgressEvent{
		Percent: Percent(step, total),
		File:    file,
	}
}
