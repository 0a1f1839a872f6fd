// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"time"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// ConversionError wraps a failure internal to a converter: malformed input,
// I/O failure, or rendering failure.
type ConversionError struct {
	Kind types.FormatKind
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s conversion of %s failed: %v", e.Kind, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ProcessTimeoutError reports that the external tool exceeded its time
// bound. Distinct from ProcessFailedError so callers can tell "too slow"
// from "tool rejected the input".
type ProcessTimeoutError struct {
	Tool    string
	Timeout time.Duration
}

func (e *ProcessTimeoutError) Error() string {
	return fmt.Sprintf("%s did not finish within %s", e.Tool, e.Timeout)
}

// ProcessFailedError reports a non-zero exit from the external tool.
type ProcessFailedError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ProcessFailedError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
}
