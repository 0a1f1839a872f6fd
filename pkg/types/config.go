// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// defaultToolTimeout bounds a single external office conversion.
const defaultToolTimeout = 120 * time.Second

// ToolConfig holds settings for the external office-conversion tool.
type ToolConfig struct {
	// Path pins the tool binary explicitly, skipping platform discovery.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// TimeoutSeconds bounds one tool invocation (default 120).
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout returns the configured tool timeout, falling back to the default
// when unset or non-positive.
func (c ToolConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultToolTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OutputConfig holds settings for PDF output placement.
type OutputConfig struct {
	// Dir is the directory for generated PDFs. Empty means each output is
	// written next to its input file.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled controls whether outcomes are recorded (default true).
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the history database.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Config is the root configuration for file2pdf.
type Config struct {
	Tool    ToolConfig    `json:"tool" yaml:"tool"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	History HistoryConfig `json:"history" yaml:"history"`
}
