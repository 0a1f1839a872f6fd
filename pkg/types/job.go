// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Job is one file's conversion task within a batch. Jobs are immutable once
// created and consumed exactly once by the worker.
type Job struct {
	// ID uniquely identifies the job within and across batches.
	ID string `json:"id" yaml:"id"`

	// SourcePath is the input file to convert.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the resolved destination for the generated PDF.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Ext is the lowercase extension of the source file, with leading dot.
	Ext string `json:"ext" yaml:"ext"`
}

// NewJob builds a Job for sourcePath. The output file is named after the
// source's base name with a .pdf extension, placed in outDir, or in the
// source's own directory when outDir is empty.
func NewJob(sourcePath, outDir string) Job {
	if outDir == "" {
		outDir = filepath.Dir(sourcePath)
	}
	ext := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(filepath.Base(sourcePath), ext)
	return Job{
		ID:         uuid.NewString(),
		SourcePath: sourcePath,
		OutputPath: filepath.Join(outDir, base+".pdf"),
		Ext:        strings.ToLower(ext),
	}
}

// Outcome records the terminal result of one job. Error is non-empty exactly
// when Success is false. Outcomes are never mutated after creation.
type Outcome struct {
	Job     Job    `json:"job" yaml:"job"`
	Success bool   `json:"success" yaml:"success"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ProgressEvent reports normalized conversion progress for one file.
// Percent is always within [0,100] and non-decreasing within a job.
type ProgressEvent struct {
	Percent int    `json:"percent" yaml:"percent"`
	File    string `json:"file" yaml:"file"`
}
