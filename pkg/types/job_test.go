// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"testing"
)

func TestNewJob(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		outDir  string
		wantOut string
		wantExt string
	}{
		{
			name:    "default output next to input",
			source:  filepath.Join("docs", "report.TXT"),
			outDir:  "",
			wantOut: filepath.Join("docs", "report.pdf"),
			wantExt: ".txt",
		},
		{
			name:    "explicit output directory",
			source:  filepath.Join("in", "photo.jpeg"),
			outDir:  "out",
			wantOut: filepath.Join("out", "photo.pdf"),
			wantExt: ".jpeg",
		},
		{
			name:    "no extension",
			source:  filepath.Join("in", "README"),
			outDir:  "out",
			wantOut: filepath.Join("out", "README.pdf"),
			wantExt: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := NewJob(tt.source, tt.outDir)
			if job.OutputPath != tt.wantOut {
				t.Errorf("output = %q, want %q", job.OutputPath, tt.wantOut)
			}
			if job.Ext != tt.wantExt {
				t.Errorf("ext = %q, want %q", job.Ext, tt.wantExt)
			}
			if job.SourcePath != tt.source {
				t.Errorf("source = %q, want %q", job.SourcePath, tt.source)
			}
			if job.ID == "" {
				t.Error("job should get a generated ID")
			}
		})
	}
}

func TestNewJobUniqueIDs(t *testing.T) {
	a := NewJob("a.txt", "")
	b := NewJob("a.txt", "")
	if a.ID == b.ID {
		t.Error("jobs for the same file should still get distinct IDs")
	}
}
