// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/office"
	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

const officeSteps = 4

// toolLocator abstracts office.Locator for testing.
type toolLocator interface {
	Locate() (office.ToolPath, error)
}

// runner abstracts subprocess execution for testing.
type runner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// execRunner executes commands via os/exec, capturing stderr.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// OfficeConverter converts office documents by invoking the external tool in
// headless mode. The tool writes its output into the target directory named
// after the source base name; the converter renames it to the requested
// output path when they differ.
type OfficeConverter struct {
	locator toolLocator
	run     runner
	timeout time.Duration
}

// NewOfficeConverter builds the office strategy sharing loc across jobs.
func NewOfficeConverter(loc *office.Locator, cfg types.ToolConfig) *OfficeConverter {
	return &OfficeConverter{
		locator: loc,
		run:     execRunner{},
		timeout: cfg.Timeout(),
	}
}

func (c *OfficeConverter) Convert(job types.Job, step StepFunc) error {
	if step == nil {
		step = nopStep
	}

	tool, err := c.locator.Locate()
	if err != nil {
		return err
	}
	step(1, officeSteps)

	outDir := filepath.Dir(job.OutputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return &ConversionError{Kind: types.KindOffice, Path: job.SourcePath, Err: err}
	}
	step(2, officeSteps)

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stderr, err := c.run.Run(ctx, tool.Path,
		"--headless", "--convert-to", "pdf", "--outdir", outDir, job.SourcePath)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &ProcessTimeoutError{Tool: tool.Path, Timeout: c.timeout}
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &ProcessFailedError{
			Tool:     tool.Path,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr),
		}
	}
	step(3, officeSteps)

	// The tool names its output after the source base name.
	base := strings.TrimSuffix(filepath.Base(job.SourcePath), filepath.Ext(job.SourcePath))
	generated := filepath.Join(outDir, base+".pdf")
	if generated != job.OutputPath {
		if err := os.Rename(generated, job.OutputPath); err != nil {
			return &ConversionError{Kind: types.KindOffice, Path: job.SourcePath, Err: err}
		}
	}
	step(4, officeSteps)
	return nil
}
