// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os/exec"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

const htmlSteps = 3

// Renderer renders an HTML file to a PDF file.
type Renderer interface {
	Render(sourcePath, outputPath string) error
}

// RendererProbe checks whether an HTML rendering capability exists on the
// host and returns it. A probe failure means the capability is absent; it is
// not a conversion error.
type RendererProbe func() (Renderer, error)

// HTMLConverter renders HTML to PDF when a renderer is available and
// degrades to plain-text conversion of the same source when it is not.
type HTMLConverter struct {
	probe    RendererProbe
	fallback *TextConverter
}

// NewHTMLConverter builds the HTML strategy with the wkhtmltopdf probe and
// the given text converter as fallback.
func NewHTMLConverter(fallback *TextConverter) *HTMLConverter {
	return &HTMLConverter{probe: probeWkhtmltopdf, fallback: fallback}
}

func (c *HTMLConverter) Convert(job types.Job, step StepFunc) error {
	if step == nil {
		step = nopStep
	}

	r, err := c.probe()
	if err != nil {
		// Capability absent on this host: degrade gracefully.
		return c.fallback.Convert(job, step)
	}
	step(1, htmlSteps)

	if err := r.Render(job.SourcePath, job.OutputPath); err != nil {
		return &ConversionError{Kind: types.KindHTML, Path: job.SourcePath, Err: err}
	}
	step(2, htmlSteps)
	step(3, htmlSteps)
	return nil
}

const binWkhtmltopdf = "wkhtmltopdf"

// probeWkhtmltopdf reports the wkhtmltopdf binary as the rendering
// capability when it is on PATH.
func probeWkhtmltopdf() (Renderer, error) {
	if _, err := exec.LookPath(binWkhtmltopdf); err != nil {
		return nil, fmt.Errorf("%s not available: %w", binWkhtmltopdf, err)
	}
	return &wkRenderer{}, nil
}

// wkRenderer drives wkhtmltopdf through its Go wrapper.
type wkRenderer struct{}

func (w *wkRenderer) Render(sourcePath, outputPath string) error {
	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("initializing %s: %w", binWkhtmltopdf, err)
	}
	gen.AddPage(wkhtmltopdf.NewPage(sourcePath))
	if err := gen.Create(); err != nil {
		return fmt.Errorf("rendering %s: %w", sourcePath, err)
	}
	return gen.WriteFile(outputPath)
}
