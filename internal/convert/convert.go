// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the per-format conversion strategies: image,
// text, HTML (with text fallback), and office documents via the external
// conversion tool.
package convert

import (
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/office"
	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// StepFunc receives (step, totalSteps) notifications during a conversion.
// Steps are reported in increasing order within one job.
type StepFunc func(step, total int)

// nopStep is substituted when the caller passes a nil StepFunc.
func nopStep(int, int) {}

// Converter transforms one job's source file into a PDF at the job's output
// path, reporting coarse progress through step.
type Converter interface {
	Convert(job types.Job, step StepFunc) error
}

// Defaults builds the production dispatch table mapping each format kind to
// its converter. The office converter shares the given locator and timeout
// configuration.
func Defaults(loc *office.Locator, cfg types.ToolConfig) map[types.FormatKind]Converter {
	text := NewTextConverter()
	return map[types.FormatKind]Converter{
		types.KindImage:  NewImageConverter(),
		types.KindText:   text,
		types.KindHTML:   NewHTMLConverter(text),
		types.KindOffice: NewOfficeConverter(loc, cfg),
	}
}
