// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

const (
	textSteps = 5

	textFont     = "Courier"
	textFontSize = 10.0
	// Layout in points: 1-inch margins on Letter, 14pt line spacing.
	textMargin     = 72.0
	textLineHeight = 14.0
)

// TextConverter lays source text out on Letter pages with a fixed-width
// built-in font, paginating when content runs past the bottom margin.
type TextConverter struct{}

// NewTextConverter builds the text conversion strategy.
func NewTextConverter() *TextConverter { return &TextConverter{} }

func (c *TextConverter) Convert(job types.Job, step StepFunc) error {
	if step == nil {
		step = nopStep
	}

	data, err := os.ReadFile(job.SourcePath)
	if err != nil {
		return &ConversionError{Kind: types.KindText, Path: job.SourcePath, Err: err}
	}
	// Undecodable bytes are replaced, never fatal.
	text := strings.ToValidUTF8(string(data), "�")
	step(1, textSteps)

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(textFont, "", textFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	step(2, textSteps)

	_, pageHeight := pdf.GetPageSize()
	y := textMargin
	step(3, textSteps)

	for _, line := range strings.Split(text, "\n") {
		if y > pageHeight-textMargin {
			pdf.AddPage()
			y = textMargin
		}
		pdf.Text(textMargin, y, tr(strings.TrimRight(line, "\r")))
		y += textLineHeight
	}
	step(4, textSteps)

	if err := pdf.OutputFileAndClose(job.OutputPath); err != nil {
		return &ConversionError{Kind: types.KindText, Path: job.SourcePath, Err: err}
	}
	step(5, textSteps)
	return nil
}
