// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/jung-kurt/gofpdf"

	// Decoders for the supported image formats. BMP and TIFF come from
	// golang.org/x/image; the rest are standard library.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "image/gif"
	_ "image/jpeg"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

const imageSteps = 4

// ImageConverter renders an image onto a single PDF page sized to the image.
type ImageConverter struct{}

// NewImageConverter builds the image conversion strategy.
func NewImageConverter() *ImageConverter { return &ImageConverter{} }

func (c *ImageConverter) Convert(job types.Job, step StepFunc) error {
	if step == nil {
		step = nopStep
	}

	f, err := os.Open(job.SourcePath)
	if err != nil {
		return &ConversionError{Kind: types.KindImage, Path: job.SourcePath, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return &ConversionError{Kind: types.KindImage, Path: job.SourcePath, Err: err}
	}
	step(1, imageSteps)

	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()
	step(2, imageSteps)

	// Re-encode to PNG so all decoded formats (including BMP and TIFF,
	// which the PDF library cannot embed directly) take the same path.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return &ConversionError{Kind: types.KindImage, Path: job.SourcePath, Err: err}
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(job.SourcePath, opts, &buf)
	pdf.ImageOptions(job.SourcePath, 0, 0, w, h, false, opts, 0, "")
	if pdf.Err() {
		return &ConversionError{Kind: types.KindImage, Path: job.SourcePath, Err: pdf.Error()}
	}
	step(3, imageSteps)

	if err := pdf.OutputFileAndClose(job.OutputPath); err != nil {
		return &ConversionError{Kind: types.KindImage, Path: job.SourcePath, Err: err}
	}
	step(4, imageSteps)
	return nil
}
