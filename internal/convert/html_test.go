// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// fakeRenderer records the paths it was asked to render and optionally fails.
type fakeRenderer struct {
	source string
	output string
	err    error
}

func (f *fakeRenderer) Render(sourcePath, outputPath string) error {
	f.source = sourcePath
	f.output = outputPath
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outputPath, []byte("%PDF-1.4 rendered"), 0o644)
}

func htmlConverter(probe RendererProbe) *HTMLConverter {
	return &HTMLConverter{probe: probe, fallback: NewTextConverter()}
}

func TestHTMLConvertWithRenderer(t *testing.T) {
	job := writeSource(t, "page.html", []byte("<h1>Title</h1>"))

	renderer := &fakeRenderer{}
	c := htmlConverter(func() (Renderer, error) { return renderer, nil })

	rec := &stepRecorder{}
	require.NoError(t, c.Convert(job, rec.record))

	assert.Equal(t, job.SourcePath, renderer.source)
	assert.Equal(t, job.OutputPath, renderer.output)
	rec.assertMonotonic(t)
	assert.Equal(t, [2]int{htmlSteps, htmlSteps}, rec.steps[len(rec.steps)-1])
}

// When the rendering capability is absent, conversion degrades to the text
// strategy against the same source and still succeeds.
func TestHTMLConvertFallsBackWithoutCapability(t *testing.T) {
	source := []byte("<h1>Title</h1>\n<p>Body</p>\n")

	htmlJob := writeSource(t, "page.html", source)
	c := htmlConverter(func() (Renderer, error) { return nil, errors.New("renderer unavailable") })
	require.NoError(t, c.Convert(htmlJob, nil))
	requirePDF(t, htmlJob.OutputPath)

	// Same category of outcome as running the text converter directly.
	textJob := writeSource(t, "page.txt", source)
	require.NoError(t, NewTextConverter().Convert(textJob, nil))
	requirePDF(t, textJob.OutputPath)
}

// A renderer that fails on the content is a conversion error, not a
// fallback trigger.
func TestHTMLConvertRenderFailure(t *testing.T) {
	job := writeSource(t, "page.html", []byte("<h1>Title</h1>"))

	renderer := &fakeRenderer{err: errors.New("render crashed")}
	c := htmlConverter(func() (Renderer, error) { return renderer, nil })

	err := c.Convert(job, nil)
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, types.KindHTML, convErr.Kind)
}
