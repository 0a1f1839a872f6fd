// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format maps file extensions to conversion strategies.
package format

import (
	"fmt"
	"strings"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// UnsupportedFormatError reports an extension no descriptor claims.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// Registry resolves file extensions to converter kinds. It is built once and
// read-only afterwards; lookups are safe for concurrent use.
type Registry struct {
	descriptors []types.FormatDescriptor
	byExt       map[string]types.FormatKind
}

// NewRegistry builds the registry with the supported format descriptors.
func NewRegistry() *Registry {
	descriptors := []types.FormatDescriptor{
		{
			Extensions:  []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff"},
			Kind:        types.KindImage,
			DisplayName: "Images",
		},
		{
			Extensions:  []string{".txt", ".md", ".csv"},
			Kind:        types.KindText,
			DisplayName: "Text",
		},
		{
			Extensions:  []string{".html", ".htm"},
			Kind:        types.KindHTML,
			DisplayName: "Web pages",
		},
		{
			Extensions: []string{
				".doc", ".docx", ".odt", ".rtf",
				".xls", ".xlsx", ".ods",
				".ppt", ".pptx", ".odp",
			},
			Kind:        types.KindOffice,
			DisplayName: "Office documents",
		},
	}

	byExt := make(map[string]types.FormatKind)
	for _, d := range descriptors {
		for _, ext := range d.Extensions {
			byExt[ext] = d.Kind
		}
	}

	return &Registry{descriptors: descriptors, byExt: byExt}
}

// Resolve returns the converter kind for ext. The match is case-insensitive
// and tolerates a missing leading dot. Returns UnsupportedFormatError when
// no descriptor claims the extension.
func (r *Registry) Resolve(ext string) (types.FormatKind, error) {
	normalized := strings.ToLower(ext)
	if normalized != "" && !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	if kind, ok := r.byExt[normalized]; ok {
		return kind, nil
	}
	return "", &UnsupportedFormatError{Ext: ext}
}

// Descriptors returns a copy of the descriptor list, in registration order,
// for building user-facing format filters and labels.
func (r *Registry) Descriptors() []types.FormatDescriptor {
	out := make([]types.FormatDescriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}
