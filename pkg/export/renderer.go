package export

import (
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/pkg/apperror"
)

// Renderer produces the document bytes for one format.
type Renderer interface {
	Render(note *entity.Note) ([]byte, error)
}

// NewRenderer returns the renderer for the given format.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return &textRenderer{}, nil
	case FormatPDF:
		return &pdfRenderer{}, nil
	case FormatDocx:
		return &docxRenderer{}, nil
	default:
		return nil, apperror.UnsupportedFormat("unsupported download format %q", string(f))
	}
}

// Render is a convenience wrapper: parse-free rendering for a known format.
func Render(note *entity.Note, f Format) ([]byte, error) {
	r, err := NewRenderer(f)
	if err != nil {
		return nil, err
	}
	return r.Render(note)
}
