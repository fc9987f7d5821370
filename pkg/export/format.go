// Package export renders notes into downloadable documents. Renderers are
// pure functions of the note; transport metadata is computed from the
// rendered bytes so the advertised length can never drift from the payload.
package export

import (
	"strings"

	"sharenotes-be/internal/pkg/apperror"
)

// Format is the closed set of supported download formats.
type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

// DateLayout is the date rendering used in document bodies and filenames.
const DateLayout = "2006-01-02"

// ParseFormat maps a client-supplied type string onto a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatPDF, FormatDocx:
		return f, nil
	default:
		return "", apperror.UnsupportedFormat("unsupported download format %q", s)
	}
}

// ContentType returns the MIME type sent with a download of this format.
func (f Format) ContentType() string {
	switch f {
	case FormatText:
		return "text/plain"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Ext returns the filename extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}
