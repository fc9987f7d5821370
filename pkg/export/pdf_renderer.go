package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"sharenotes-be/internal/entity"
)

type pdfRenderer struct{}

// Render produces a PDF with five blocks in fixed order:
// title, date, content label, body, grade.
func (r *pdfRenderer) Render(note *entity.Note) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(note.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, note.Date.Format(DateLayout), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, "Content:", "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(note.Text), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Grade: %d", note.Grade), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
