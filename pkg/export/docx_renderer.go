package export

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"

	"sharenotes-be/internal/entity"
)

type docxRenderer struct{}

// Render produces a word-processor document with four paragraphs mirroring
// the PDF ordering: bold title, date, content label with the body text on
// the next line, grade.
func (r *docxRenderer) Render(note *entity.Note) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(note.Title).Bold()

	date := doc.AddParagraph()
	date.AddText(note.Date.Format(DateLayout))

	content := doc.AddParagraph()
	label := content.AddText("Content:")
	// w:br pushes the body below the label inside the same paragraph.
	label.Children = append(label.Children, &docx.BarterRabbet{})
	content.AddText(note.Text)

	grade := doc.AddParagraph()
	grade.AddText(fmt.Sprintf("Grade: %d", note.Grade))

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
