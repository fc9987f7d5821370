package export

import (
	"fmt"

	"sharenotes-be/internal/entity"
)

type textRenderer struct{}

// Render produces the canonical plain-text block:
//
//	Title: {title} {date}
//
//	Content:
//	{text}
//
//	Grade: {grade}
func (r *textRenderer) Render(note *entity.Note) ([]byte, error) {
	content := fmt.Sprintf("Title: %s %s\n\nContent: \n%s\n\nGrade: %d",
		note.Title,
		note.Date.Format(DateLayout),
		note.Text,
		note.Grade,
	)
	return []byte(content), nil
}
