package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	GradeMin = 0
	GradeMax = 10
)

type Note struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Text      string
	Date      time.Time // date only, the time part is not significant
	Grade     int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ValidGrade reports whether g is inside the closed [GradeMin, GradeMax] range.
func ValidGrade(g int) bool {
	return g >= GradeMin && g <= GradeMax
}
