package mapper

import (
	"time"

	"gorm.io/datatypes"

	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() && !n.UpdatedAt.Equal(n.CreatedAt) {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Note{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Text:      n.Text,
		Date:      time.Time(n.Date),
		Grade:     n.Grade,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Text:      n.Text,
		Date:      datatypes.Date(n.Date),
		Grade:     n.Grade,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
