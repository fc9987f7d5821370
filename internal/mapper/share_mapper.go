package mapper

import (
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/model"
)

type ShareMapper struct{}

func NewShareMapper() *ShareMapper {
	return &ShareMapper{}
}

func (m *ShareMapper) ToEntity(s *model.Share) *entity.Share {
	if s == nil {
		return nil
	}
	return &entity.Share{
		Id:         s.Id,
		SenderId:   s.SenderId,
		ReceiverId: s.ReceiverId,
		NoteId:     s.NoteId,
		SentAt:     s.SentAt,
	}
}

func (m *ShareMapper) ToModel(s *entity.Share) *model.Share {
	if s == nil {
		return nil
	}
	return &model.Share{
		Id:         s.Id,
		SenderId:   s.SenderId,
		ReceiverId: s.ReceiverId,
		NoteId:     s.NoteId,
		SentAt:     s.SentAt,
	}
}

func (m *ShareMapper) ToEntities(shares []*model.Share) []*entity.Share {
	entities := make([]*entity.Share, len(shares))
	for i, s := range shares {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
