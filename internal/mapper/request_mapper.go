package mapper

import (
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/model"
)

type RequestMapper struct{}

func NewRequestMapper() *RequestMapper {
	return &RequestMapper{}
}

func (m *RequestMapper) ToEntity(r *model.Request) *entity.Request {
	if r == nil {
		return nil
	}
	return &entity.Request{
		Id:         r.Id,
		SenderId:   r.SenderId,
		ReceiverId: r.ReceiverId,
		Status:     entity.RequestStatus(r.Status),
		SentAt:     r.SentAt,
	}
}

func (m *RequestMapper) ToModel(r *entity.Request) *model.Request {
	if r == nil {
		return nil
	}
	return &model.Request{
		Id:         r.Id,
		SenderId:   r.SenderId,
		ReceiverId: r.ReceiverId,
		Status:     string(r.Status),
		SentAt:     r.SentAt,
	}
}

func (m *RequestMapper) ToEntities(requests []*model.Request) []*entity.Request {
	entities := make([]*entity.Request, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
