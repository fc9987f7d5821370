package mapper

import (
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

type FriendshipMapper struct{}

func NewFriendshipMapper() *FriendshipMapper {
	return &FriendshipMapper{}
}

func (m *FriendshipMapper) ToEntity(f *model.Friendship) *entity.Friendship {
	if f == nil {
		return nil
	}
	return &entity.Friendship{
		Id:        f.Id,
		UserId:    f.UserId,
		FriendId:  f.FriendId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FriendshipMapper) ToModel(f *entity.Friendship) *model.Friendship {
	if f == nil {
		return nil
	}
	return &model.Friendship{
		Id:        f.Id,
		UserId:    f.UserId,
		FriendId:  f.FriendId,
		CreatedAt: f.CreatedAt,
	}
}
