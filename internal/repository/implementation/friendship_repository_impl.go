package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/mapper"
	"sharenotes-be/internal/model"
	"sharenotes-be/internal/repository/contract"
)

type FriendshipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FriendshipMapper
}

func NewFriendshipRepository(db *gorm.DB) contract.FriendshipRepository {
	return &FriendshipRepositoryImpl{
		db:     db,
		mapper: mapper.NewFriendshipMapper(),
	}
}

func (r *FriendshipRepositoryImpl) Create(ctx context.Context, friendship *entity.Friendship) error {
	m := r.mapper.ToModel(friendship)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*friendship = *r.mapper.ToEntity(m)
	return nil
}

func (r *FriendshipRepositoryImpl) Delete(ctx context.Context, userId, friendId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userId, friendId).
		Delete(&model.Friendship{}).Error
}

func (r *FriendshipRepositoryImpl) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userId, userId).
		Delete(&model.Friendship{}).Error
}

func (r *FriendshipRepositoryImpl) Exists(ctx context.Context, userId, friendId uuid.UUID) (bool, error) {
	var m model.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userId, friendId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FriendshipRepositoryImpl) FriendIDs(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("user_id = ?", userId).
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
