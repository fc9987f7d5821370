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
	"sharenotes-be/internal/repository/specification"
)

type ShareRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShareMapper
}

func NewShareRepository(db *gorm.DB) contract.ShareRepository {
	return &ShareRepositoryImpl{
		db:     db,
		mapper: mapper.NewShareMapper(),
	}
}

func (r *ShareRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShareRepositoryImpl) Create(ctx context.Context, share *entity.Share) error {
	m := r.mapper.ToModel(share)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*share = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShareRepositoryImpl) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userId, userId).
		Delete(&model.Share{}).Error
}

func (r *ShareRepositoryImpl) DeleteAllForNote(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.Share{}).Error
}

func (r *ShareRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Share, error) {
	var m model.Share
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShareRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Share, error) {
	var models []*model.Share
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
