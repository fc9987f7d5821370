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

type RequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestMapper
}

func NewRequestRepository(db *gorm.DB) contract.RequestRepository {
	return &RequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestMapper(),
	}
}

func (r *RequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, request *entity.Request) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequestRepositoryImpl) Update(ctx context.Context, request *entity.Request) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Request{}, id).Error
}

func (r *RequestRepositoryImpl) DeleteBetweenUsers(ctx context.Context, a, b uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Delete(&model.Request{}).Error
}

func (r *RequestRepositoryImpl) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userId, userId).
		Delete(&model.Request{}).Error
}

func (r *RequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Request, error) {
	var m model.Request
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Request, error) {
	var models []*model.Request
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
