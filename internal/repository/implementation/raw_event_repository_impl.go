package implementation

import (
	"context"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/mapper"
	"edge-journal-be/internal/model"
	"edge-journal-be/internal/repository/contract"
	"edge-journal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RawEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RawEventMapper
}

func NewRawEventRepository(db *gorm.DB) contract.RawEventRepository {
	return &RawEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewRawEventMapper(),
	}
}

func (r *RawEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RawEventRepositoryImpl) Create(ctx context.Context, event *entity.RawEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *RawEventRepositoryImpl) CreateBulk(ctx context.Context, events []*entity.RawEvent) error {
	if len(events) == 0 {
		return nil
	}
	models := make([]*model.RawEvent, len(events))
	for i, e := range events {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	// Update generated IDs back to entities
	for i, m := range models {
		*events[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *RawEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RawEvent, error) {
	var models []*model.RawEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RawEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.RawEvent{}).Count(&count).Error
	return count, err
}
