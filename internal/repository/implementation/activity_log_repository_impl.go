package implementation

import (
	"context"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/mapper"
	"qa-live-be/internal/model"
	"qa-live-be/internal/repository/contract"
	"qa-live-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ActivityLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityLogMapper
}

func NewActivityLogRepository(db *gorm.DB) contract.ActivityLogRepository {
	return &ActivityLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityLogMapper(),
	}
}

func (r *ActivityLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActivityLogRepositoryImpl) Create(ctx context.Context, log *entity.ActivityLog) error {
	modelLog := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(modelLog).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(modelLog)
	return nil
}

func (r *ActivityLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	var modelLogs []*model.ActivityLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelLogs).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.ActivityLog, len(modelLogs))
	for i, m := range modelLogs {
		logs[i] = r.mapper.ToEntity(m)
	}
	return logs, nil
}
