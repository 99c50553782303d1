package implementation

import (
	"context"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/mapper"
	"qa-live-be/internal/repository/contract"

	"gorm.io/gorm"
)

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerMapper(),
	}
}

func (r *AnswerRepositoryImpl) Create(ctx context.Context, answer *entity.Answer) error {
	modelAnswer := r.mapper.ToModel(answer)
	if err := r.db.WithContext(ctx).Create(modelAnswer).Error; err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(modelAnswer)
	return nil
}
