package implementation

import (
	"context"
	"time"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/mapper"
	"qa-live-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QARepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QAMapper
}

func NewQARepository(db *gorm.DB) contract.QARepository {
	return &QARepositoryImpl{
		db:     db,
		mapper: mapper.NewQAMapper(),
	}
}

func (r *QARepositoryImpl) Create(ctx context.Context, qa *entity.QA) error {
	modelQA := r.mapper.ToModel(qa)
	if err := r.db.WithContext(ctx).Create(modelQA).Error; err != nil {
		return err
	}
	*qa = *r.mapper.ToEntity(modelQA)
	return nil
}

func (r *QARepositoryImpl) FindDetail(ctx context.Context, id uuid.UUID) (*entity.QADetail, error) {
	var row struct {
		Id        uuid.UUID `gorm:"column:id"`
		Name      string    `gorm:"column:name"`
		StartDate time.Time `gorm:"column:start_date"`
		EndDate   time.Time `gorm:"column:end_date"`
		HostId    uuid.UUID `gorm:"column:host_id"`
		HostName  string    `gorm:"column:host_name"`
	}

	err := r.db.WithContext(ctx).Table("qa").
		Select("qa.id, qa.name, qa.start_date, qa.end_date, users.id AS host_id, users.name AS host_name").
		Joins("INNER JOIN users ON users.id = qa.host_id").
		Where("qa.id = ?", id).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	// Scan leaves the struct zeroed when nothing matched.
	if row.Id == uuid.Nil {
		return nil, nil
	}

	return &entity.QADetail{
		Id:        row.Id,
		Name:      row.Name,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		HostId:    row.HostId,
		HostName:  row.HostName,
	}, nil
}
