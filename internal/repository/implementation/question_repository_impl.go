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

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.Question) error {
	modelQuestion := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(modelQuestion).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(modelQuestion)
	return nil
}

type threadRowModel struct {
	QuestionId      uuid.UUID  `gorm:"column:question_id"`
	AskingUserId    uuid.UUID  `gorm:"column:asking_user_id"`
	AskedBy         string     `gorm:"column:asked_by"`
	QuestionText    string     `gorm:"column:question_text"`
	QuestionDate    time.Time  `gorm:"column:question_date"`
	AnswerId        *uuid.UUID `gorm:"column:answer_id"`
	AnsweringUserId *uuid.UUID `gorm:"column:answering_user_id"`
	AnsweredBy      *string    `gorm:"column:answered_by"`
	AnswerText      *string    `gorm:"column:answer_text"`
	AnswerImageURL  *string    `gorm:"column:answer_image_url"`
	AnswerDate      *time.Time `gorm:"column:answer_date"`
}

func (r *QuestionRepositoryImpl) FindThread(ctx context.Context, qaId uuid.UUID) ([]*entity.ThreadRow, error) {
	var rows []threadRowModel

	err := r.db.WithContext(ctx).Table("questions").
		Select(`questions.id AS question_id,
			questions.user_id AS asking_user_id,
			askers.name AS asked_by,
			questions.text AS question_text,
			questions.date_created AS question_date,
			answers.id AS answer_id,
			answers.answering_user_id AS answering_user_id,
			answerers.name AS answered_by,
			answers.text AS answer_text,
			answers.image_url AS answer_image_url,
			answers.date_created AS answer_date`).
		Joins("LEFT JOIN answers ON questions.id = answers.question_id").
		Joins("INNER JOIN users askers ON askers.id = questions.user_id").
		Joins("LEFT JOIN users answerers ON answerers.id = answers.answering_user_id").
		Where("questions.qa_id = ?", qaId).
		Order("questions.date_created DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.ThreadRow, len(rows))
	for i, row := range rows {
		result[i] = &entity.ThreadRow{
			QuestionId:      row.QuestionId,
			AskingUserId:    row.AskingUserId,
			AskedBy:         row.AskedBy,
			QuestionText:    row.QuestionText,
			QuestionDate:    row.QuestionDate,
			AnswerId:        row.AnswerId,
			AnsweringUserId: row.AnsweringUserId,
			AnsweredBy:      row.AnsweredBy,
			AnswerText:      row.AnswerText,
			AnswerImageURL:  row.AnswerImageURL,
			AnswerDate:      row.AnswerDate,
		}
	}
	return result, nil
}
