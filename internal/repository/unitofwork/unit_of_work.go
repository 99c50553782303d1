package unitofwork

import (
	"context"

	"qa-live-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	QARepository() contract.QARepository
	QuestionRepository() contract.QuestionRepository
	AnswerRepository() contract.AnswerRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
