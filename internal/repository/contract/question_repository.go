package contract

import (
	"context"

	"qa-live-be/internal/entity"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	// FindThread returns every question of the session left-joined with its
	// answers and both user names, newest question first. A question with N
	// answers yields N rows; one with none yields a single row with the
	// answer side nil.
	FindThread(ctx context.Context, qaId uuid.UUID) ([]*entity.ThreadRow, error)
}
