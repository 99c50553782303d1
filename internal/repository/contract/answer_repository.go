package contract

import (
	"context"

	"qa-live-be/internal/entity"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
}
