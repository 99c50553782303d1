package contract

import (
	"context"

	"qa-live-be/internal/entity"

	"github.com/google/uuid"
)

type QARepository interface {
	Create(ctx context.Context, qa *entity.QA) error
	// FindDetail returns the session joined with its host user, or nil when
	// no row matches.
	FindDetail(ctx context.Context, id uuid.UUID) (*entity.QADetail, error)
}
