package contract

import (
	"context"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/repository/specification"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
}
