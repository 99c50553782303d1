package contract

import (
	"context"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/repository/specification"
)

type UserRepository interface {
	// Create inserts the user. The users.name unique index is the sole
	// guard against concurrent creation of the same name; callers must be
	// prepared for a unique-violation error and fall back to a re-read.
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
