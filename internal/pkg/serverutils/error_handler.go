package serverutils

import (
	"errors"

	"qa-live-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates typed errors bubbling out of the
// controllers into the response envelope. The outcome lives in the body;
// transport status stays 200 for every reachable route.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *apperror.ValidationError
		var notFoundErr *apperror.NotFoundError
		var storageErr *apperror.StorageError

		switch {
		case errors.As(err, &validationErr):
			return ctx.JSON(FailedResponse(validationErr.Message))
		case errors.As(err, &notFoundErr):
			return ctx.JSON(EmptySuccessResponse(notFoundErr.Message))
		case errors.As(err, &storageErr):
			// The cause was already logged where it happened.
			return ctx.JSON(FailedResponse(storageErr.Message))
		default:
			return ctx.JSON(FailedResponse("Unexpected server error"))
		}
	}
}
