package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sharenotes-be/internal/pkg/apperror"
	"sharenotes-be/internal/pkg/logger"
)

// NewErrorHandler maps domain errors to HTTP statuses. Not-found lookups
// become 404, rejected input 400, everything else a logged 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case apperror.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(appErr.Message))
			case apperror.KindInvalidArgument, apperror.KindUnsupportedFormat:
				return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(appErr.Message))
			}
		}

		log.Error("server", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
