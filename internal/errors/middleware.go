package errors

import (
	"errors"

	"github.com/campusly/course-services/walletgateway/internal/constants"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeWalletExisted:       fiber.StatusConflict,
		constants.ErrCodeWalletNotFound:      fiber.StatusNotFound,
		constants.ErrCodeInsufficientBalance: fiber.StatusConflict,
		constants.ErrCodeInvalidAdjustment:   fiber.StatusConflict,
		constants.ErrCodeInvalidAmount:       fiber.StatusUnprocessableEntity,
		constants.ErrCodeInvalidReason:       fiber.StatusUnprocessableEntity,
		constants.ErrCodeOperationFailed:     fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
