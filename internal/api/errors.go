package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewErrorHandler maps everything a handler can return onto the envelope:
// fiber errors keep their status, missing records become 404, duplicate
// unique keys 409, anything unexpected a non-leaking 500.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				log.WithFields(logrus.Fields{
					"path":   c.Path(),
					"status": fe.Code,
				}).Error(fe.Message)
			}
			return c.Status(fe.Code).JSON(Error(fe.Message))
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Error("Record not found"))
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(Error("Duplicate value for unique field"))
		}

		log.WithFields(logrus.Fields{"path": c.Path()}).WithError(err).Error("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(Error("Internal Server Error"))
	}
}
