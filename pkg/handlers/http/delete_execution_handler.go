package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appExecution "github.com/modelshift-ai/modelshift-gateway/pkg/app/execution"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
)

type deleteExecutionHandler struct {
	logger  *logrus.Logger
	deleter appExecution.Deleter
}

func NewDeleteExecutionHandler(logger *logrus.Logger, deleter appExecution.Deleter) Handler {
	return &deleteExecutionHandler{
		logger:  logger,
		deleter: deleter,
	}
}

func (h *deleteExecutionHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid execution ID"})
	}

	if err := h.deleter.Delete(c.Context(), userID, id); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "execution not found"})
		}
		h.logger.WithError(err).Error("failed to delete execution")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete execution"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
