package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appExecution "github.com/modelshift-ai/modelshift-gateway/pkg/app/execution"
)

type clearExecutionsHandler struct {
	logger  *logrus.Logger
	deleter appExecution.Deleter
}

func NewClearExecutionsHandler(logger *logrus.Logger, deleter appExecution.Deleter) Handler {
	return &clearExecutionsHandler{
		logger:  logger,
		deleter: deleter,
	}
}

func (h *clearExecutionsHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if err := h.deleter.Clear(c.Context(), userID); err != nil {
		h.logger.WithError(err).Error("failed to clear executions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to clear executions"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
