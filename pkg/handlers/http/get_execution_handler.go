package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appExecution "github.com/modelshift-ai/modelshift-gateway/pkg/app/execution"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
)

type getExecutionHandler struct {
	logger *logrus.Logger
	finder appExecution.Finder
}

func NewGetExecutionHandler(logger *logrus.Logger, finder appExecution.Finder) Handler {
	return &getExecutionHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getExecutionHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid execution ID"})
	}

	record, err := h.finder.Find(c.Context(), userID, id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "execution not found"})
		}
		h.logger.WithError(err).Error("failed to fetch execution")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch execution"})
	}

	return c.Status(fiber.StatusOK).JSON(record)
}
