package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
)

type deleteProviderKeyHandler struct {
	logger  *logrus.Logger
	deleter appProviderKey.Deleter
}

func NewDeleteProviderKeyHandler(logger *logrus.Logger, deleter appProviderKey.Deleter) Handler {
	return &deleteProviderKeyHandler{
		logger:  logger,
		deleter: deleter,
	}
}

func (h *deleteProviderKeyHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	keyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid key ID"})
	}

	if err := h.deleter.Delete(c.Context(), userID, keyID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "provider key not found"})
		}
		h.logger.WithError(err).Error("failed to delete provider key")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete provider key"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
