package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	"github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http/response"
)

type activateProviderKeyHandler struct {
	logger    *logrus.Logger
	activator appProviderKey.Activator
}

func NewActivateProviderKeyHandler(logger *logrus.Logger, activator appProviderKey.Activator) Handler {
	return &activateProviderKeyHandler{
		logger:    logger,
		activator: activator,
	}
}

func (h *activateProviderKeyHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	keyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid key ID"})
	}

	entity, err := h.activator.Activate(c.Context(), userID, keyID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "provider key not found"})
		}
		h.logger.WithError(err).Error("failed to activate provider key")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to activate provider key"})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewProviderKeyOutput(entity))
}
