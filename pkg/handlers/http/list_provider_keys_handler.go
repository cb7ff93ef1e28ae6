package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http/response"
)

type listProviderKeysHandler struct {
	logger *logrus.Logger
	lister appProviderKey.Lister
}

func NewListProviderKeysHandler(logger *logrus.Logger, lister appProviderKey.Lister) Handler {
	return &listProviderKeysHandler{
		logger: logger,
		lister: lister,
	}
}

func (h *listProviderKeysHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	keys, err := h.lister.List(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list provider keys")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list provider keys"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"keys":  response.NewProviderKeyListOutput(keys),
		"count": len(keys),
	})
}
