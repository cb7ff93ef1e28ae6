package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	"github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http/request"
	"github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http/response"
)

type createProviderKeyHandler struct {
	logger       *logrus.Logger
	creator      appProviderKey.Creator
	providersCfg config.ProvidersConfig
}

func NewCreateProviderKeyHandler(
	logger *logrus.Logger,
	creator appProviderKey.Creator,
	providersCfg config.ProvidersConfig,
) Handler {
	return &createProviderKeyHandler{
		logger:       logger,
		creator:      creator,
		providersCfg: providersCfg,
	}
}

func (h *createProviderKeyHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req request.CreateProviderKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if _, ok := h.providersCfg.Get(req.Provider); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported provider: " + req.Provider})
	}
	if req.APIKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "api_key is required"})
	}

	entity, err := h.creator.Create(c.Context(), userID, req.Provider, req.APIKey)
	if err != nil {
		h.logger.WithError(err).Error("failed to create provider key")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create provider key"})
	}

	return c.Status(fiber.StatusCreated).JSON(response.NewProviderKeyOutput(entity))
}
