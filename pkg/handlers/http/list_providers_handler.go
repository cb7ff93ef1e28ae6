package http

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
)

type providerOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DefaultModel string `json:"default_model"`
	SDK          bool   `json:"sdk"`
}

type listProvidersHandler struct {
	logger       *logrus.Logger
	providersCfg config.ProvidersConfig
}

func NewListProvidersHandler(logger *logrus.Logger, providersCfg config.ProvidersConfig) Handler {
	return &listProvidersHandler{
		logger:       logger,
		providersCfg: providersCfg,
	}
}

// Handle returns the provider catalog from configuration. No secrets are
// involved, so the endpoint needs no per-user state.
func (h *listProvidersHandler) Handle(c *fiber.Ctx) error {
	out := make([]providerOutput, 0, len(h.providersCfg.Providers))
	for id, cfg := range h.providersCfg.Providers {
		out = append(out, providerOutput{
			ID:           id,
			Name:         cfg.Name,
			DefaultModel: cfg.DefaultModel,
			SDK:          cfg.SDK,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"providers": out})
}
