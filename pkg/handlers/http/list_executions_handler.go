package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appExecution "github.com/modelshift-ai/modelshift-gateway/pkg/app/execution"
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

const maxListLimit = 200

type listExecutionsHandler struct {
	logger *logrus.Logger
	lister appExecution.Lister
}

func NewListExecutionsHandler(logger *logrus.Logger, lister appExecution.Lister) Handler {
	return &listExecutionsHandler{
		logger: logger,
		lister: lister,
	}
}

// Handle lists the caller's execution history, newest first. Supports
// provider and success filters plus offset/limit paging.
func (h *listExecutionsHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	filter := executionDomain.ListFilter{
		Provider: c.Query("provider"),
	}
	if raw := c.Query("success"); raw != "" {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid success filter"})
		}
		filter.Success = &success
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid offset"})
		}
		filter.Offset = offset
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		filter.Limit = limit
	}

	records, total, err := h.lister.List(c.Context(), userID, filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list executions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list executions"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"executions": records,
		"total":      total,
	})
}
