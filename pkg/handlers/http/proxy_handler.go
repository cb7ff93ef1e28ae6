package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/modelshift-ai/modelshift-gateway/pkg/app/completion"
	"github.com/modelshift-ai/modelshift-gateway/pkg/common"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
	"github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http/request"
	"github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http/response"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
)

type proxyHandler struct {
	logger     *logrus.Logger
	completion completion.Service
	parserPool fastjson.ParserPool
}

func NewProxyHandler(logger *logrus.Logger, completionService completion.Service) Handler {
	return &proxyHandler{
		logger:     logger,
		completion: completionService,
	}
}

// Handle forwards a prompt to the provider named in the request body using
// the caller's stored key for that provider.
func (h *proxyHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	body := c.Body()

	// Cheap provider peek before the full decode so malformed bodies and
	// unknown providers are rejected without allocating the request DTO.
	parser := h.parserPool.Get()
	parsed, err := parser.ParseBytes(body)
	if err != nil {
		h.parserPool.Put(parser)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	provider := string(parsed.GetStringBytes("provider"))
	h.parserPool.Put(parser)

	if provider == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "provider is required"})
	}

	var req request.ProxyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prompt is required"})
	}

	record, err := h.completion.Complete(c.Context(), completion.Request{
		UserID:       userID,
		Provider:     provider,
		Prompt:       req.Prompt,
		Model:        req.Model,
		SystemPrompt: req.SystemPrompt,
		Parameters:   req.Parameters,
	})
	if err != nil {
		return h.handleCompletionError(c, provider, record, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.NewProxyOutput(record))
}

func (h *proxyHandler) handleCompletionError(
	c *fiber.Ctx,
	provider string,
	record *executionDomain.Execution,
	err error,
) error {
	if errors.Is(err, domain.ErrNoActiveProviderKey) {
		return c.Status(fiber.StatusBadRequest).JSON(response.ProxyOutput{
			Success: false,
			Error: &response.ProxyError{
				Category: "no_api_key",
				Message:  "no active API key stored for provider " + provider,
			},
		})
	}

	// Upstream failures carry the provider's status; everything that never
	// produced one is reported as a bad gateway.
	status := fiber.StatusBadGateway
	var upstreamErr *providers.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode > 0 {
		status = upstreamErr.StatusCode
	}

	if record != nil {
		return c.Status(status).JSON(response.NewProxyOutput(record))
	}

	h.logger.WithError(err).WithField("provider", provider).Error("proxy request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(response.ProxyOutput{
		Success: false,
		Error: &response.ProxyError{
			Category: string(providers.CategoryOf(err)),
			Message:  err.Error(),
		},
	})
}

// userIDFromContext reads the user set by the auth middleware.
func userIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(string(common.UserIDContextKey)).(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user not found in context")
	}
	return uuid.Parse(raw)
}
