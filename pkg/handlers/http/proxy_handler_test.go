package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/modelshift-ai/modelshift-gateway/pkg/app/completion"
	completionMocks "github.com/modelshift-ai/modelshift-gateway/pkg/app/completion/mocks"
	"github.com/modelshift-ai/modelshift-gateway/pkg/common"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newProxyApp(service completion.Service, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(string(common.UserIDContextKey), userID.String())
		return c.Next()
	})
	handler := NewProxyHandler(testLogger(), service)
	app.Post("/api/v1/proxy", handler.Handle)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (map[string]interface{}, int) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded, resp.StatusCode
}

func TestProxyHandler_Success(t *testing.T) {
	userID := uuid.New()
	service := new(completionMocks.MockService)
	service.On("Complete", mock.Anything, mock.MatchedBy(func(req completion.Request) bool {
		return req.UserID == userID && req.Provider == "openai" && req.Prompt == "hello"
	})).Return(&executionDomain.Execution{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		Success:  true,
		Response: "hi there",
		Usage:    executionDomain.TokenUsage{PromptTokens: 3, CompletionTokens: 5, TotalTokens: 8},
	}, nil)

	app := newProxyApp(service, userID)
	body, status := postJSON(t, app, "/api/v1/proxy", map[string]interface{}{
		"provider": "openai",
		"prompt":   "hello",
	})

	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "hi there", body["response"])
	metrics, ok := body["metrics"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", metrics["model"])
	assert.Equal(t, float64(8), metrics["total_tokens"])
}

func TestProxyHandler_MissingProvider(t *testing.T) {
	service := new(completionMocks.MockService)
	app := newProxyApp(service, uuid.New())

	body, status := postJSON(t, app, "/api/v1/proxy", map[string]interface{}{
		"prompt": "hello",
	})

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "provider")
	service.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestProxyHandler_MissingPrompt(t *testing.T) {
	service := new(completionMocks.MockService)
	app := newProxyApp(service, uuid.New())

	body, status := postJSON(t, app, "/api/v1/proxy", map[string]interface{}{
		"provider": "openai",
	})

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "prompt")
}

func TestProxyHandler_MalformedBody(t *testing.T) {
	service := new(completionMocks.MockService)
	app := newProxyApp(service, uuid.New())

	req := httptest.NewRequest("POST", "/api/v1/proxy", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestProxyHandler_NoActiveKey(t *testing.T) {
	service := new(completionMocks.MockService)
	service.On("Complete", mock.Anything, mock.Anything).Return(nil, domain.ErrNoActiveProviderKey)

	app := newProxyApp(service, uuid.New())
	body, status := postJSON(t, app, "/api/v1/proxy", map[string]interface{}{
		"provider": "gemini",
		"prompt":   "hello",
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "no_api_key", errObj["category"])
}

func TestProxyHandler_UpstreamErrorKeepsStatus(t *testing.T) {
	record := &executionDomain.Execution{
		Provider:      "openai",
		Model:         "gpt-4o-mini",
		Success:       false,
		ErrorCategory: "rate_limited",
		ErrorMessage:  "rate limit exceeded, slow down and retry later",
	}
	service := new(completionMocks.MockService)
	service.On("Complete", mock.Anything, mock.Anything).Return(record, &providers.UpstreamError{
		Provider:   "openai",
		StatusCode: 429,
		Category:   providers.CategoryRateLimited,
		Message:    record.ErrorMessage,
	})

	app := newProxyApp(service, uuid.New())
	body, status := postJSON(t, app, "/api/v1/proxy", map[string]interface{}{
		"provider": "openai",
		"prompt":   "hello",
	})

	assert.Equal(t, 429, status)
	assert.Equal(t, false, body["success"])
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "rate_limited", errObj["category"])
}

func TestProxyHandler_Unauthenticated(t *testing.T) {
	service := new(completionMocks.MockService)
	app := fiber.New()
	handler := NewProxyHandler(testLogger(), service)
	app.Post("/api/v1/proxy", handler.Handle)

	_, status := postJSON(t, app, "/api/v1/proxy", map[string]interface{}{
		"provider": "openai",
		"prompt":   "hello",
	})

	assert.Equal(t, 401, status)
}
