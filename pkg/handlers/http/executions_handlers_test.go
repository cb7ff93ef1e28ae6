package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	executionMocks "github.com/modelshift-ai/modelshift-gateway/pkg/app/execution/mocks"
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
)

func TestListExecutionsHandler_FiltersParsed(t *testing.T) {
	userID := uuid.New()
	lister := new(executionMocks.MockLister)
	lister.On("List", mock.Anything, userID, mock.MatchedBy(func(f executionDomain.ListFilter) bool {
		return f.Provider == "openai" && f.Success != nil && *f.Success &&
			f.Offset == 10 && f.Limit == 20
	})).Return([]executionDomain.Execution{{Provider: "openai", Success: true}}, int64(31), nil)

	app := fiber.New()
	withUser(app, userID)
	app.Get("/api/v1/executions", NewListExecutionsHandler(testLogger(), lister).Handle)

	req := httptest.NewRequest("GET", "/api/v1/executions?provider=openai&success=true&offset=10&limit=20", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, float64(31), body["total"])
}

func TestListExecutionsHandler_InvalidFilter(t *testing.T) {
	lister := new(executionMocks.MockLister)
	app := fiber.New()
	withUser(app, uuid.New())
	app.Get("/api/v1/executions", NewListExecutionsHandler(testLogger(), lister).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/executions?success=maybe", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	lister.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetExecutionHandler_Success(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	finder := new(executionMocks.MockFinder)
	finder.On("Find", mock.Anything, userID, id).Return(&executionDomain.Execution{
		ID:       id,
		UserID:   userID,
		Provider: "anthropic",
		Success:  true,
		Response: "answer",
	}, nil)

	app := fiber.New()
	withUser(app, userID)
	app.Get("/api/v1/executions/:id", NewGetExecutionHandler(testLogger(), finder).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/executions/"+id.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "anthropic", body["provider"])
	assert.Equal(t, "answer", body["response"])
}

func TestClearExecutionsHandler_Success(t *testing.T) {
	userID := uuid.New()
	deleter := new(executionMocks.MockDeleter)
	deleter.On("Clear", mock.Anything, userID).Return(nil)

	app := fiber.New()
	withUser(app, userID)
	app.Delete("/api/v1/executions", NewClearExecutionsHandler(testLogger(), deleter).Handle)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/executions", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	deleter.AssertCalled(t, "Clear", mock.Anything, userID)
}

func TestListProvidersHandler_CatalogFromConfig(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/providers", NewListProvidersHandler(testLogger(), testProvidersConfig()).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/providers", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	providers, ok := body["providers"].([]interface{})
	require.True(t, ok)
	require.Len(t, providers, 1)
	first, ok := providers[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "openai", first["id"])
	assert.Equal(t, "gpt-4o-mini", first["default_model"])
}
