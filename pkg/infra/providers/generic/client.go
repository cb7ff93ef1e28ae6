// Package generic implements a providers.Client whose request and response
// shapes come entirely from ProviderConfig data. It is the proxy-mode path
// of the gateway: no per-provider code, only a JSON skeleton plus mapper
// paths declared in providers.yaml.
package generic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	"github.com/modelshift-ai/modelshift-gateway/pkg/fieldmapper"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/httpx"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
)

const defaultTimeoutSeconds = 60

type client struct {
	cfg        config.ProviderConfig
	skeleton   []byte
	timeout    time.Duration
	httpClient httpx.Client
	breaker    httpx.CircuitBreaker
	logger     *logrus.Logger
}

// NewClient builds a configuration-driven client for one provider. The
// request skeleton is serialized once here and re-hydrated per request so
// concurrent requests never share a tree.
func NewClient(cfg config.ProviderConfig, httpClient httpx.Client, logger *logrus.Logger) (providers.Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("provider %s: base_url is required", cfg.Name)
	}
	if cfg.PromptPath == "" {
		return nil, fmt.Errorf("provider %s: prompt_path is required", cfg.Name)
	}
	skeleton := cfg.RequestSkeleton
	if skeleton == nil {
		skeleton = map[string]interface{}{}
	}
	raw, err := json.Marshal(skeleton)
	if err != nil {
		return nil, fmt.Errorf("provider %s: invalid request skeleton: %w", cfg.Name, err)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = defaultTimeoutSeconds * time.Second
	}
	return &client{
		cfg:        cfg,
		skeleton:   raw,
		timeout:    timeout,
		httpClient: httpClient,
		breaker:    httpx.NewCircuitBreaker(cfg.Name, 30*time.Second, 5),
		logger:     logger,
	}, nil
}

func (c *client) Complete(
	ctx context.Context,
	cfg *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if cfg.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = c.cfg.DefaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.buildRequestBody(model, prompt, cfg)
	if err != nil {
		return nil, err
	}

	req, err := c.buildRequest(ctx, cfg.Credentials.ApiKey, model, body)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	if err := c.breaker.Execute(func() error {
		var doErr error
		resp, doErr = c.httpClient.Do(req)
		return doErr
	}); err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.cfg.Name, err)
	}
	defer resp.Body.Close()

	respBody := new(bytes.Buffer)
	if _, err := respBody.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", c.cfg.Name, err)
	}

	decoded, _, err := httpx.DecodeBody(resp.Header.Get("Content-Encoding"), respBody.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", c.cfg.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.upstreamError(resp.StatusCode, decoded)
	}

	return c.parseResponse(model, decoded), nil
}

// buildRequestBody re-hydrates the skeleton and writes the flat request
// values into it through the configured paths.
func (c *client) buildRequestBody(model, prompt string, cfg *providers.Config) ([]byte, error) {
	var tree interface{}
	if err := json.Unmarshal(c.skeleton, &tree); err != nil {
		return nil, fmt.Errorf("failed to clone request skeleton: %w", err)
	}

	if cfg.SystemPrompt != "" {
		prompt = cfg.SystemPrompt + "\n\n" + prompt
	}
	tree = fieldmapper.Set(tree, c.cfg.PromptPath, prompt)
	if c.cfg.ModelPath != "" && model != "" {
		tree = fieldmapper.Set(tree, c.cfg.ModelPath, model)
	}
	if len(cfg.Parameters) > 0 {
		tree = fieldmapper.Merge(tree, c.cfg.ParametersPath, cfg.Parameters)
	}

	body, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return body, nil
}

// buildRequest assembles the upstream URL and headers. A `{model}`
// placeholder in the endpoint is replaced with the resolved model, for
// providers that address the model in the path rather than the body.
func (c *client) buildRequest(ctx context.Context, apiKey, model string, body []byte) (*http.Request, error) {
	endpoint := strings.ReplaceAll(c.cfg.Endpoint, "{model}", url.PathEscape(model))
	target := strings.TrimSuffix(c.cfg.BaseURL, "/") + endpoint
	if c.cfg.KeyInQuery {
		param := c.cfg.QueryParam
		if param == "" {
			param = "key"
		}
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + param + "=" + url.QueryEscape(apiKey)
	}

	method := c.cfg.Method
	if method == "" {
		method = http.MethodPost
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
	if !c.cfg.KeyInQuery && c.cfg.AuthHeader != "" {
		req.Header.Set(c.cfg.AuthHeader, c.cfg.AuthPrefix+apiKey)
	}
	return req, nil
}

// upstreamError categorizes a non-2xx reply. The message comes from the
// configured error path when the body is JSON and the path resolves;
// otherwise it falls back to a status-derived message.
func (c *client) upstreamError(status int, body []byte) error {
	message := ""
	var tree interface{}
	if err := json.Unmarshal(body, &tree); err == nil && c.cfg.ErrorPath != "" {
		if v, ok := fieldmapper.Get(tree, c.cfg.ErrorPath); ok {
			if s, ok := v.(string); ok {
				message = s
			}
		}
	}
	if message == "" {
		message = providers.StatusMessage(status)
	}
	return &providers.UpstreamError{
		Provider:   c.cfg.Name,
		StatusCode: status,
		Category:   providers.CategorizeStatus(status),
		Message:    message,
	}
}

func (c *client) parseResponse(model string, body []byte) *providers.CompletionResponse {
	completion := &providers.CompletionResponse{
		ID:       fmt.Sprintf("%s-%s", c.cfg.Name, uuid.NewString()),
		Model:    model,
		Response: providers.NoResponsePlaceholder,
	}

	var tree interface{}
	if err := json.Unmarshal(body, &tree); err != nil {
		c.logger.WithError(err).WithField("provider", c.cfg.Name).
			Warn("upstream returned non-JSON success body")
		return completion
	}

	if v, ok := fieldmapper.Get(tree, "id"); ok {
		if s, ok := v.(string); ok && s != "" {
			completion.ID = s
		}
	}
	if v, ok := fieldmapper.Get(tree, c.cfg.ResponsePath); ok {
		if s, ok := v.(string); ok {
			completion.Response = s
		}
	}

	completion.Usage.PromptTokens = intAtPath(tree, c.cfg.UsagePromptTokensPath)
	completion.Usage.CompletionTokens = intAtPath(tree, c.cfg.UsageCompletionTokensPath)
	completion.Usage.TotalTokens = completion.Usage.PromptTokens + completion.Usage.CompletionTokens

	return completion
}

func intAtPath(tree interface{}, path string) int {
	if path == "" {
		return 0
	}
	v, ok := fieldmapper.Get(tree, path)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
