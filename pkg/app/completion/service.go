package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	"github.com/modelshift-ai/modelshift-gateway/pkg/domain"
	executionDomain "github.com/modelshift-ai/modelshift-gateway/pkg/domain/execution"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/prometheus"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/factory"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/secrets"
)

// Request is a single prompt to forward to one provider on behalf of a user.
type Request struct {
	UserID       uuid.UUID
	Provider     string
	Prompt       string
	Model        string
	SystemPrompt string
	Parameters   map[string]interface{}
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=completion_service_mock.go --case=underscore --with-expecter
type Service interface {
	Complete(ctx context.Context, req Request) (*executionDomain.Execution, error)
}

type service struct {
	keyFinder     appProviderKey.Finder
	encryptor     secrets.Encryptor
	locator       factory.ProviderLocator
	executionRepo executionDomain.Repository
	providersCfg  config.ProvidersConfig
	logger        *logrus.Logger
}

func NewService(
	keyFinder appProviderKey.Finder,
	encryptor secrets.Encryptor,
	locator factory.ProviderLocator,
	executionRepo executionDomain.Repository,
	providersCfg config.ProvidersConfig,
	logger *logrus.Logger,
) Service {
	return &service{
		keyFinder:     keyFinder,
		encryptor:     encryptor,
		locator:       locator,
		executionRepo: executionRepo,
		providersCfg:  providersCfg,
		logger:        logger,
	}
}

// Complete resolves the user's active key, forwards the prompt to the
// provider and records the exchange. The execution record is returned for
// both outcomes so callers can render latency, usage and error details;
// the error is non-nil when the upstream call failed.
func (s *service) Complete(ctx context.Context, req Request) (*executionDomain.Execution, error) {
	providerCfg, ok := s.providersCfg.Get(req.Provider)
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", req.Provider)
	}

	key, err := s.keyFinder.FindActive(ctx, req.UserID, req.Provider)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveProviderKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve provider key: %w", err)
	}

	apiKey, err := s.encryptor.Decrypt(key.EncryptedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt provider key: %w", err)
	}

	client, err := s.locator.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = providerCfg.DefaultModel
	}

	clientCfg := &providers.Config{
		Credentials:  providers.Credentials{ApiKey: apiKey},
		Model:        model,
		SystemPrompt: req.SystemPrompt,
		Parameters:   req.Parameters,
	}

	start := time.Now()
	resp, err := client.Complete(ctx, clientCfg, req.Prompt)
	latency := time.Since(start)

	record := &executionDomain.Execution{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Provider:   req.Provider,
		Model:      model,
		Prompt:     req.Prompt,
		Parameters: domain.JSONMap(req.Parameters),
		LatencyMs:  latency.Milliseconds(),
		CreatedAt:  start,
	}

	if err != nil {
		record.Success = false
		record.ErrorCategory = string(providers.CategoryOf(err))
		record.ErrorMessage = errorMessage(err)
		s.observe(record, latency)
		s.persist(ctx, record)
		return record, err
	}

	record.Success = true
	record.Response = resp.Response
	if resp.Model != "" {
		record.Model = resp.Model
	}
	record.Usage = executionDomain.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	record.EstimatedCost = estimateCost(providerCfg, record.Usage)

	s.observe(record, latency)
	s.persist(ctx, record)
	return record, nil
}

// persist is best effort: a history write failure must not fail a
// completion that already succeeded upstream.
func (s *service) persist(ctx context.Context, record *executionDomain.Execution) {
	if err := s.executionRepo.Create(ctx, record); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  record.UserID,
			"provider": record.Provider,
		}).Error("failed to persist execution record")
	}
}

func (s *service) observe(record *executionDomain.Execution, latency time.Duration) {
	outcome := "success"
	if !record.Success {
		outcome = record.ErrorCategory
	}
	prometheus.CompletionTotal.WithLabelValues(record.Provider, outcome).Inc()

	if prometheus.Config.EnableLatency {
		prometheus.CompletionLatency.WithLabelValues(record.Provider).
			Observe(float64(latency.Milliseconds()))
	}
	if prometheus.Config.EnableTokens && record.Success {
		prometheus.TokensTotal.WithLabelValues(record.Provider, "prompt").
			Add(float64(record.Usage.PromptTokens))
		prometheus.TokensTotal.WithLabelValues(record.Provider, "completion").
			Add(float64(record.Usage.CompletionTokens))
		prometheus.EstimatedCostTotal.WithLabelValues(record.Provider).
			Add(record.EstimatedCost)
	}
}

func estimateCost(cfg config.ProviderConfig, usage executionDomain.TokenUsage) float64 {
	return float64(usage.PromptTokens)/1000*cfg.InputPricePer1K +
		float64(usage.CompletionTokens)/1000*cfg.OutputPricePer1K
}

// errorMessage prefers the message extracted from the provider's error body
// over the raw transport error string.
func errorMessage(err error) string {
	var upstreamErr *providers.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Message
	}
	return err.Error()
}
