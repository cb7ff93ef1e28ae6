package config

// ProviderConfig is the static descriptor of one external LLM API. It is
// loaded once from providers.yaml and never mutated at runtime: the request
// body is built and the response parsed entirely from the declared skeleton
// and paths, so adding a provider is a configuration change, not code.
type ProviderConfig struct {
	Name     string            `mapstructure:"name"`
	BaseURL  string            `mapstructure:"base_url"`
	Endpoint string            `mapstructure:"endpoint"`
	Method   string            `mapstructure:"method"`
	Headers  map[string]string `mapstructure:"headers"`

	// SDK selects the native SDK client instead of the generic
	// configuration-driven one. Providers without an official Go SDK
	// (WatsonX) leave it false.
	SDK bool `mapstructure:"sdk"`

	// AuthHeader/AuthPrefix describe header-carried credentials
	// ("Authorization" + "Bearer "). KeyInQuery providers (Gemini's REST
	// surface) receive the key as the QueryParam query parameter instead.
	AuthHeader string `mapstructure:"auth_header"`
	AuthPrefix string `mapstructure:"auth_prefix"`
	KeyInQuery bool   `mapstructure:"key_in_query"`
	QueryParam string `mapstructure:"query_param"`

	// RequestSkeleton is the JSON template the mapper writes into.
	RequestSkeleton map[string]interface{} `mapstructure:"request_skeleton"`

	// Mapper paths. Prompt, model and parameters are written into the
	// skeleton; response text and error message are read from the
	// upstream response body.
	PromptPath     string `mapstructure:"prompt_path"`
	ModelPath      string `mapstructure:"model_path"`
	ParametersPath string `mapstructure:"parameters_path"`
	ResponsePath   string `mapstructure:"response_path"`
	ErrorPath      string `mapstructure:"error_path"`

	// Optional usage paths; when absent the execution record carries zero
	// token counts and the estimated cost stays zero.
	UsagePromptTokensPath     string `mapstructure:"usage_prompt_tokens_path"`
	UsageCompletionTokensPath string `mapstructure:"usage_completion_tokens_path"`

	DefaultModel   string `mapstructure:"default_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`

	// Per-1k-token prices used for cost estimation on execution records.
	InputPricePer1K  float64 `mapstructure:"input_price_per_1k"`
	OutputPricePer1K float64 `mapstructure:"output_price_per_1k"`
}

// ProvidersConfig represents the configuration for all providers
type ProvidersConfig struct {
	Providers map[string]ProviderConfig `mapstructure:"providers"`
}

// Get returns the configuration for a provider by name.
func (c ProvidersConfig) Get(name string) (ProviderConfig, bool) {
	cfg, ok := c.Providers[name]
	return cfg, ok
}
