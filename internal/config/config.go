package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StaticDir optionally overrides where the front-end assets are
	// resolved from. Empty means the default search paths.
	StaticDir string `mapstructure:"static_dir"`
}

// LLMConfig contains all model-serving integration settings.
type LLMConfig struct {
	// EndpointURL is the full invocation URL of the model-serving
	// endpoint (OpenAI-compatible chat completions).
	EndpointURL string `mapstructure:"endpoint_url" validate:"required,url"`

	// APIToken is the bearer token for the serving endpoint.
	APIToken string `mapstructure:"api_token" validate:"required"`

	MaxTokens      int     `mapstructure:"max_tokens"      validate:"gt=0"`
	Temperature    float64 `mapstructure:"temperature"     validate:"gte=0,lte=2"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"gt=0"`
}
