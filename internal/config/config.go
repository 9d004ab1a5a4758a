package config

import (
	"slices"
	"time"
)

// Config is the root server configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Lookup        LookupConfig        `yaml:"lookup"`
	Pronunciation PronunciationConfig `yaml:"pronunciation"`
	LLM           LLMConfig           `yaml:"llm"`
	History       HistoryConfig       `yaml:"history"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
}

// defaults returns a Config with the settings that default to true.
// cleanenv applies env-default only to zero fields, so a true env-default
// would overwrite an explicit false from YAML.
func defaults() Config {
	var cfg Config
	cfg.Database.AutoMigrate = true
	cfg.History.DegradedRetry = true
	cfg.CORS.AllowCredentials = true
	return cfg
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port            int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"      env:"SERVER_IDLE_TIMEOUT"      env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	LookupRateLimit int           `yaml:"lookup_rate_limit" env:"SERVER_LOOKUP_RATE_LIMIT" env-default:"30"`
	AuthRateLimit   int           `yaml:"auth_rate_limit"   env:"SERVER_AUTH_RATE_LIMIT"   env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
	TraceLevel      string        `yaml:"trace_level"        env:"DATABASE_TRACE_LEVEL"        env-default:"warn"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret                string        `yaml:"jwt_secret"                 env:"AUTH_JWT_SECRET"                 env-required:"true"`
	JWTIssuer                string        `yaml:"jwt_issuer"                 env:"AUTH_JWT_ISSUER"                 env-default:"viovio"`
	AccessTokenTTL           time.Duration `yaml:"access_token_ttl"           env:"AUTH_ACCESS_TOKEN_TTL"           env-default:"15m"`
	RefreshTokenTTL          time.Duration `yaml:"refresh_token_ttl"          env:"AUTH_REFRESH_TOKEN_TTL"          env-default:"720h"`
	PasswordHashCost         int           `yaml:"password_hash_cost"         env:"AUTH_PASSWORD_HASH_COST"         env-default:"10"`
	PasswordMinLength        int           `yaml:"password_min_length"        env:"AUTH_PASSWORD_MIN_LENGTH"        env-default:"6"`
	RequireEmailConfirmation bool          `yaml:"require_email_confirmation" env:"AUTH_REQUIRE_EMAIL_CONFIRMATION" env-default:"false"`
	ConfirmationTTL          time.Duration `yaml:"confirmation_ttl"           env:"AUTH_CONFIRMATION_TTL"           env-default:"24h"`
	ConfirmationURL          string        `yaml:"confirmation_url"           env:"AUTH_CONFIRMATION_URL"           env-default:"http://localhost:8080/auth/confirm"`
}

// LookupConfig holds settings of the lookup pipeline.
type LookupConfig struct {
	// Timeout bounds each remote call made for a single lookup.
	Timeout time.Duration `yaml:"timeout"         env:"LOOKUP_TIMEOUT"         env-default:"8s"`
	// DictionaryPath points to an optional YAML file with extra curated entries.
	DictionaryPath string `yaml:"dictionary_path" env:"LOOKUP_DICTIONARY_PATH"`
}

// PronunciationConfig holds settings of the public pronunciation lookup.
type PronunciationConfig struct {
	BaseURL string        `yaml:"base_url" env:"PRONUNCIATION_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"PRONUNCIATION_TIMEOUT"  env-default:"10s"`
}

// Supported definition generator backends.
const (
	LLMProviderGemini    = "gemini"
	LLMProviderAnthropic = "anthropic"
	LLMProviderOpenAI    = "openai"
)

// LLMConfig selects and configures the definition generator.
type LLMConfig struct {
	Provider  string        `yaml:"provider"   env:"LLM_PROVIDER"   env-default:"gemini"`
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"`
	BaseURL   string        `yaml:"base_url"   env:"LLM_BASE_URL"`
	MaxTokens int           `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"20s"`
}

// DefaultModel returns the model used when none is configured.
func (c LLMConfig) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case LLMProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case LLMProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "gemini-2.5-flash"
	}
}

// SupportedLLMProviders lists the accepted values of LLMConfig.Provider.
func SupportedLLMProviders() []string {
	return []string{LLMProviderGemini, LLMProviderAnthropic, LLMProviderOpenAI}
}

// IsProviderSupported checks if the configured provider is known.
func (c LLMConfig) IsProviderSupported() bool {
	return slices.Contains(SupportedLLMProviders(), c.Provider)
}

// HistoryConfig holds history persistence settings.
type HistoryConfig struct {
	// DegradedRetry enables a second write attempt with the minimal column
	// set when the full write hits a missing column.
	DegradedRetry  bool          `yaml:"degraded_retry"  env:"HISTORY_DEGRADED_RETRY"`
	PersistTimeout time.Duration `yaml:"persist_timeout" env:"HISTORY_PERSIST_TIMEOUT" env-default:"10s"`
}

// SchedulerConfig holds background job schedules (cron syntax).
type SchedulerConfig struct {
	TokenCleanupSpec string `yaml:"token_cleanup_spec" env:"SCHEDULER_TOKEN_CLEANUP_SPEC" env-default:"@hourly"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
