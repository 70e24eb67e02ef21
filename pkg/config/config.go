package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/judge"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/markers"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/events"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig        `mapstructure:"server"`
	Metrics   MetricsConfig       `mapstructure:"metrics"`
	Database  DatabaseConfig      `mapstructure:"database"`
	Redis     RedisConfig         `mapstructure:"redis"`
	Auth      AuthConfig          `mapstructure:"auth"`
	Providers ProvidersConfig     `mapstructure:"providers"`
	Judge     JudgeConfig         `mapstructure:"judge"`
	Narrator  NarratorConfig      `mapstructure:"narrator"`
	Questions QuestionsConfig     `mapstructure:"questions"`
	Fetcher   FetcherConfig       `mapstructure:"fetcher"`
	RateLimit RateLimitConfig     `mapstructure:"rate_limit"`
	Analysis  AnalysisConfig      `mapstructure:"analysis"`
	Events    EventsConfig        `mapstructure:"events"`
	Markers   *markers.Vocabulary `mapstructure:"markers"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	// SwaggerURL is where the docs UI fetches the API description from.
	SwaggerURL   string        `mapstructure:"swagger_url"`
	BodyLimit    int           `mapstructure:"body_limit"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
	EnableFlags   bool `mapstructure:"enable_flags"`
	Workers       int  `mapstructure:"workers"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TLS      bool          `mapstructure:"tls"`
	LocalTTL time.Duration `mapstructure:"local_ttl"`
}

type AuthConfig struct {
	// SecretKey signs caller tokens (HS256). When empty the X-User-Id header is trusted instead.
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// ProvidersConfig selects the LLM backend used by the judge, the narrator and the question generator.
type ProvidersConfig struct {
	Name           string                           `mapstructure:"name"`
	PlatformAPIKey string                           `mapstructure:"platform_api_key"`
	BaseURL        string                           `mapstructure:"base_url"`
	Azure          *providers.AzureCredentials      `mapstructure:"azure"`
	AwsBedrock     *providers.AwsBedrockCredentials `mapstructure:"aws_bedrock"`
}

type JudgeConfig struct {
	Model               string           `mapstructure:"model"`
	MaxTokens           int              `mapstructure:"max_tokens"`
	Strategies          []judge.Strategy `mapstructure:"strategies"`
	Backoff             time.Duration    `mapstructure:"backoff"`
	AttemptTimeout      time.Duration    `mapstructure:"attempt_timeout"`
	HardRegressionFlags []string         `mapstructure:"hard_regression_flags"`
}

type NarratorConfig struct {
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type QuestionsConfig struct {
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Attempts    int           `mapstructure:"attempts"`
	BackoffUnit time.Duration `mapstructure:"backoff_unit"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

type FetcherConfig struct {
	Timeout        time.Duration `mapstructure:"timeout"`
	BreakerTimeout time.Duration `mapstructure:"breaker_timeout"`
	MaxFailures    uint32        `mapstructure:"max_failures"`
}

type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type AnalysisConfig struct {
	Throttle         time.Duration `mapstructure:"throttle"`
	DefaultCases     int           `mapstructure:"default_cases"`
	DeepDiveMinCases int           `mapstructure:"deep_dive_min_cases"`
}

type EventsConfig struct {
	Sinks []events.SinkDTO `mapstructure:"sinks"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues()
	return mergeMarkers(&globalConfig)
}

// mergeMarkers overlays the configured marker tables onto the built-in ones.
func mergeMarkers(c *Config) error {
	if c.Markers == nil {
		c.Markers = markers.Default()
		return nil
	}
	merged, err := markers.Merge(*c.Markers)
	if err != nil {
		return fmt.Errorf("invalid markers config: %w", err)
	}
	c.Markers = merged
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found: %w", fileName, err)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}
	return nil
}

func setDefaultValues() {
	applyDefaults(&globalConfig)
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.MetricsPort == 0 {
		c.Server.MetricsPort = 9090
	}
	if c.Server.SwaggerURL == "" {
		c.Server.SwaggerURL = fmt.Sprintf("http://localhost:%d/swagger.json", c.Server.Port)
	}
	if c.Server.BodyLimit == 0 {
		c.Server.BodyLimit = 4 * 1024 * 1024
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 60 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		// a deep dive with 50 questions and throttling runs for minutes
		c.Server.WriteTimeout = 10 * time.Minute
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Metrics.Workers == 0 {
		c.Metrics.Workers = 4
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Providers.Name == "" {
		c.Providers.Name = "groq"
	}
	if c.Judge.Backoff == 0 {
		c.Judge.Backoff = judge.DefaultBackoff
	}
	if c.Judge.AttemptTimeout == 0 {
		c.Judge.AttemptTimeout = 60 * time.Second
	}
	if c.Narrator.Timeout == 0 {
		c.Narrator.Timeout = 30 * time.Second
	}
	if c.Questions.CacheTTL == 0 {
		c.Questions.CacheTTL = 24 * time.Hour
	}
	if c.Fetcher.Timeout == 0 {
		c.Fetcher.Timeout = 60 * time.Second
	}
	if c.Fetcher.BreakerTimeout == 0 {
		c.Fetcher.BreakerTimeout = 30 * time.Second
	}
	if c.Fetcher.MaxFailures == 0 {
		c.Fetcher.MaxFailures = 5
	}
	if c.Analysis.Throttle == 0 {
		c.Analysis.Throttle = 1200 * time.Millisecond
	}
	if len(c.Events.Sinks) == 0 {
		c.Events.Sinks = []events.SinkDTO{{Name: events.LogPublisherName}}
	}
}

func GetConfig() *Config {
	return &globalConfig
}
