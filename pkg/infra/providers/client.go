package providers

import (
	"context"
)

type ResponseFormat string

const (
	ResponseFormatText ResponseFormat = "text"
	ResponseFormatJSON ResponseFormat = "json"
)

type Config struct {
	Credentials    Credentials    `json:"credentials"`
	Model          string         `json:"model"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	Temperature    float64        `json:"temperature,omitempty"`
	SystemPrompt   string         `json:"system_prompt,omitempty"`
	Instructions   []string       `json:"instructions,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

type Credentials struct {
	ApiKey     string                 `json:"api_key,omitempty"`
	BaseURL    string                 `json:"base_url,omitempty"`
	Azure      *AzureCredentials      `json:"azure,omitempty"`
	AwsBedrock *AwsBedrockCredentials `json:"aws_bedrock,omitempty"`
}

type AzureCredentials struct {
	Endpoint    string `json:"endpoint" mapstructure:"endpoint"`
	ApiVersion  string `json:"api_version,omitempty" mapstructure:"api_version"`
	UseIdentity bool   `json:"use_identity,omitempty" mapstructure:"use_identity"`
}

type AwsBedrockCredentials struct {
	Region       string `json:"region" mapstructure:"region"`
	AccessKey    string `json:"access_key,omitempty" mapstructure:"access_key"`
	SecretKey    string `json:"secret_key,omitempty" mapstructure:"secret_key"`
	SessionToken string `json:"session_token,omitempty" mapstructure:"session_token"`
	UseRole      bool   `json:"use_role,omitempty" mapstructure:"use_role"`
	RoleARN      string `json:"role_arn,omitempty" mapstructure:"role_arn"`
}

// WantsJSON reports whether the caller asked for a single JSON object as output.
func (c *Config) WantsJSON() bool {
	return c.ResponseFormat == ResponseFormatJSON
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}
