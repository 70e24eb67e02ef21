package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	stsTypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"golang.org/x/sync/singleflight"
)

const (
	ModelPrefixAnthropicClaudeV3 = "anthropic.claude-3"
	ModelPrefixMistral           = "mistral"
	ModelPrefixMetaLlama         = "meta.llama"

	anthropicVersion = "bedrock-2023-05-31"
	defaultRegion    = "us-east-1"
	defaultMaxTokens = 1024
	sessionName      = "TrustDriftBedrockSession"
)

type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
	Temperature      float64         `json:"temperature,omitempty"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type promptRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewBedrockClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		return nil, providers.ErrModelIsRequired
	}

	bedrockCl, err := c.getOrCreateClient(ctx, config.Credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	body, err := prepareRequest(config, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	resp, err := bedrockCl.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(config.Model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	responseText, usage, err := parseResponse(config.Model, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if config.WantsJSON() {
		responseText = providers.StripCodeFence(responseText)
	}

	return &providers.CompletionResponse{
		ID:       fmt.Sprintf("bedrock-%d", time.Now().UnixNano()),
		Model:    config.Model,
		Response: responseText,
		Usage:    usage,
	}, nil
}

func prepareRequest(config *providers.Config, prompt string) ([]byte, error) {
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	system := providers.SystemPrompt(config)

	if isClaudeV3Model(config.Model) {
		req := claudeRequest{
			AnthropicVersion: anthropicVersion,
			MaxTokens:        maxTokens,
			System:           system,
			Temperature:      config.Temperature,
		}
		if len(config.Instructions) > 0 {
			req.Messages = append(req.Messages, claudeMessage{Role: "user", Content: providers.FormatInstructions(config.Instructions)})
		}
		req.Messages = append(req.Messages, claudeMessage{Role: "user", Content: prompt})
		return json.Marshal(req)
	}

	var fullPrompt strings.Builder
	if system != "" {
		fullPrompt.WriteString(system + "\n\n")
	}
	if len(config.Instructions) > 0 {
		fullPrompt.WriteString(providers.FormatInstructions(config.Instructions) + "\n\n")
	}
	fullPrompt.WriteString(prompt)

	req := promptRequest{Prompt: fullPrompt.String(), Temperature: config.Temperature}
	if isLlamaModel(config.Model) {
		req.MaxGenLen = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}
	return json.Marshal(req)
}

func parseResponse(model string, responseBody []byte) (string, providers.Usage, error) {
	var usage providers.Usage
	switch {
	case isClaudeV3Model(model):
		var response struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
			Usage struct {
				InputTokens  int `json:"input_tokens"`
				OutputTokens int `json:"output_tokens"`
			} `json:"usage"`
		}
		if err := json.Unmarshal(responseBody, &response); err != nil {
			return "", usage, fmt.Errorf("failed to unmarshal Claude 3 response: %w", err)
		}
		usage = providers.Usage{
			PromptTokens:     response.Usage.InputTokens,
			CompletionTokens: response.Usage.OutputTokens,
			TotalTokens:      response.Usage.InputTokens + response.Usage.OutputTokens,
		}
		for _, content := range response.Content {
			if content.Type == "text" && content.Text != "" {
				return content.Text, usage, nil
			}
		}
	case isLlamaModel(model):
		var response struct {
			Generation           string `json:"generation"`
			PromptTokenCount     int    `json:"prompt_token_count"`
			GenerationTokenCount int    `json:"generation_token_count"`
		}
		if err := json.Unmarshal(responseBody, &response); err != nil {
			return "", usage, fmt.Errorf("failed to unmarshal Llama response: %w", err)
		}
		usage = providers.Usage{
			PromptTokens:     response.PromptTokenCount,
			CompletionTokens: response.GenerationTokenCount,
			TotalTokens:      response.PromptTokenCount + response.GenerationTokenCount,
		}
		if response.Generation != "" {
			return response.Generation, usage, nil
		}
	case isMistralModel(model):
		var response struct {
			Outputs []struct {
				Text string `json:"text"`
			} `json:"outputs"`
		}
		if err := json.Unmarshal(responseBody, &response); err != nil {
			return "", usage, fmt.Errorf("failed to unmarshal Mistral response: %w", err)
		}
		if len(response.Outputs) > 0 && response.Outputs[0].Text != "" {
			return response.Outputs[0].Text, usage, nil
		}
	default:
		var response struct {
			Completion string `json:"completion"`
			OutputText string `json:"outputText"`
			Generation string `json:"generation"`
		}
		if err := json.Unmarshal(responseBody, &response); err != nil {
			return "", usage, fmt.Errorf("failed to unmarshal response: %w", err)
		}
		for _, s := range []string{response.Completion, response.OutputText, response.Generation} {
			if s != "" {
				return s, usage, nil
			}
		}
	}
	return "", usage, providers.ErrNoCompletion
}

func (c *client) getOrCreateClient(ctx context.Context, credentials providers.Credentials) (*bedrockruntime.Client, error) {
	clientKey := buildClientKey(credentials)
	if clientVal, ok := c.clientPool.Load(clientKey); ok {
		if cli, ok := clientVal.(*bedrockruntime.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(clientKey, func() (any, error) {
		if v2, ok := c.clientPool.Load(clientKey); ok {
			return v2, nil
		}
		cfg, err := buildAwsConfig(ctx, credentials)
		if err != nil {
			return nil, err
		}
		runtimeClient := bedrockruntime.NewFromConfig(cfg)
		c.clientPool.Store(clientKey, runtimeClient)
		return runtimeClient, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(*bedrockruntime.Client)
	if !ok {
		return nil, fmt.Errorf("invalid client type in pool")
	}
	return cli, nil
}

func buildClientKey(credentials providers.Credentials) string {
	if credentials.AwsBedrock == nil {
		return credentials.ApiKey
	}
	return fmt.Sprintf("%s:%s:%s:%v:%s",
		credentials.ApiKey,
		credentials.AwsBedrock.AccessKey,
		credentials.AwsBedrock.Region,
		credentials.AwsBedrock.UseRole,
		credentials.AwsBedrock.RoleARN,
	)
}

func buildAwsConfig(ctx context.Context, credentials providers.Credentials) (aws.Config, error) {
	if credentials.AwsBedrock == nil {
		return config.LoadDefaultConfig(ctx, config.WithRegion(defaultRegion))
	}

	region := credentials.AwsBedrock.Region
	if region == "" {
		region = defaultRegion
	}

	accessKey := credentials.AwsBedrock.AccessKey
	secretKey := credentials.AwsBedrock.SecretKey

	if credentials.AwsBedrock.UseRole && credentials.AwsBedrock.RoleARN != "" {
		creds, err := assumeRole(ctx, accessKey, secretKey, credentials.AwsBedrock.RoleARN, region)
		if err != nil {
			return aws.Config{}, err
		}
		return loadAWSConfig(ctx, *creds.AccessKeyId, *creds.SecretAccessKey, *creds.SessionToken, region)
	}

	return loadAWSConfig(ctx, accessKey, secretKey, credentials.AwsBedrock.SessionToken, region)
}

func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)),
		config.WithRegion(region),
	)
}

func assumeRole(ctx context.Context, accessKey, secretKey, roleARN, region string) (*stsTypes.Credentials, error) {
	baseCfg, err := loadAWSConfig(ctx, accessKey, secretKey, "", region)
	if err != nil {
		return nil, fmt.Errorf("unable to load base AWS config: %w", err)
	}
	stsClient := sts.NewFromConfig(baseCfg)

	output, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assume role: %w", err)
	}
	return output.Credentials, nil
}

func isClaudeV3Model(model string) bool {
	return strings.Contains(model, ModelPrefixAnthropicClaudeV3)
}

func isMistralModel(model string) bool {
	return strings.Contains(model, ModelPrefixMistral)
}

func isLlamaModel(model string) bool {
	return strings.Contains(model, ModelPrefixMetaLlama)
}
