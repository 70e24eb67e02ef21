package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/valyala/fasthttp"
)

const (
	defaultAPIVersion = "2024-02-15-preview"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
	requestTimeout    = 120 * time.Second
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature,omitempty"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage providers.Usage `json:"usage"`
}

type client struct {
	httpClient *fasthttp.Client
	credOnce   sync.Once
	cred       azcore.TokenCredential
	credErr    error
}

func NewAzureClient(httpClient *fasthttp.Client) providers.Client {
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}
	return &client{httpClient: httpClient}
}

// Ask calls an Azure OpenAI deployment. config.Model is the deployment id.
// Authentication uses config.Credentials.ApiKey unless Azure.UseIdentity is set,
// in which case a Microsoft Entra token is obtained from the default credential chain.
func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	azureCreds := config.Credentials.Azure
	if azureCreds == nil {
		return nil, fmt.Errorf("azure configuration is required")
	}
	if azureCreds.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model (deployment ID) is required")
	}

	var authHeader, authValue string
	if azureCreds.UseIdentity {
		token, err := c.getAzureADToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		authHeader, authValue = "Authorization", "Bearer "+token
	} else {
		if config.Credentials.ApiKey == "" {
			return nil, fmt.Errorf("API key is required when not using Azure identity")
		}
		authHeader, authValue = "api-key", config.Credentials.ApiKey
	}

	body := chatRequest{
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	}
	if config.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		body.Messages = append(body.Messages, chatMessage{Role: "user", Content: providers.FormatInstructions(config.Instructions)})
	}
	if prompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "user", Content: prompt})
	}
	if config.WantsJSON() {
		body.ResponseFormat = map[string]string{"type": "json_object"}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiVersion := defaultAPIVersion
	if azureCreds.ApiVersion != "" {
		apiVersion = azureCreds.ApiVersion
	}
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		azureCreds.Endpoint, config.Model, apiVersion)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(authHeader, authValue)
	req.SetBody(bodyBytes)

	timeout := requestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("failed request: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("non-200 status: %d\n%s", resp.StatusCode(), string(resp.Body()))
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, providers.ErrNoCompletion
	}

	id := parsed.ID
	if id == "" {
		id = fmt.Sprintf("azure-%d", time.Now().UnixNano())
	}

	return &providers.CompletionResponse{
		ID:       id,
		Model:    config.Model,
		Response: parsed.Choices[0].Message.Content,
		Usage:    parsed.Usage,
	}, nil
}

func (c *client) getAzureADToken(ctx context.Context) (string, error) {
	c.credOnce.Do(func() {
		c.cred, c.credErr = azidentity.NewDefaultAzureCredential(nil)
	})
	if c.credErr != nil {
		return "", fmt.Errorf("failed to create credential: %w", c.credErr)
	}
	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveScope},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}
