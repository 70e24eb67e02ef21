package factory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/anthropic"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/azure"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/bedrock"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/gemini"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/openai"
	"github.com/valyala/fasthttp"
)

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderAzure     = "azure"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	httpClient *fasthttp.Client
	mu         sync.Mutex
	clients    map[string]providers.Client
}

func NewProviderLocator(httpClient *fasthttp.Client) ProviderLocator {
	return &providerLocator{
		httpClient: httpClient,
		clients:    make(map[string]providers.Client),
	}
}

// Get returns one shared client per provider so connection pools are reused across calls.
func (f *providerLocator) Get(provider string) (providers.Client, error) {
	name := strings.ToLower(strings.TrimSpace(provider))

	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[name]; ok {
		return c, nil
	}

	var c providers.Client
	switch name {
	case ProviderGroq:
		c = openai.NewCompatibleClient(openai.GroqBaseURL)
	case ProviderOpenAI:
		c = openai.NewOpenaiClient()
	case ProviderGoogle:
		c = gemini.NewGeminiClient()
	case ProviderAnthropic:
		c = anthropic.NewAnthropicClient()
	case ProviderBedrock:
		c = bedrock.NewBedrockClient()
	case ProviderAzure:
		c = azure.NewAzureClient(f.httpClient)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	f.clients[name] = c
	return c, nil
}
