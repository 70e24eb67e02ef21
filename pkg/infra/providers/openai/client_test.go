package openai_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/openai"
	"github.com/stretchr/testify/assert"
)

func TestNewOpenaiClient(t *testing.T) {
	client := openai.NewOpenaiClient()
	assert.NotNil(t, client, "NewOpenaiClient should return a non-nil client")
	assert.NotNil(t, openai.NewCompatibleClient(openai.GroqBaseURL))
}

func TestAsk_MissingAPIKey(t *testing.T) {
	client := openai.NewCompatibleClient(openai.GroqBaseURL)

	config := &providers.Config{
		Model: "llama-3.3-70b-versatile",
		Credentials: providers.Credentials{
			ApiKey: "",
		},
	}

	resp, err := client.Ask(context.Background(), config, "test prompt")

	assert.ErrorIs(t, err, providers.ErrAPIKeyRequired)
	assert.Nil(t, resp, "Ask should return nil response when API key is missing")
}

func TestAsk_MissingModel(t *testing.T) {
	client := openai.NewOpenaiClient()

	config := &providers.Config{
		Model: "",
		Credentials: providers.Credentials{
			ApiKey: "test-api-key",
		},
	}

	resp, err := client.Ask(context.Background(), config, "test prompt")
	assert.ErrorIs(t, err, providers.ErrModelIsRequired)
	assert.Nil(t, resp, "Ask should return nil response when model is missing")
}
