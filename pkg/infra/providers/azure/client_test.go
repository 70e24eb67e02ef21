package azure_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/azure"
	"github.com/stretchr/testify/assert"
)

func TestAsk_Validation(t *testing.T) {
	client := azure.NewAzureClient(nil)

	tests := []struct {
		name    string
		config  *providers.Config
		wantErr string
	}{
		{
			name:    "missing azure block",
			config:  &providers.Config{Model: "gpt-4o"},
			wantErr: "azure configuration is required",
		},
		{
			name: "missing endpoint",
			config: &providers.Config{
				Model:       "gpt-4o",
				Credentials: providers.Credentials{Azure: &providers.AzureCredentials{}},
			},
			wantErr: "azure endpoint is required",
		},
		{
			name: "missing deployment",
			config: &providers.Config{
				Credentials: providers.Credentials{Azure: &providers.AzureCredentials{Endpoint: "https://example.openai.azure.com"}},
			},
			wantErr: "model (deployment ID) is required",
		},
		{
			name: "missing api key",
			config: &providers.Config{
				Model:       "gpt-4o",
				Credentials: providers.Credentials{Azure: &providers.AzureCredentials{Endpoint: "https://example.openai.azure.com"}},
			},
			wantErr: "API key is required when not using Azure identity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Ask(context.Background(), tt.config, "hello")
			assert.Nil(t, resp)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
