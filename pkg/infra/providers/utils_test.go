package providers_test

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
)

func TestFormatInstructions(t *testing.T) {
	assert.Equal(t, "[Instructions]\n", providers.FormatInstructions(nil))
	assert.Equal(t, "[Instructions]\n- be brief\n", providers.FormatInstructions([]string{"be brief", "  "}))
}

func TestSystemPrompt(t *testing.T) {
	tests := []struct {
		name string
		cfg  providers.Config
		want string
	}{
		{"text mode keeps prompt", providers.Config{SystemPrompt: "hi"}, "hi"},
		{"json mode without prompt", providers.Config{ResponseFormat: providers.ResponseFormatJSON}, "Respond with a single valid JSON object and nothing else."},
		{
			"json mode appends rule",
			providers.Config{SystemPrompt: "judge", ResponseFormat: providers.ResponseFormatJSON},
			"judge\nRespond with a single valid JSON object and nothing else.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, providers.SystemPrompt(&tt.cfg))
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, providers.StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, providers.StripCodeFence(`{"a":1}`))
}
