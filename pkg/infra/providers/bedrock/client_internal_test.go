package bedrock

import (
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareRequest_Claude(t *testing.T) {
	cfg := &providers.Config{
		Model:          "anthropic.claude-3-haiku-20240307-v1:0",
		SystemPrompt:   "judge",
		ResponseFormat: providers.ResponseFormatJSON,
		MaxTokens:      200,
	}

	body, err := prepareRequest(cfg, "compare these")
	require.NoError(t, err)

	var req claudeRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, anthropicVersion, req.AnthropicVersion)
	assert.Equal(t, 200, req.MaxTokens)
	assert.Contains(t, req.System, "judge")
	assert.Contains(t, req.System, "JSON")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "compare these", req.Messages[0].Content)
}

func TestPrepareRequest_Llama(t *testing.T) {
	cfg := &providers.Config{Model: "meta.llama3-70b-instruct-v1:0", SystemPrompt: "narrate"}

	body, err := prepareRequest(cfg, "summary please")
	require.NoError(t, err)

	var req promptRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "narrate\n\nsummary please", req.Prompt)
	assert.Equal(t, defaultMaxTokens, req.MaxGenLen)
	assert.Zero(t, req.MaxTokens)
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		body    string
		want    string
		wantErr bool
	}{
		{"claude v3", "anthropic.claude-3-sonnet", `{"content":[{"type":"text","text":"ok"}],"usage":{"input_tokens":3,"output_tokens":1}}`, "ok", false},
		{"llama", "meta.llama3-8b", `{"generation":"hi"}`, "hi", false},
		{"mistral", "mistral.mistral-7b", `{"outputs":[{"text":"yo"}]}`, "yo", false},
		{"legacy completion", "amazon.titan-text", `{"outputText":"titan"}`, "titan", false},
		{"empty claude", "anthropic.claude-3-sonnet", `{"content":[]}`, "", true},
		{"malformed", "meta.llama3-8b", `not json`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := parseResponse(tt.model, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
