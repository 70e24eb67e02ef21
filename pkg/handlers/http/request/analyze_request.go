package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
)

const MaxCases = 50

// AnalyzeRequest starts a regression run. Env and BodyTemplate carry JSON text
// as entered in the UI; UserID always comes from the caller's token.
type AnalyzeRequest struct {
	UserID          string            `json:"user_id" validate:"required"`
	CaseID          string            `json:"case_id,omitempty"`
	CaseName        string            `json:"case_name,omitempty" validate:"max=200"`
	Mode            string            `json:"mode,omitempty"`
	OldAPI          string            `json:"old_api" validate:"required,http_url"`
	NewAPI          string            `json:"new_api" validate:"required,http_url"`
	Headers         map[string]string `json:"headers,omitempty"`
	Env             string            `json:"env"`
	BodyTemplate    string            `json:"body_template" validate:"required"`
	ResponsePath    string            `json:"response_path" validate:"required"`
	Goal            string            `json:"goal" validate:"required"`
	OldPrompt       string            `json:"old_prompt"`
	NewPrompt       string            `json:"new_prompt"`
	NCases          int               `json:"n_cases" validate:"gte=0,lte=50"`
	ManualQuestions []string          `json:"manual_questions" validate:"max=50,dive,required"`
}

func (r *AnalyzeRequest) Validate() error {
	return check(r)
}

// Variables decodes env; blank env means no variables.
func (r *AnalyzeRequest) Variables() (map[string]any, error) {
	return decodeObject("env", r.Env)
}

func (r *AnalyzeRequest) Template() (map[string]any, error) {
	return decodeObject("body_template", r.BodyTemplate)
}

// Questions returns the trimmed manual questions, dropping blanks.
func (r *AnalyzeRequest) Questions() []string {
	out := make([]string, 0, len(r.ManualQuestions))
	for _, q := range r.ManualQuestions {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out
}

func decodeObject(field, raw string) (map[string]any, error) {
	out := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in %s: %v", domain.ErrInvalidInput, field, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
