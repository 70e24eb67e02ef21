package request

type SuggestRequest struct {
	UserID             string   `json:"user_id" validate:"required"`
	Goal               string   `json:"goal"`
	OldPrompt          string   `json:"old_prompt" validate:"required"`
	NewPrompt          string   `json:"new_prompt" validate:"required"`
	DeterministicFlags []string `json:"deterministic_flags"`
	RiskFlags          []string `json:"risk_flags"`
}

func (r *SuggestRequest) Validate() error {
	return check(r)
}
