package request

import "strings"

type InitUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name,omitempty" validate:"max=200"`
}

func (r *InitUserRequest) Validate() error {
	return check(r)
}

type SaveAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"required,min=8"`
}

func (r *SaveAPIKeyRequest) Validate() error {
	r.APIKey = strings.TrimSpace(r.APIKey)
	return check(r)
}
