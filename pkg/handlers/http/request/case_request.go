package request

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
)

type CreateCaseRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

func (r *CreateCaseRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return check(r)
}

type UpdateCaseRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,max=200"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=2000"`
}

func (r *UpdateCaseRequest) Validate() error {
	if r.Name == nil && r.Description == nil {
		return fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		r.Name = &name
	}
	return check(r)
}

type AddMemberRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role" validate:"required,oneof=EDITOR VIEWER"`
}

func (r *AddMemberRequest) Validate() error {
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
	return check(r)
}
