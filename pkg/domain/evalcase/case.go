package evalcase

import "time"

const (
	DefaultName  = "Untitled Case"
	DeepDiveName = "Deep Dive"

	RoleOwner  = "OWNER"
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

type Case struct {
	ID            string    `json:"case_id" gorm:"column:id;primaryKey"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	VersionCount  int       `json:"version_count"`
	LatestVersion int       `json:"latest_version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Case) TableName() string {
	return "cases"
}

func (c *Case) IsOwner(userID string) bool {
	return c.UserID == userID
}

// Member grants a non-owner read access to a case.
type Member struct {
	ID          string    `json:"member_id" gorm:"column:id;primaryKey"`
	CaseID      string    `json:"case_id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role"`
	AddedBy     string    `json:"added_by"`
	AddedAt     time.Time `json:"added_at"`
}

func (Member) TableName() string {
	return "case_members"
}

func ValidRole(role string) bool {
	switch role {
	case RoleEditor, RoleViewer:
		return true
	}
	return false
}
