package user

import (
	"time"
)

type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"

	ProDeepDives = 20
	// APIKeyPreviewLength is how many leading key characters are shown back to the owner.
	APIKeyPreviewLength = 8
)

type User struct {
	ID                 string     `json:"user_id" gorm:"column:id;primaryKey"`
	Email              string     `json:"email"`
	DisplayName        string     `json:"display_name,omitempty"`
	APIKey             string     `json:"-" gorm:"column:api_key"`
	SubscriptionTier   Tier       `json:"subscription_tier"`
	DeepDivesRemaining int        `json:"deep_dives_remaining"`
	DeepDiveResetDate  *time.Time `json:"deep_dive_reset_date,omitempty"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsPremium() bool {
	return u.SubscriptionTier == TierPro
}

func (u *User) HasAPIKey() bool {
	return u.APIKey != ""
}

// APIKeyPreview shows the key's first characters followed by an ellipsis.
func (u *User) APIKeyPreview() string {
	if u.APIKey == "" {
		return ""
	}
	if len(u.APIKey) <= APIKeyPreviewLength {
		return u.APIKey + "..."
	}
	return u.APIKey[:APIKeyPreviewLength] + "..."
}

type Stats struct {
	TotalCases    int64 `json:"total_cases"`
	TotalVersions int64 `json:"total_versions"`
}
