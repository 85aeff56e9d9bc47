package models

import "time"

type SocialAccount struct {
	ID             int64           `db:"id" json:"id"`
	UserID         int64           `db:"user_id" json:"user_id"`
	Platform       string          `db:"platform" json:"platform"`
	AccountName    string          `db:"account_name" json:"account_name"`
	AccountID      string          `db:"account_id" json:"account_id"`
	AccessToken    string          `db:"access_token" json:"access_token"`
	RefreshToken   string          `db:"refresh_token" json:"refresh_token"`
	TokenExpiry    *time.Time      `db:"token_expiry" json:"token_expiry,omitempty"`
	ProfilePicture string          `db:"profile_picture" json:"profile_picture"`
	Followers      int             `db:"followers" json:"followers"`
	Following      int             `db:"following" json:"following"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	Settings       AccountSettings `db:"settings" json:"settings"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

type AccountSettings struct {
	AutoPost                bool `json:"auto_post"`
	BestTimeToPost          bool `json:"best_time_to_post"`
	EngagementNotifications bool `json:"engagement_notifications"`
}

// DefaultAccountSettings mirrors the defaults applied when an account is
// connected without explicit settings.
func DefaultAccountSettings() AccountSettings {
	return AccountSettings{
		AutoPost:                false,
		BestTimeToPost:          true,
		EngagementNotifications: true,
	}
}
