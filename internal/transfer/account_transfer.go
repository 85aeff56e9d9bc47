package transfer

type AccountConnection struct {
	Platform       string `json:"platform" validate:"required,oneof=linkedin twitter facebook"`
	AccountName    string `json:"account_name" validate:"required"`
	AccountID      string `json:"account_id" validate:"required"`
	AccessToken    string `json:"access_token" validate:"required"`
	RefreshToken   string `json:"refresh_token"`
	TokenExpiry    string `json:"token_expiry"`
	ProfilePicture string `json:"profile_picture"`
	Followers      int    `json:"followers"`
	Following      int    `json:"following"`
}

// AccountSettingsUpdate is a partial settings document; only non-nil
// fields overwrite the stored values.
type AccountSettingsUpdate struct {
	AutoPost                *bool `json:"auto_post"`
	BestTimeToPost          *bool `json:"best_time_to_post"`
	EngagementNotifications *bool `json:"engagement_notifications"`
}
