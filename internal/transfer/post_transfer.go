package transfer

import "socialpulse/internal/models"

type PostCreation struct {
	Content  string               `json:"content" validate:"required"`
	Platform string               `json:"platform" validate:"omitempty,oneof=linkedin twitter facebook"`
	Metadata *models.PostMetadata `json:"metadata"`
	Status   string               `json:"status" validate:"omitempty,oneof=draft published archived scheduled"`
}

// PostUpdate carries only the fields present in the request body; nil
// pointers leave the stored value untouched.
type PostUpdate struct {
	Content    *string              `json:"content"`
	Platform   *string              `json:"platform" validate:"omitempty,oneof=linkedin twitter facebook"`
	Metadata   *models.PostMetadata `json:"metadata"`
	Engagement *models.PostCounters `json:"engagement"`
	AiAnalysis *models.PostAnalysis `json:"ai_analysis"`
	Status     *string              `json:"status" validate:"omitempty,oneof=draft published archived scheduled"`
}

type SchedulePostRequest struct {
	PublishedAt string `json:"published_at" validate:"required"`
}

type EngagementUpsert struct {
	Platform  string                     `json:"platform" validate:"omitempty,oneof=linkedin twitter facebook"`
	Metrics   models.EngagementMetrics   `json:"metrics"`
	Comments  []models.EngagementComment `json:"comments"`
	Analytics models.EngagementInsights  `json:"analytics"`
}
