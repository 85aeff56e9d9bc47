package models

import "time"

// Engagement holds the per-platform metrics for a single post. There is at
// most one record per post by convention; the metrics (including the
// engagement rate) are supplied by the caller, never recomputed here.
type Engagement struct {
	ID        int64               `db:"id" json:"id"`
	PostID    int64               `db:"post_id" json:"post_id"`
	Platform  string              `db:"platform" json:"platform"`
	Metrics   EngagementMetrics   `db:"metrics" json:"metrics"`
	Comments  []EngagementComment `db:"comments" json:"comments"`
	Analytics EngagementInsights  `db:"analytics" json:"analytics"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt time.Time           `db:"updated_at" json:"updated_at"`
}

type EngagementMetrics struct {
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Views          int     `json:"views"`
	Reach          int     `json:"reach"`
	Impressions    int     `json:"impressions"`
	EngagementRate float64 `json:"engagement_rate"`
}

type EngagementComment struct {
	User      string     `json:"user"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Sentiment string     `json:"sentiment,omitempty"`
}

type EngagementInsights struct {
	BestPerformingTime   *time.Time   `json:"best_performing_time,omitempty"`
	AudienceDemographics Demographics `json:"audience_demographics"`
	TopEngagers          []TopEngager `json:"top_engagers,omitempty"`
}

type Demographics struct {
	Age      map[string]any `json:"age,omitempty"`
	Gender   map[string]any `json:"gender,omitempty"`
	Location map[string]any `json:"location,omitempty"`
}

type TopEngager struct {
	User            string `json:"user"`
	EngagementCount int    `json:"engagement_count"`
}
