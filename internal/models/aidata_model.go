package models

import "time"

// AiData is one generation/analysis invocation. Records are append-only;
// the only in-place updates are the engagement merge and the trend
// merge-by-date performed by the analytics service.
type AiData struct {
	ID               int64      `db:"id" json:"id"`
	UserID           int64      `db:"user_id" json:"user_id"`
	PostContent      string     `db:"post_content" json:"post_content"`
	GeneratedComment string     `db:"generated_comment" json:"generated_comment"`
	Analysis         AiAnalysis `db:"analysis" json:"analysis"`
	Status           string     `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// AiAnalysis keeps engagement as an open key set so that partial updates
// merge field by field instead of replacing the whole counter object.
type AiAnalysis struct {
	Sentiment  string         `json:"sentiment,omitempty"`
	Engagement map[string]int `json:"engagement,omitempty"`
	Topics     []TopicCount   `json:"topics,omitempty"`
	Trends     []TrendPoint   `json:"trends,omitempty"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TrendPoint keys engagement by calendar day, not timestamp, so repeated
// updates within the same day collapse into a single point.
type TrendPoint struct {
	Date       string `json:"date"`
	Engagement int    `json:"engagement"`
}

const (
	AiStatusPending   = "pending"
	AiStatusCompleted = "completed"
	AiStatusFailed    = "failed"
)
