package models

import "time"

type Post struct {
	ID          int64        `db:"id" json:"id"`
	UserID      int64        `db:"user_id" json:"user_id"`
	Content     string       `db:"content" json:"content"`
	Platform    string       `db:"platform" json:"platform"`
	Metadata    PostMetadata `db:"metadata" json:"metadata"`
	Engagement  PostCounters `db:"engagement" json:"engagement"`
	AiAnalysis  PostAnalysis `db:"ai_analysis" json:"ai_analysis"`
	Status      string       `db:"status" json:"status"`
	PublishedAt *time.Time   `db:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

type PostMetadata struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url,omitempty"`
}

type PostCounters struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Views    int `json:"views"`
}

type PostAnalysis struct {
	Sentiment         string           `json:"sentiment,omitempty"`
	Topics            []TopicRelevance `json:"topics,omitempty"`
	Keywords          []string         `json:"keywords,omitempty"`
	SuggestedHashtags []string         `json:"suggested_hashtags,omitempty"`
}

type TopicRelevance struct {
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

const (
	PlatformLinkedin = "linkedin"
	PlatformTwitter  = "twitter"
	PlatformFacebook = "facebook"
)
