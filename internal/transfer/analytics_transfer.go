package transfer

import (
	"time"

	"socialpulse/internal/models"
)

type DashboardSummary struct {
	TotalPosts            int            `json:"totalPosts"`
	TotalEngagement       int            `json:"totalEngagement"`
	SentimentDistribution map[string]int `json:"sentimentDistribution"`
	TopicDistribution     map[string]int `json:"topicDistribution"`
	EngagementTrends      []TrendEntry   `json:"engagementTrends"`
	RecentPosts           []RecentPost   `json:"recentPosts"`
}

// TrendEntry pairs a record's creation time with its engagement triple,
// one entry per fetched record in fetch order (newest first).
type TrendEntry struct {
	Date       time.Time      `json:"date"`
	Engagement map[string]int `json:"engagement"`
}

type RecentPost struct {
	ID               int64             `json:"id"`
	Content          string            `json:"content"`
	GeneratedComment string            `json:"generatedComment"`
	Analysis         models.AiAnalysis `json:"analysis"`
	CreatedAt        time.Time         `json:"createdAt"`
}

type AccountAnalytics struct {
	TotalPosts            int                 `json:"totalPosts"`
	TotalEngagement       int                 `json:"totalEngagement"`
	AverageEngagementRate float64             `json:"averageEngagementRate"`
	TopPosts              []*models.Post      `json:"topPosts"`
	AudienceDemographics  models.Demographics `json:"audienceDemographics"`
	BestPerformingTime    *time.Time          `json:"bestPerformingTime"`
}
