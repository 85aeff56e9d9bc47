package service

import (
	"context"
	"time"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/internal/transfer"
)

// recentWindow bounds every per-user rollup to the most recent records.
const recentWindow = 10

// AnalyticsService computes read-only derived views over a user's recent
// records. It never mutates the underlying posts or engagement rows; the
// only write path is UpdateEngagement on an AiData analysis snapshot.
type AnalyticsService interface {
	DashboardSummary(ctx context.Context, userID int64) (*transfer.DashboardSummary, error)
	AccountAnalytics(ctx context.Context, accountID, userID int64) (*transfer.AccountAnalytics, error)
	UpdateEngagement(ctx context.Context, recordID int64, delta map[string]int) (*models.AiAnalysis, error)
	UserAnalytics(ctx context.Context, userID int64) ([]*models.AiData, error)
}

type analyticsService struct {
	ad  repository.AiDataRepository
	pr  repository.PostRepository
	er  repository.EngagementRepository
	ar  repository.SocialAccountRepository
	now func() time.Time
}

func NewAnalyticsService(
	ad repository.AiDataRepository,
	pr repository.PostRepository,
	er repository.EngagementRepository,
	ar repository.SocialAccountRepository) AnalyticsService {
	return &analyticsService{
		ad:  ad,
		pr:  pr,
		er:  er,
		ar:  ar,
		now: time.Now,
	}
}

func (s *analyticsService) DashboardSummary(ctx context.Context, userID int64) (*transfer.DashboardSummary, error) {
	records, err := s.ad.ListRecentByUser(ctx, userID, recentWindow)
	if err != nil {
		return nil, err
	}

	summary := &transfer.DashboardSummary{
		TotalPosts:            len(records),
		SentimentDistribution: make(map[string]int),
		TopicDistribution:     make(map[string]int),
		EngagementTrends:      make([]transfer.TrendEntry, 0, len(records)),
		RecentPosts:           make([]transfer.RecentPost, 0, len(records)),
	}

	for _, record := range records {
		summary.TotalEngagement += engagementTotal(record.Analysis.Engagement)

		sentiment := record.Analysis.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		summary.SentimentDistribution[sentiment]++

		for _, topic := range record.Analysis.Topics {
			summary.TopicDistribution[topic.Topic] += topic.Count
		}

		summary.EngagementTrends = append(summary.EngagementTrends, transfer.TrendEntry{
			Date:       record.CreatedAt,
			Engagement: engagementTriple(record.Analysis.Engagement),
		})

		summary.RecentPosts = append(summary.RecentPosts, transfer.RecentPost{
			ID:               record.ID,
			Content:          record.PostContent,
			GeneratedComment: record.GeneratedComment,
			Analysis:         record.Analysis,
			CreatedAt:        record.CreatedAt,
		})
	}

	return summary, nil
}

func (s *analyticsService) AccountAnalytics(ctx context.Context, accountID, userID int64) (*transfer.AccountAnalytics, error) {
	account, err := s.ar.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, NotFound("account not found")
	}

	posts, err := s.pr.ListByUserAndPlatform(ctx, userID, account.Platform)
	if err != nil {
		return nil, err
	}

	postIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	engagements, err := s.er.ListByPostIDs(ctx, postIDs, account.Platform)
	if err != nil {
		return nil, err
	}

	totalEngagement := 0
	rateSum := 0.0
	rates := make(map[int64]float64, len(engagements))
	for _, e := range engagements {
		totalEngagement += e.Metrics.Likes + e.Metrics.Comments + e.Metrics.Shares
		rateSum += e.Metrics.EngagementRate
		rates[e.PostID] = e.Metrics.EngagementRate
	}

	// Division by max(count, 1) keeps the empty case at rate 0 instead
	// of failing.
	count := len(engagements)
	if count == 0 {
		count = 1
	}

	demographics, bestTime := sampleAudienceInsights(engagements)

	return &transfer.AccountAnalytics{
		TotalPosts:            len(posts),
		TotalEngagement:       totalEngagement,
		AverageEngagementRate: rateSum / float64(count),
		TopPosts:              topPostsByRate(posts, rates, 5),
		AudienceDemographics:  demographics,
		BestPerformingTime:    bestTime,
	}, nil
}

func (s *analyticsService) UpdateEngagement(ctx context.Context, recordID int64, delta map[string]int) (*models.AiAnalysis, error) {
	record, err := s.ad.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, NotFound("post not found")
	}

	analysis := record.Analysis
	analysis.Engagement = mergeEngagement(analysis.Engagement, delta)

	today := trendDayKey(s.now())
	analysis.Trends = upsertTrend(analysis.Trends, today, deltaTotal(delta))

	if err := s.ad.UpdateAnalysis(ctx, recordID, analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}

func (s *analyticsService) UserAnalytics(ctx context.Context, userID int64) ([]*models.AiData, error) {
	return s.ad.ListRecentByUser(ctx, userID, recentWindow)
}
