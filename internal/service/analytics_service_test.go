package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialpulse/internal/models"
)

func newAnalyticsFixture() (*analyticsService, *MockAiDataRepository, *MockPostRepository, *MockEngagementRepository, *MockSocialAccountRepository) {
	ad := new(MockAiDataRepository)
	pr := new(MockPostRepository)
	er := new(MockEngagementRepository)
	ar := new(MockSocialAccountRepository)

	s := &analyticsService{
		ad:  ad,
		pr:  pr,
		er:  er,
		ar:  ar,
		now: func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
	return s, ad, pr, er, ar
}

func TestDashboardSummaryEmpty(t *testing.T) {
	s, ad, _, _, _ := newAnalyticsFixture()
	ad.On("ListRecentByUser", context.Background(), int64(1), 10).Return([]*models.AiData{}, nil)

	summary, err := s.DashboardSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalPosts)
	assert.Equal(t, 0, summary.TotalEngagement)
	assert.Empty(t, summary.SentimentDistribution)
	assert.Empty(t, summary.TopicDistribution)
	assert.Empty(t, summary.EngagementTrends)
	assert.Empty(t, summary.RecentPosts)
}

func TestDashboardSummaryAggregation(t *testing.T) {
	s, ad, _, _, _ := newAnalyticsFixture()

	records := []*models.AiData{
		{
			ID:          1,
			PostContent: "first",
			Analysis: models.AiAnalysis{
				Sentiment:  "Positive",
				Engagement: map[string]int{"likes": 10, "comments": 2, "shares": 1},
				Topics: []models.TopicCount{
					{Topic: "Technology", Count: 2},
				},
			},
		},
		{
			ID:          2,
			PostContent: "second",
			Analysis: models.AiAnalysis{
				// missing sentiment falls back to neutral
				Engagement: map[string]int{"likes": 5},
				Topics: []models.TopicCount{
					{Topic: "Technology", Count: 1},
					{Topic: "Marketing", Count: 4},
				},
			},
		},
		{
			ID:          3,
			PostContent: "third",
			Analysis: models.AiAnalysis{
				Sentiment: "Positive",
			},
		},
	}
	ad.On("ListRecentByUser", context.Background(), int64(1), 10).Return(records, nil)

	summary, err := s.DashboardSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalPosts)
	assert.Equal(t, 18, summary.TotalEngagement)
	assert.Equal(t, map[string]int{"Positive": 2, "neutral": 1}, summary.SentimentDistribution)
	assert.Equal(t, map[string]int{"Technology": 3, "Marketing": 4}, summary.TopicDistribution)

	require.Len(t, summary.EngagementTrends, 3)
	assert.Equal(t, map[string]int{"likes": 10, "comments": 2, "shares": 1}, summary.EngagementTrends[0].Engagement)
	assert.Equal(t, map[string]int{"likes": 5, "comments": 0, "shares": 0}, summary.EngagementTrends[1].Engagement)

	require.Len(t, summary.RecentPosts, 3)
	assert.Equal(t, "first", summary.RecentPosts[0].Content)
}

func TestAccountAnalyticsUnknownAccount(t *testing.T) {
	s, _, _, _, ar := newAnalyticsFixture()
	ar.On("GetByID", context.Background(), int64(99)).Return(nil, nil)

	_, err := s.AccountAnalytics(context.Background(), 99, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAccountAnalyticsNoEngagements(t *testing.T) {
	s, _, pr, er, ar := newAnalyticsFixture()

	account := &models.SocialAccount{ID: 3, UserID: 1, Platform: models.PlatformLinkedin}
	ar.On("GetByID", context.Background(), int64(3)).Return(account, nil)
	pr.On("ListByUserAndPlatform", context.Background(), int64(1), models.PlatformLinkedin).
		Return([]*models.Post{{ID: 10, UserID: 1}}, nil)
	er.On("ListByPostIDs", context.Background(), []int64{10}, models.PlatformLinkedin).
		Return([]*models.Engagement{}, nil)

	analytics, err := s.AccountAnalytics(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, analytics.TotalPosts)
	assert.Equal(t, 0, analytics.TotalEngagement)
	// division guard keeps the rate at zero instead of NaN
	assert.Equal(t, 0.0, analytics.AverageEngagementRate)
	assert.Nil(t, analytics.BestPerformingTime)
}

func TestAccountAnalyticsAveragesAndTopPosts(t *testing.T) {
	s, _, pr, er, ar := newAnalyticsFixture()

	account := &models.SocialAccount{ID: 3, UserID: 1, Platform: models.PlatformLinkedin}
	posts := []*models.Post{
		{ID: 10, UserID: 1},
		{ID: 11, UserID: 1},
		{ID: 12, UserID: 1},
	}
	when := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	engagements := []*models.Engagement{
		{
			PostID: 10,
			Metrics: models.EngagementMetrics{
				Likes: 10, Comments: 5, Shares: 1, EngagementRate: 2.0,
			},
			Analytics: models.EngagementInsights{
				BestPerformingTime: &when,
				AudienceDemographics: models.Demographics{
					Gender: map[string]any{"female": 55},
				},
			},
		},
		{
			PostID: 11,
			Metrics: models.EngagementMetrics{
				Likes: 4, EngagementRate: 6.0,
			},
		},
	}

	ar.On("GetByID", context.Background(), int64(3)).Return(account, nil)
	pr.On("ListByUserAndPlatform", context.Background(), int64(1), models.PlatformLinkedin).Return(posts, nil)
	er.On("ListByPostIDs", context.Background(), []int64{10, 11, 12}, models.PlatformLinkedin).Return(engagements, nil)

	analytics, err := s.AccountAnalytics(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.TotalPosts)
	assert.Equal(t, 20, analytics.TotalEngagement)
	assert.Equal(t, 4.0, analytics.AverageEngagementRate)

	// highest rate first, posts without a record trail with rate 0
	require.Len(t, analytics.TopPosts, 3)
	assert.Equal(t, int64(11), analytics.TopPosts[0].ID)
	assert.Equal(t, int64(10), analytics.TopPosts[1].ID)
	assert.Equal(t, int64(12), analytics.TopPosts[2].ID)

	// demographics and best time come from the first record
	assert.Equal(t, map[string]any{"female": 55}, analytics.AudienceDemographics.Gender)
	assert.Equal(t, &when, analytics.BestPerformingTime)
}

func TestUpdateEngagementUnknownRecord(t *testing.T) {
	s, ad, _, _, _ := newAnalyticsFixture()
	ad.On("GetByID", context.Background(), int64(42)).Return(nil, nil)

	_, err := s.UpdateEngagement(context.Background(), 42, map[string]int{"likes": 1})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateEngagementMergesAndCoalescesTrend(t *testing.T) {
	s, ad, _, _, _ := newAnalyticsFixture()

	record := &models.AiData{
		ID: 42,
		Analysis: models.AiAnalysis{
			Sentiment:  "Positive",
			Engagement: map[string]int{"likes": 1, "comments": 3},
			Trends: []models.TrendPoint{
				{Date: "2026-06-14", Engagement: 4},
			},
		},
	}
	ad.On("GetByID", context.Background(), int64(42)).Return(record, nil).Once()
	ad.On("UpdateAnalysis", context.Background(), int64(42), mock.AnythingOfType("models.AiAnalysis")).Return(nil).Once()

	analysis, err := s.UpdateEngagement(context.Background(), 42, map[string]int{"likes": 2})
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.Engagement["likes"])
	assert.Equal(t, 3, analysis.Engagement["comments"])
	require.Len(t, analysis.Trends, 2)
	assert.Equal(t, "2026-06-15", analysis.Trends[1].Date)
	assert.Equal(t, 2, analysis.Trends[1].Engagement)

	// a second update the same day overwrites the trend point
	second := &models.AiData{ID: 42, Analysis: *analysis}
	ad.On("GetByID", context.Background(), int64(42)).Return(second, nil).Once()
	ad.On("UpdateAnalysis", context.Background(), int64(42), mock.AnythingOfType("models.AiAnalysis")).Return(nil).Once()

	analysis, err = s.UpdateEngagement(context.Background(), 42, map[string]int{"likes": 9})
	require.NoError(t, err)

	assert.Equal(t, 9, analysis.Engagement["likes"])
	require.Len(t, analysis.Trends, 2)
	assert.Equal(t, 9, analysis.Trends[1].Engagement)
}

func TestUserAnalytics(t *testing.T) {
	s, ad, _, _, _ := newAnalyticsFixture()

	records := []*models.AiData{{ID: 1}, {ID: 2}}
	ad.On("ListRecentByUser", context.Background(), int64(1), 10).Return(records, nil)

	got, err := s.UserAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
