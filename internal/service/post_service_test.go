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
	"socialpulse/internal/transfer"
)

func newPostFixture() (*postService, *MockPostRepository, *MockEngagementRepository) {
	pr := new(MockPostRepository)
	er := new(MockEngagementRepository)
	s := &postService{
		pr:  pr,
		er:  er,
		now: func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
	return s, pr, er
}

func TestCreatePostDefaults(t *testing.T) {
	s, pr, _ := newPostFixture()

	pr.On("Create", context.Background(), mock.MatchedBy(func(p *models.Post) bool {
		return p.UserID == 1 &&
			p.Platform == models.PlatformLinkedin &&
			p.Status == models.PostStatusDraft
	})).Return(int64(10), nil)

	post, err := s.CreatePost(context.Background(), 1, &transfer.PostCreation{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), post.ID)
	pr.AssertExpectations(t)
}

func TestGetPostOwnership(t *testing.T) {
	s, pr, _ := newPostFixture()

	pr.On("GetByID", context.Background(), int64(10)).
		Return(&models.Post{ID: 10, UserID: 2}, nil)

	_, err := s.GetPost(context.Background(), 10, 1)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestGetPostMissing(t *testing.T) {
	s, pr, _ := newPostFixture()
	pr.On("GetByID", context.Background(), int64(10)).Return(nil, nil)

	_, err := s.GetPost(context.Background(), 10, 1)
	// missing reports before forbidden, even for non-owners
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdatePostPartial(t *testing.T) {
	s, pr, _ := newPostFixture()

	existing := &models.Post{
		ID: 10, UserID: 1, Content: "old", Platform: models.PlatformLinkedin,
		Status: models.PostStatusDraft,
	}
	pr.On("GetByID", context.Background(), int64(10)).Return(existing, nil)
	pr.On("Update", context.Background(), mock.AnythingOfType("*models.Post")).Return(nil)

	content := "new content"
	post, err := s.UpdatePost(context.Background(), 10, 1, &transfer.PostUpdate{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, "new content", post.Content)
	// untouched fields survive
	assert.Equal(t, models.PlatformLinkedin, post.Platform)
	assert.Equal(t, models.PostStatusDraft, post.Status)
}

func TestSchedulePost(t *testing.T) {
	s, pr, _ := newPostFixture()

	pr.On("GetByID", context.Background(), int64(10)).
		Return(&models.Post{ID: 10, UserID: 1, Status: models.PostStatusDraft}, nil)

	publishAt := time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)
	pr.On("UpdateStatus", context.Background(), int64(10), models.PostStatusScheduled, &publishAt).Return(nil)

	delay, err := s.SchedulePost(context.Background(), 10, 1, publishAt)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, delay)
}

func TestSchedulePostInPast(t *testing.T) {
	s, pr, _ := newPostFixture()

	pr.On("GetByID", context.Background(), int64(10)).
		Return(&models.Post{ID: 10, UserID: 1}, nil)

	past := time.Date(2026, 6, 15, 11, 0, 0, 0, time.UTC)
	_, err := s.SchedulePost(context.Background(), 10, 1, past)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpsertEngagementCreatesThenUpdates(t *testing.T) {
	s, pr, er := newPostFixture()

	pr.On("GetByID", context.Background(), int64(10)).
		Return(&models.Post{ID: 10, UserID: 1, Platform: models.PlatformLinkedin}, nil)

	req := &transfer.EngagementUpsert{
		Metrics: models.EngagementMetrics{Likes: 3, EngagementRate: 1.5},
	}

	er.On("GetByPostID", context.Background(), int64(10)).Return(nil, false, nil).Once()
	er.On("Create", context.Background(), mock.MatchedBy(func(e *models.Engagement) bool {
		// platform falls back to the post's platform
		return e.PostID == 10 && e.Platform == models.PlatformLinkedin && e.Metrics.Likes == 3
	})).Return(int64(77), nil).Once()

	created, err := s.UpsertEngagement(context.Background(), 10, 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)

	er.On("GetByPostID", context.Background(), int64(10)).
		Return(&models.Engagement{ID: 77, PostID: 10}, true, nil).Once()
	er.On("Update", context.Background(), mock.AnythingOfType("*models.Engagement")).Return(nil).Once()

	updated, err := s.UpsertEngagement(context.Background(), 10, 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(77), updated.ID)

	er.AssertExpectations(t)
}

func TestGetEngagementMissing(t *testing.T) {
	s, pr, er := newPostFixture()

	pr.On("GetByID", context.Background(), int64(10)).
		Return(&models.Post{ID: 10, UserID: 1}, nil)
	er.On("GetByPostID", context.Background(), int64(10)).Return(nil, false, nil)

	_, err := s.GetEngagement(context.Background(), 10, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}
