package service

import (
	"context"
	"time"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/internal/transfer"
)

type PostService interface {
	CreatePost(ctx context.Context, userID int64, req *transfer.PostCreation) (*models.Post, error)
	ListPosts(ctx context.Context, userID int64) ([]*models.Post, error)
	GetPost(ctx context.Context, postID, userID int64) (*models.Post, error)
	UpdatePost(ctx context.Context, postID, userID int64, req *transfer.PostUpdate) (*models.Post, error)
	RemovePost(ctx context.Context, postID, userID int64) error
	SchedulePost(ctx context.Context, postID, userID int64, publishAt time.Time) (time.Duration, error)
	GetEngagement(ctx context.Context, postID, userID int64) (*models.Engagement, error)
	UpsertEngagement(ctx context.Context, postID, userID int64, req *transfer.EngagementUpsert) (*models.Engagement, error)
}

type postService struct {
	pr  repository.PostRepository
	er  repository.EngagementRepository
	now func() time.Time
}

func NewPostService(pr repository.PostRepository, er repository.EngagementRepository) PostService {
	return &postService{
		pr:  pr,
		er:  er,
		now: time.Now,
	}
}

// ownedPost loads a post and checks the caller owns it. Missing post
// reports before forbidden, matching the rest of the resource handlers.
func (s *postService) ownedPost(ctx context.Context, postID, userID int64) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NotFound("post not found")
	}
	if err := Authorize(userID, post.UserID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) CreatePost(ctx context.Context, userID int64, req *transfer.PostCreation) (*models.Post, error) {
	post := &models.Post{
		UserID:   userID,
		Content:  req.Content,
		Platform: req.Platform,
		Status:   req.Status,
	}
	if post.Platform == "" {
		post.Platform = models.PlatformLinkedin
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	if req.Metadata != nil {
		post.Metadata = *req.Metadata
	}

	id, err := s.pr.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	post.CreatedAt = s.now()
	post.UpdatedAt = post.CreatedAt

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, userID int64) ([]*models.Post, error) {
	return s.pr.ListByUserID(ctx, userID)
}

func (s *postService) GetPost(ctx context.Context, postID, userID int64) (*models.Post, error) {
	return s.ownedPost(ctx, postID, userID)
}

func (s *postService) UpdatePost(ctx context.Context, postID, userID int64, req *transfer.PostUpdate) (*models.Post, error) {
	post, err := s.ownedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Platform != nil {
		post.Platform = *req.Platform
	}
	if req.Metadata != nil {
		post.Metadata = *req.Metadata
	}
	if req.Engagement != nil {
		post.Engagement = *req.Engagement
	}
	if req.AiAnalysis != nil {
		post.AiAnalysis = *req.AiAnalysis
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) RemovePost(ctx context.Context, postID, userID int64) error {
	if _, err := s.ownedPost(ctx, postID, userID); err != nil {
		return err
	}
	return s.pr.Remove(ctx, postID)
}

// SchedulePost stores the target publish time and returns how long from
// now the publish should run. A time in the past is rejected.
func (s *postService) SchedulePost(ctx context.Context, postID, userID int64, publishAt time.Time) (time.Duration, error) {
	if _, err := s.ownedPost(ctx, postID, userID); err != nil {
		return 0, err
	}

	delay := publishAt.Sub(s.now())
	if delay <= 0 {
		return 0, Invalid("publish time must be in the future")
	}

	if err := s.pr.UpdateStatus(ctx, postID, models.PostStatusScheduled, &publishAt); err != nil {
		return 0, err
	}
	return delay, nil
}

func (s *postService) GetEngagement(ctx context.Context, postID, userID int64) (*models.Engagement, error) {
	if _, err := s.ownedPost(ctx, postID, userID); err != nil {
		return nil, err
	}

	e, exists, err := s.er.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFound("engagement not found")
	}
	return e, nil
}

func (s *postService) UpsertEngagement(ctx context.Context, postID, userID int64, req *transfer.EngagementUpsert) (*models.Engagement, error) {
	post, err := s.ownedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	platform := req.Platform
	if platform == "" {
		platform = post.Platform
	}

	existing, exists, err := s.er.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	e := &models.Engagement{
		PostID:    postID,
		Platform:  platform,
		Metrics:   req.Metrics,
		Comments:  req.Comments,
		Analytics: req.Analytics,
	}

	if exists {
		e.ID = existing.ID
		if err := s.er.Update(ctx, e); err != nil {
			return nil, err
		}
		return e, nil
	}

	id, err := s.er.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}
