package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"socialpulse/internal/ai"
	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/internal/transfer"
)

const (
	modelDefault  = "gpt-3.5-turbo"
	modelAdvanced = "gpt-4"
)

// AiService wraps the generative-text collaborator: it builds deterministic
// prompt strings from structured parameters, submits a single blocking
// completion call and shapes the raw text. Any collaborator failure maps
// to a generic generation error; nothing is retried or cached.
type AiService interface {
	GeneratePost(ctx context.Context, req *transfer.GeneratePostRequest) (string, error)
	GenerateHashtags(ctx context.Context, content, platform string) ([]string, error)
	GenerateCaption(ctx context.Context, content, platform, tone string) (string, error)
	GenerateComment(ctx context.Context, postContent, commentContext, tone string) (string, error)
	ContentSuggestions(ctx context.Context, platform, industry, targetAudience string) (string, error)
	AnalyzePerformance(ctx context.Context, postContent string, metrics map[string]int) (string, error)
	GenerateEngagementComment(ctx context.Context, userID int64, postText string) (string, error)
	AnalyzePost(ctx context.Context, userID int64, postText string) (*models.AiAnalysis, error)
}

type aiService struct {
	client ai.Completer
	ad     repository.AiDataRepository
	now    func() time.Time
}

func NewAiService(client ai.Completer, ad repository.AiDataRepository) AiService {
	return &aiService{
		client: client,
		ad:     ad,
		now:    time.Now,
	}
}

func (s *aiService) GeneratePost(ctx context.Context, req *transfer.GeneratePostRequest) (string, error) {
	prompt := fmt.Sprintf("Generate a %s %s social media post for %s about %s", req.Length, req.Tone, req.Platform, req.Topic)
	if req.Keywords != "" {
		prompt += fmt.Sprintf(" using these keywords: %s", req.Keywords)
	}
	prompt += ". The post should be engaging and optimized for the platform."

	system := fmt.Sprintf("You are a professional social media manager. Generate engaging posts that are optimized for the specified platform. The tone should be %s and the length should be %s.", req.Tone, req.Length)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:       modelAdvanced,
		System:      system,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", Upstream("failed to generate post")
	}

	return strings.TrimSpace(text), nil
}

func (s *aiService) GenerateHashtags(ctx context.Context, content, platform string) ([]string, error) {
	prompt := fmt.Sprintf("Generate relevant hashtags for the following %s post content: %q. Return only the hashtags separated by commas, without any additional text.", platform, content)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:  modelDefault,
		Prompt: prompt,
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, Upstream("failed to generate hashtags")
	}

	return splitHashtags(text), nil
}

// splitHashtags splits the raw completion on commas, trims whitespace and
// drops empty pieces, preserving order.
func splitHashtags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func (s *aiService) GenerateCaption(ctx context.Context, content, platform, tone string) (string, error) {
	prompt := fmt.Sprintf("Generate an engaging %s caption for the following %s post content: %q. The caption should be optimized for %s and include relevant emojis where appropriate.", tone, platform, content, platform)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:  modelDefault,
		Prompt: prompt,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", Upstream("failed to generate caption")
	}

	return strings.TrimSpace(text), nil
}

func (s *aiService) GenerateComment(ctx context.Context, postContent, commentContext, tone string) (string, error) {
	prompt := fmt.Sprintf("Generate a %s response to the following comment on this post: %q\nComment context: %q\nThe response should be engaging and appropriate for the platform.", tone, postContent, commentContext)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:  modelDefault,
		Prompt: prompt,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", Upstream("failed to generate comment")
	}

	return strings.TrimSpace(text), nil
}

func (s *aiService) ContentSuggestions(ctx context.Context, platform, industry, targetAudience string) (string, error) {
	prompt := fmt.Sprintf("Generate 5 content ideas for %s posts targeting %s in the %s industry. Each suggestion should include a title and brief description.", platform, targetAudience, industry)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:  modelDefault,
		Prompt: prompt,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", Upstream("failed to generate content suggestions")
	}

	return strings.TrimSpace(text), nil
}

func (s *aiService) AnalyzePerformance(ctx context.Context, postContent string, metrics map[string]int) (string, error) {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Analyze the following social media post and its engagement metrics:\nPost content: %q\nEngagement metrics: %s\nProvide insights on performance and suggestions for improvement.", postContent, metricsJSON)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:  modelDefault,
		Prompt: prompt,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", Upstream("failed to analyze performance")
	}

	return strings.TrimSpace(text), nil
}

func (s *aiService) GenerateEngagementComment(ctx context.Context, userID int64, postText string) (string, error) {
	prompt := fmt.Sprintf("Analyze this LinkedIn post and generate a relevant, engaging comment: %q", postText)

	text, err := s.client.Complete(ctx, ai.CompletionRequest{
		Model:       modelAdvanced,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", Upstream("failed to generate comment")
	}

	comment := strings.TrimSpace(text)

	_, err = s.ad.Create(ctx, &models.AiData{
		UserID:           userID,
		PostContent:      postText,
		GeneratedComment: comment,
		Status:           models.AiStatusCompleted,
	})
	if err != nil {
		return "", err
	}

	return comment, nil
}

// AnalyzePost stores a fixed analysis snapshot for the given post text and
// returns it. The snapshot shape matches what the aggregation paths
// consume: sentiment, topic counts, an engagement triple and one trend
// point for today.
func (s *aiService) AnalyzePost(ctx context.Context, userID int64, postText string) (*models.AiAnalysis, error) {
	analysis := models.AiAnalysis{
		Sentiment: "Positive",
		Engagement: map[string]int{
			"likes":    0,
			"comments": 0,
			"shares":   0,
		},
		Topics: []models.TopicCount{
			{Topic: "Technology", Count: 1},
			{Topic: "Innovation", Count: 1},
		},
		Trends: []models.TrendPoint{
			{Date: trendDayKey(s.now()), Engagement: 0},
		},
	}

	_, err := s.ad.Create(ctx, &models.AiData{
		UserID:      userID,
		PostContent: postText,
		Analysis:    analysis,
		Status:      models.AiStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	return &analysis, nil
}
