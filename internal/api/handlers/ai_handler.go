package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type AiHandler struct {
	s service.AiService
}

func NewAiHandler(s service.AiService) *AiHandler {
	return &AiHandler{s: s}
}

func (h *AiHandler) GeneratePost(c *fiber.Ctx) error {
	var req transfer.GeneratePostRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	post, err := h.s.GeneratePost(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post": post,
	})
}

func (h *AiHandler) GenerateHashtags(c *fiber.Ctx) error {
	var req transfer.GenerateHashtagsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	hashtags, err := h.s.GenerateHashtags(c.Context(), req.Content, req.Platform)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"hashtags": hashtags,
	})
}

func (h *AiHandler) GenerateCaption(c *fiber.Ctx) error {
	var req transfer.GenerateCaptionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	caption, err := h.s.GenerateCaption(c.Context(), req.Content, req.Platform, req.Tone)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"caption": caption,
	})
}

func (h *AiHandler) GenerateComment(c *fiber.Ctx) error {
	var req transfer.GenerateCommentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	comment, err := h.s.GenerateComment(c.Context(), req.PostContent, req.CommentContext, req.Tone)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"comment": comment,
	})
}

func (h *AiHandler) ContentSuggestions(c *fiber.Ctx) error {
	var req transfer.ContentSuggestionsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	suggestions, err := h.s.ContentSuggestions(c.Context(), req.Platform, req.Industry, req.TargetAudience)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"suggestions": suggestions,
	})
}

func (h *AiHandler) AnalyzePerformance(c *fiber.Ctx) error {
	var req transfer.AnalyzePerformanceRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	analysis, err := h.s.AnalyzePerformance(c.Context(), req.PostContent, req.EngagementMetrics)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"analysis": analysis,
	})
}

func (h *AiHandler) GenerateEngagementComment(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.AnalyzePostRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	comment, err := h.s.GenerateEngagementComment(c.Context(), userID, req.PostText)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"comment": comment,
	})
}

func (h *AiHandler) AnalyzePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.AnalyzePostRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	analysis, err := h.s.AnalyzePost(c.Context(), userID, req.PostText)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}
