package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"socialpulse/internal/queue"
	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type PostHandler struct {
	s           service.PostService
	media       service.MediaService
	AsynqClient *asynq.Client
}

func NewPostHandler(s service.PostService, media service.MediaService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: s, media: media, AsynqClient: asynqClient}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.PostCreation
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	post, err := h.s.CreatePost(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	userID := GetUserID(c)

	posts, err := h.s.ListPosts(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	post, err := h.s.GetPost(c.Context(), postID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	var req transfer.PostUpdate
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	post, err := h.s.UpdatePost(c.Context(), postID, userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	if err := h.s.RemovePost(c.Context(), postID, userID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	var req transfer.SchedulePostRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	publishAt, err := time.Parse(time.RFC3339, req.PublishedAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid publish time format",
		})
	}

	delay, err := h.s.SchedulePost(c.Context(), postID, userID, publishAt)
	if err != nil {
		return respondError(c, err)
	}

	err = queue.EnqueuePost(h.AsynqClient, queue.PublishPostPayload{PostID: postID}, delay)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post scheduled successfully",
	})
}

func (h *PostHandler) UploadMedia(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files selected",
		})
	}

	if err := h.media.AttachFiles(c.Context(), postID, userID, files); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Files uploaded successfully",
	})
}

func (h *PostHandler) ListMedia(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	assets, err := h.media.ListPostMedia(c.Context(), postID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assets)
}

func (h *PostHandler) GetEngagement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	engagement, err := h.s.GetEngagement(c.Context(), postID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(engagement)
}

func (h *PostHandler) UpsertEngagement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := paramID(c, "id")

	var req transfer.EngagementUpsert
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	engagement, err := h.s.UpsertEngagement(c.Context(), postID, userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(engagement)
}
