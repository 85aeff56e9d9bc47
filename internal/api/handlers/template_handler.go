package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type TemplateHandler struct {
	s service.TemplateService
}

func NewTemplateHandler(s service.TemplateService) *TemplateHandler {
	return &TemplateHandler{s: s}
}

func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.TemplateCreation
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	template, err := h.s.CreateTemplate(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	userID := GetUserID(c)

	templates, err := h.s.ListTemplates(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(templates)
}

func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	templateID := paramID(c, "id")

	template, err := h.s.GetTemplate(c.Context(), templateID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(template)
}

func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	templateID := paramID(c, "id")

	var req transfer.TemplateUpdate
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	template, err := h.s.UpdateTemplate(c.Context(), templateID, userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(template)
}

func (h *TemplateHandler) RemoveTemplate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	templateID := paramID(c, "id")

	if err := h.s.RemoveTemplate(c.Context(), templateID, userID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
