package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
)

type DashboardHandler struct {
	s service.AnalyticsService
}

func NewDashboardHandler(s service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{s: s}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID := GetUserID(c)

	summary, err := h.s.DashboardSummary(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

func (h *DashboardHandler) UserAnalytics(c *fiber.Ctx) error {
	userID := GetUserID(c)

	records, err := h.s.UserAnalytics(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *DashboardHandler) UpdateEngagement(c *fiber.Ctx) error {
	recordID := paramID(c, "id")

	var delta map[string]int
	if err := c.BodyParser(&delta); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	analysis, err := h.s.UpdateEngagement(c.Context(), recordID, delta)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}
