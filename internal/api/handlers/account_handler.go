package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type AccountHandler struct {
	s         service.AccountService
	analytics service.AnalyticsService
}

func NewAccountHandler(s service.AccountService, analytics service.AnalyticsService) *AccountHandler {
	return &AccountHandler{s: s, analytics: analytics}
}

func (h *AccountHandler) ConnectAccount(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.AccountConnection
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	account, err := h.s.ConnectAccount(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accounts, err := h.s.ListAccounts(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *AccountHandler) UpdateSettings(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := paramID(c, "id")

	var req transfer.AccountSettingsUpdate
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	settings, err := h.s.UpdateSettings(c.Context(), accountID, userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *AccountHandler) DisconnectAccount(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := paramID(c, "id")

	if err := h.s.DisconnectAccount(c.Context(), accountID, userID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AccountHandler) AccountAnalytics(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := paramID(c, "id")

	analytics, err := h.analytics.AccountAnalytics(c.Context(), accountID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(analytics)
}
