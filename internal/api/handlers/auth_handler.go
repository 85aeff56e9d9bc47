package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	config "socialpulse/configs"
	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
	"socialpulse/pkg/utils"
)

const sessionDuration = 24 * time.Hour

type AuthHandler struct {
	s   service.AuthService
	us  service.UserService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, auth service.AuthService, users service.UserService) *AuthHandler {
	return &AuthHandler{s: auth, us: users, cfg: cfg}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
		Expires:  time.Now().Add(sessionDuration),
	})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req transfer.SignupRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, err := h.s.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(transfer.SignupResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req transfer.VerifyEmailRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.s.VerifyEmail(c.Context(), req.Email, req.OTP); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Email verified successfully",
	})
}

func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var req transfer.ResendOTPRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.s.ResendOTP(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OTP sent successfully",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.LoginRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, err := h.s.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, fmt.Sprintf("%d", user.ID), sessionDuration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged in successfully",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:   h.cfg.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req transfer.ForgotPasswordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.s.ForgotPassword(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password reset email sent",
	})
}

func (h *AuthHandler) VerifyResetToken(c *fiber.Ctx) error {
	var req transfer.VerifyResetTokenRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.s.VerifyResetToken(c.Context(), req.Token); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token is valid",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req transfer.ResetPasswordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.s.ResetPassword(c.Context(), req.Token, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password reset successfully",
	})
}

func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	tokenString := c.Cookies(h.cfg.CookieName)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	claims, err := utils.ValidateToken(h.cfg.SecretKey, tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	user, err := h.us.GetUserInfo(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"user":          user,
	})
}

func (h *AuthHandler) LinkedinLogin(c *fiber.Ctx) error {
	authURL := "https://www.linkedin.com/oauth/v2/authorization"
	params := url.Values{}
	params.Add("client_id", h.cfg.LinkedinClientID)
	params.Add("redirect_uri", h.cfg.LinkedinRedirectURI)
	params.Add("response_type", "code")
	params.Add("scope", "openid profile email")

	fullURL := fmt.Sprintf("%s?%s", authURL, params.Encode())
	return c.Redirect(fullURL)
}

func (h *AuthHandler) LinkedinCallback(c *fiber.Ctx) error {
	code := c.Query("code")

	userID, err := h.s.LinkedinCallback(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, fmt.Sprintf("%d", userID), sessionDuration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	h.setSessionCookie(c, token)

	return c.Redirect(h.cfg.FrontendURL, fiber.StatusTemporaryRedirect)
}
