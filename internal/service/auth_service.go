package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	config "socialpulse/configs"
	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/pkg/utils"
)

const otpValidity = 10 * time.Minute

// Mailer is the mail collaborator consumed by the auth flows.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	VerifyEmail(ctx context.Context, email, otp string) error
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	LinkedinCallback(ctx context.Context, code string) (int64, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
	m   Mailer
}

func NewAuthService(cfg config.Config, u repository.UserRepository, m Mailer) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
		m:   m,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(email)

	_, exists, err := s.u.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Invalid("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	otp, err := utils.RandomOTP()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(otpValidity)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		OTP:          otp,
		OTPExpiry:    &expiry,
	}

	id, err := s.u.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	if err := s.m.Send(email, "Verify Your Account", fmt.Sprintf("Your OTP is: %s", otp)); err != nil {
		return nil, Upstream("failed to send verification email")
	}

	return user, nil
}

func (s *authService) VerifyEmail(ctx context.Context, email, otp string) error {
	user, exists, err := s.u.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("user not found")
	}

	if user.OTP == "" || user.OTP != otp || user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		return Invalid("invalid or expired OTP")
	}

	return s.u.MarkVerified(ctx, user.ID)
}

func (s *authService) ResendOTP(ctx context.Context, email string) error {
	user, exists, err := s.u.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("user not found")
	}
	if user.IsVerified {
		return Invalid("email already verified")
	}

	otp, err := utils.RandomOTP()
	if err != nil {
		return err
	}

	if err := s.u.SetOTP(ctx, user.ID, otp, time.Now().Add(otpValidity)); err != nil {
		return err
	}

	if err := s.m.Send(user.Email, "Verify Your Account", fmt.Sprintf("Your OTP is: %s", otp)); err != nil {
		return Upstream("failed to send verification email")
	}

	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, exists, err := s.u.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFound("user not found")
	}
	if !user.IsVerified {
		return nil, Invalid("email not verified")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, Invalid("invalid credentials")
	}

	return user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, exists, err := s.u.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("user not found")
	}

	token, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	if err := s.u.SetOTP(ctx, user.ID, token, time.Now().Add(otpValidity)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.cfg.FrontendURL, token)
	if err := s.m.Send(user.Email, "Reset Your Password", fmt.Sprintf("Click here to reset: %s", resetURL)); err != nil {
		return Upstream("failed to send reset email")
	}

	return nil
}

// VerifyResetToken and ResetPassword report the same failure for an
// expired token and an unknown one; callers cannot tell the two apart.
func (s *authService) VerifyResetToken(ctx context.Context, token string) error {
	_, exists, err := s.u.GetByResetToken(ctx, token, time.Now())
	if err != nil {
		return err
	}
	if !exists {
		return Invalid("invalid or expired token")
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, exists, err := s.u.GetByResetToken(ctx, token, time.Now())
	if err != nil {
		return err
	}
	if !exists {
		return Invalid("invalid or expired token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return s.u.SetPassword(ctx, user.ID, string(hash))
}

type linkedinUserInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (s *authService) LinkedinCallback(ctx context.Context, code string) (int64, error) {
	if code == "" {
		return 0, Invalid("authorization code is empty")
	}

	oauth2Config := &oauth2.Config{
		ClientID:     s.cfg.LinkedinClientID,
		ClientSecret: s.cfg.LinkedinClientSecret,
		RedirectURL:  s.cfg.LinkedinRedirectURI,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     linkedin.Endpoint,
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return 0, Upstream("failed to exchange authorization code")
	}

	client := oauth2Config.Client(ctx, token)
	info, err := fetchLinkedinUserInfo(client)
	if err != nil {
		slog.Info(err.Error())
		return 0, Upstream("failed to fetch user profile")
	}

	user, exists, err := s.u.GetByEmail(ctx, strings.ToLower(info.Email))
	if err != nil {
		return 0, err
	}
	if exists {
		return user.ID, nil
	}

	// OAuth users have no local password; a random hash keeps the
	// password login path closed for them.
	placeholder, err := gonanoid.New()
	if err != nil {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	return s.u.Create(ctx, &models.User{
		Name:         info.Name,
		Email:        strings.ToLower(info.Email),
		PasswordHash: string(hash),
		LinkedinID:   info.Sub,
		IsVerified:   true,
	})
}

func fetchLinkedinUserInfo(client *http.Client) (*linkedinUserInfo, error) {
	resp, err := client.Get("https://api.linkedin.com/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info linkedinUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
