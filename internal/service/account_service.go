package service

import (
	"context"
	"time"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/internal/transfer"
)

type AccountService interface {
	ConnectAccount(ctx context.Context, userID int64, req *transfer.AccountConnection) (*models.SocialAccount, error)
	ListAccounts(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	UpdateSettings(ctx context.Context, accountID, userID int64, req *transfer.AccountSettingsUpdate) (*models.AccountSettings, error)
	DisconnectAccount(ctx context.Context, accountID, userID int64) error
}

type accountService struct {
	ar repository.SocialAccountRepository
}

func NewAccountService(ar repository.SocialAccountRepository) AccountService {
	return &accountService{ar: ar}
}

func (s *accountService) ownedAccount(ctx context.Context, accountID, userID int64) (*models.SocialAccount, error) {
	account, err := s.ar.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, NotFound("account not found")
	}
	if err := Authorize(userID, account.UserID); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ConnectAccount(ctx context.Context, userID int64, req *transfer.AccountConnection) (*models.SocialAccount, error) {
	account := &models.SocialAccount{
		UserID:         userID,
		Platform:       req.Platform,
		AccountName:    req.AccountName,
		AccountID:      req.AccountID,
		AccessToken:    req.AccessToken,
		RefreshToken:   req.RefreshToken,
		ProfilePicture: req.ProfilePicture,
		Followers:      req.Followers,
		Following:      req.Following,
		IsActive:       true,
		Settings:       models.DefaultAccountSettings(),
	}

	if req.TokenExpiry != "" {
		expiry, err := time.Parse(time.RFC3339, req.TokenExpiry)
		if err != nil {
			return nil, Invalid("invalid token expiry format")
		}
		account.TokenExpiry = &expiry
	}

	id, err := s.ar.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = id

	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	return s.ar.ListByUserID(ctx, userID)
}

func (s *accountService) UpdateSettings(ctx context.Context, accountID, userID int64, req *transfer.AccountSettingsUpdate) (*models.AccountSettings, error) {
	account, err := s.ownedAccount(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	settings := mergeSettings(account.Settings, req)
	if err := s.ar.UpdateSettings(ctx, accountID, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// mergeSettings overlays the non-nil fields of the update onto the stored
// settings.
func mergeSettings(existing models.AccountSettings, delta *transfer.AccountSettingsUpdate) models.AccountSettings {
	if delta == nil {
		return existing
	}
	if delta.AutoPost != nil {
		existing.AutoPost = *delta.AutoPost
	}
	if delta.BestTimeToPost != nil {
		existing.BestTimeToPost = *delta.BestTimeToPost
	}
	if delta.EngagementNotifications != nil {
		existing.EngagementNotifications = *delta.EngagementNotifications
	}
	return existing
}

func (s *accountService) DisconnectAccount(ctx context.Context, accountID, userID int64) error {
	if _, err := s.ownedAccount(ctx, accountID, userID); err != nil {
		return err
	}
	return s.ar.Remove(ctx, accountID)
}
