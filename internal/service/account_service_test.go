package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialpulse/internal/models"
	"socialpulse/internal/transfer"
)

func boolPtr(b bool) *bool { return &b }

func TestConnectAccountDefaults(t *testing.T) {
	ar := new(MockSocialAccountRepository)
	s := NewAccountService(ar)

	ar.On("Create", context.Background(), mock.MatchedBy(func(sa *models.SocialAccount) bool {
		return sa.UserID == 1 &&
			sa.IsActive &&
			sa.Settings == models.DefaultAccountSettings()
	})).Return(int64(3), nil)

	account, err := s.ConnectAccount(context.Background(), 1, &transfer.AccountConnection{
		Platform:    models.PlatformLinkedin,
		AccountName: "Acme",
		AccountID:   "ext-1",
		AccessToken: "tok",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.Nil(t, account.TokenExpiry)
}

func TestConnectAccountBadExpiry(t *testing.T) {
	s := NewAccountService(new(MockSocialAccountRepository))

	_, err := s.ConnectAccount(context.Background(), 1, &transfer.AccountConnection{
		Platform:    models.PlatformLinkedin,
		AccountName: "Acme",
		AccountID:   "ext-1",
		AccessToken: "tok",
		TokenExpiry: "tomorrow",
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestMergeSettings(t *testing.T) {
	existing := models.AccountSettings{
		AutoPost:                false,
		BestTimeToPost:          true,
		EngagementNotifications: true,
	}

	merged := mergeSettings(existing, &transfer.AccountSettingsUpdate{
		AutoPost: boolPtr(true),
	})

	assert.True(t, merged.AutoPost)
	// nil fields keep stored values
	assert.True(t, merged.BestTimeToPost)
	assert.True(t, merged.EngagementNotifications)

	merged = mergeSettings(merged, &transfer.AccountSettingsUpdate{
		BestTimeToPost:          boolPtr(false),
		EngagementNotifications: boolPtr(false),
	})
	assert.True(t, merged.AutoPost)
	assert.False(t, merged.BestTimeToPost)
	assert.False(t, merged.EngagementNotifications)
}

func TestUpdateSettingsOwnership(t *testing.T) {
	ar := new(MockSocialAccountRepository)
	s := NewAccountService(ar)

	ar.On("GetByID", context.Background(), int64(3)).
		Return(&models.SocialAccount{ID: 3, UserID: 2}, nil)

	_, err := s.UpdateSettings(context.Background(), 3, 1, &transfer.AccountSettingsUpdate{})
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestUpdateSettingsPersistsMerge(t *testing.T) {
	ar := new(MockSocialAccountRepository)
	s := NewAccountService(ar)

	ar.On("GetByID", context.Background(), int64(3)).
		Return(&models.SocialAccount{ID: 3, UserID: 1, Settings: models.DefaultAccountSettings()}, nil)
	ar.On("UpdateSettings", context.Background(), int64(3), models.AccountSettings{
		AutoPost:                true,
		BestTimeToPost:          true,
		EngagementNotifications: true,
	}).Return(nil)

	settings, err := s.UpdateSettings(context.Background(), 3, 1, &transfer.AccountSettingsUpdate{
		AutoPost: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, settings.AutoPost)
	ar.AssertExpectations(t)
}

func TestDisconnectUnknownAccount(t *testing.T) {
	ar := new(MockSocialAccountRepository)
	s := NewAccountService(ar)

	ar.On("GetByID", context.Background(), int64(9)).Return(nil, nil)

	err := s.DisconnectAccount(context.Background(), 9, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}
