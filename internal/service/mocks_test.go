package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"socialpulse/internal/ai"
	"socialpulse/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, bool, error) {
	args := m.Called(ctx, token, now)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetOTP(ctx context.Context, id int64, otp string, expiry time.Time) error {
	args := m.Called(ctx, id, otp, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUserAndPlatform(ctx context.Context, userID int64, platform string) ([]*models.Post, error) {
	args := m.Called(ctx, userID, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdateStatus(ctx context.Context, id int64, status string, publishedAt *time.Time) error {
	args := m.Called(ctx, id, status, publishedAt)
	return args.Error(0)
}

func (m *MockPostRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) Create(ctx context.Context, e *models.Engagement) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) GetByPostID(ctx context.Context, postID int64) (*models.Engagement, bool, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Engagement), args.Bool(1), args.Error(2)
}

func (m *MockEngagementRepository) ListByPostIDs(ctx context.Context, postIDs []int64, platform string) ([]*models.Engagement, error) {
	args := m.Called(ctx, postIDs, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) Update(ctx context.Context, e *models.Engagement) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEngagementRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSocialAccountRepository struct {
	mock.Mock
}

func (m *MockSocialAccountRepository) Create(ctx context.Context, sa *models.SocialAccount) (int64, error) {
	args := m.Called(ctx, sa)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialAccountRepository) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepository) ListExpiringTokens(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error) {
	args := m.Called(ctx, initialTime, finalTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepository) UpdateSettings(ctx context.Context, id int64, settings models.AccountSettings) error {
	args := m.Called(ctx, id, settings)
	return args.Error(0)
}

func (m *MockSocialAccountRepository) MarkInactive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSocialAccountRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAiDataRepository struct {
	mock.Mock
}

func (m *MockAiDataRepository) Create(ctx context.Context, d *models.AiData) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAiDataRepository) GetByID(ctx context.Context, id int64) (*models.AiData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AiData), args.Error(1)
}

func (m *MockAiDataRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.AiData, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AiData), args.Error(1)
}

func (m *MockAiDataRepository) UpdateAnalysis(ctx context.Context, id int64, analysis models.AiAnalysis) error {
	args := m.Called(ctx, id, analysis)
	return args.Error(0)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Create(ctx context.Context, t *models.Template) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Template, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Template), args.Error(1)
}

func (m *MockTemplateRepository) Update(ctx context.Context, t *models.Template) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

// fakeCompleter returns a canned response (or error) and records the last
// request it received.
type fakeCompleter struct {
	response string
	err      error
	lastReq  ai.CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
