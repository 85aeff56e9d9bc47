package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialpulse/internal/models"
)

const userColumnsQuery = "SELECT id, name, email, password_hash, linkedin_id, is_verified, otp, otp_expiry FROM users"

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "linkedin_id", "is_verified", "otp", "otp_expiry"}).
		AddRow(user.ID, user.Name, user.Email, user.PasswordHash, user.LinkedinID, user.IsVerified, user.OTP, user.OTPExpiry)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		expiry := time.Now().Add(10 * time.Minute)
		stored := &models.User{
			ID: 1, Name: "Sam", Email: "sam@example.com",
			PasswordHash: "hash", IsVerified: true, OTP: "123456", OTPExpiry: &expiry,
		}

		mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery+" WHERE email = $1")).
			WithArgs("sam@example.com").
			WillReturnRows(userRows(stored))

		user, exists, err := repo.GetByEmail(ctx, "sam@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "123456", user.OTP)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery+" WHERE email = $1")).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, exists, err := repo.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery+" WHERE email = $1")).
			WithArgs("boom@example.com").
			WillReturnError(errors.New("connection reset"))

		_, _, err := repo.GetByEmail(ctx, "boom@example.com")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByResetToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("unexpired token matches", func(t *testing.T) {
		stored := &models.User{ID: 1, Email: "sam@example.com", OTP: "tok"}

		mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery+" WHERE otp = $1 AND otp_expiry > $2")).
			WithArgs("tok", now).
			WillReturnRows(userRows(stored))

		user, exists, err := repo.GetByResetToken(ctx, "tok", now)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("expired token behaves like unknown", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery+" WHERE otp = $1 AND otp_expiry > $2")).
			WithArgs("stale", now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, exists, err := repo.GetByResetToken(ctx, "stale", now)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	expiry := time.Now().Add(10 * time.Minute)
	user := &models.User{
		Name: "Sam", Email: "sam@example.com", PasswordHash: "hash",
		OTP: "123456", OTPExpiry: &expiry,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.Name, user.Email, user.PasswordHash, user.LinkedinID,
			user.IsVerified, user.OTP, user.OTPExpiry).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryMarkVerified(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkVerified(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
