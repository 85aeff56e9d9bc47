package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"socialpulse/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, bool, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	SetOTP(ctx context.Context, id int64, otp string, expiry time.Time) error
	MarkVerified(ctx context.Context, id int64) error
	SetPassword(ctx context.Context, id int64, passwordHash string) error
	Remove(ctx context.Context, id int64) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	var user models.User
	query := "SELECT id, name, email, password_hash, linkedin_id, is_verified, otp, otp_expiry FROM users WHERE id = $1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email,
		&user.PasswordHash, &user.LinkedinID, &user.IsVerified, &user.OTP, &user.OTPExpiry)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &user, true, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	var user models.User
	query := "SELECT id, name, email, password_hash, linkedin_id, is_verified, otp, otp_expiry FROM users WHERE email = $1"
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email,
		&user.PasswordHash, &user.LinkedinID, &user.IsVerified, &user.OTP, &user.OTPExpiry)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &user, true, nil
}

// GetByResetToken matches an unexpired token only; an expired token behaves
// exactly like an unknown one.
func (r *userRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, bool, error) {
	var user models.User
	query := "SELECT id, name, email, password_hash, linkedin_id, is_verified, otp, otp_expiry FROM users WHERE otp = $1 AND otp_expiry > $2"
	err := r.db.QueryRowContext(ctx, query, token, now).Scan(&user.ID, &user.Name, &user.Email,
		&user.PasswordHash, &user.LinkedinID, &user.IsVerified, &user.OTP, &user.OTPExpiry)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &user, true, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password_hash, linkedin_id, is_verified, otp, otp_expiry)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash,
		user.LinkedinID, user.IsVerified, user.OTP, user.OTPExpiry).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *userRepository) SetOTP(ctx context.Context, id int64, otp string, expiry time.Time) error {
	query := `
		UPDATE users
		SET otp = $1,
			otp_expiry = $2,
			updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, otp, expiry, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *userRepository) MarkVerified(ctx context.Context, id int64) error {
	query := `
		UPDATE users
		SET is_verified = TRUE,
			otp = '',
			otp_expiry = NULL,
			updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *userRepository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1,
			otp = '',
			otp_expiry = NULL,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *userRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
