package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"socialpulse/internal/models"
)

type SocialAccountRepository interface {
	Create(ctx context.Context, sa *models.SocialAccount) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SocialAccount, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	ListExpiringTokens(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error)
	UpdateSettings(ctx context.Context, id int64, settings models.AccountSettings) error
	MarkInactive(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

const socialAccountColumns = `id, user_id, platform, account_name, account_id, access_token,
		refresh_token, token_expiry, profile_picture, followers, following, is_active, settings,
		created_at, updated_at`

func scanSocialAccount(row interface {
	Scan(dest ...interface{}) error
}) (*models.SocialAccount, error) {
	var sa models.SocialAccount
	var settings []byte

	err := row.Scan(&sa.ID, &sa.UserID, &sa.Platform, &sa.AccountName, &sa.AccountID,
		&sa.AccessToken, &sa.RefreshToken, &sa.TokenExpiry, &sa.ProfilePicture,
		&sa.Followers, &sa.Following, &sa.IsActive, &settings, &sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(settings, &sa.Settings); err != nil {
		return nil, err
	}

	return &sa, nil
}

func (r *socialAccountRepository) Create(ctx context.Context, sa *models.SocialAccount) (int64, error) {
	settings, err := json.Marshal(sa.Settings)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO social_accounts (
			user_id,
			platform,
			account_name,
			account_id,
			access_token,
			refresh_token,
			token_expiry,
			profile_picture,
			followers,
			following,
			is_active,
			settings
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		sa.UserID,
		sa.Platform,
		sa.AccountName,
		sa.AccountID,
		sa.AccessToken,
		sa.RefreshToken,
		sa.TokenExpiry,
		sa.ProfilePicture,
		sa.Followers,
		sa.Following,
		sa.IsActive,
		settings,
	).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *socialAccountRepository) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE id = $1`
	sa, err := scanSocialAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return sa, nil
}

func (r *socialAccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		sa, err := scanSocialAccount(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, sa)
	}
	return accounts, rows.Err()
}

func (r *socialAccountRepository) ListExpiringTokens(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + `
		FROM social_accounts
		WHERE is_active = TRUE
		AND ((token_expiry BETWEEN $1 AND $2) OR (token_expiry < $1))`
	rows, err := r.db.QueryContext(ctx, query, initialTime, finalTime)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		sa, err := scanSocialAccount(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, sa)
	}
	return accounts, rows.Err()
}

func (r *socialAccountRepository) UpdateSettings(ctx context.Context, id int64, settings models.AccountSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	query := `
		UPDATE social_accounts
		SET settings = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err = r.db.ExecContext(ctx, query, data, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) MarkInactive(ctx context.Context, id int64) error {
	query := `
		UPDATE social_accounts
		SET is_active = FALSE,
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

func (r *socialAccountRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM social_accounts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
