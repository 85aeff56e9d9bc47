package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"socialpulse/internal/models"
)

type EngagementRepository interface {
	Create(ctx context.Context, e *models.Engagement) (int64, error)
	GetByPostID(ctx context.Context, postID int64) (*models.Engagement, bool, error)
	ListByPostIDs(ctx context.Context, postIDs []int64, platform string) ([]*models.Engagement, error)
	Update(ctx context.Context, e *models.Engagement) error
	Remove(ctx context.Context, id int64) error
}

type engagementRepository struct {
	db *sql.DB
}

func NewEngagementRepository(db *sql.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

const engagementColumns = "id, post_id, platform, metrics, comments, analytics, created_at, updated_at"

func scanEngagement(row interface {
	Scan(dest ...interface{}) error
}) (*models.Engagement, error) {
	var e models.Engagement
	var metrics, comments, analytics []byte

	err := row.Scan(&e.ID, &e.PostID, &e.Platform, &metrics, &comments, &analytics,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metrics, &e.Metrics); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &e.Comments); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(analytics, &e.Analytics); err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *engagementRepository) Create(ctx context.Context, e *models.Engagement) (int64, error) {
	metrics, err := json.Marshal(e.Metrics)
	if err != nil {
		return 0, err
	}
	comments, err := json.Marshal(e.Comments)
	if err != nil {
		return 0, err
	}
	analytics, err := json.Marshal(e.Analytics)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO engagements (post_id, platform, metrics, comments, analytics)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, e.PostID, e.Platform, metrics, comments, analytics).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *engagementRepository) GetByPostID(ctx context.Context, postID int64) (*models.Engagement, bool, error) {
	query := `SELECT ` + engagementColumns + ` FROM engagements WHERE post_id = $1`
	e, err := scanEngagement(r.db.QueryRowContext(ctx, query, postID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return e, true, nil
}

func (r *engagementRepository) ListByPostIDs(ctx context.Context, postIDs []int64, platform string) ([]*models.Engagement, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + engagementColumns + ` FROM engagements WHERE post_id = ANY($1) AND platform = $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs), platform)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var engagements []*models.Engagement
	for rows.Next() {
		e, err := scanEngagement(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		engagements = append(engagements, e)
	}
	return engagements, rows.Err()
}

func (r *engagementRepository) Update(ctx context.Context, e *models.Engagement) error {
	metrics, err := json.Marshal(e.Metrics)
	if err != nil {
		return err
	}
	comments, err := json.Marshal(e.Comments)
	if err != nil {
		return err
	}
	analytics, err := json.Marshal(e.Analytics)
	if err != nil {
		return err
	}

	query := `
		UPDATE engagements
		SET platform = $1,
			metrics = $2,
			comments = $3,
			analytics = $4,
			updated_at = $5
		WHERE post_id = $6
	`
	_, err = r.db.ExecContext(ctx, query, e.Platform, metrics, comments, analytics, time.Now(), e.PostID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *engagementRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM engagements WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
