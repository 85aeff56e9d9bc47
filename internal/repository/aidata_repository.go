package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"socialpulse/internal/models"
)

type AiDataRepository interface {
	Create(ctx context.Context, d *models.AiData) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.AiData, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.AiData, error)
	UpdateAnalysis(ctx context.Context, id int64, analysis models.AiAnalysis) error
}

type aiDataRepository struct {
	db *sql.DB
}

func NewAiDataRepository(db *sql.DB) AiDataRepository {
	return &aiDataRepository{db: db}
}

const aiDataColumns = "id, user_id, post_content, generated_comment, analysis, status, created_at"

func scanAiData(row interface {
	Scan(dest ...interface{}) error
}) (*models.AiData, error) {
	var d models.AiData
	var analysis []byte

	err := row.Scan(&d.ID, &d.UserID, &d.PostContent, &d.GeneratedComment,
		&analysis, &d.Status, &d.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(analysis, &d.Analysis); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *aiDataRepository) Create(ctx context.Context, d *models.AiData) (int64, error) {
	analysis, err := json.Marshal(d.Analysis)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO ai_data (user_id, post_content, generated_comment, analysis, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, d.UserID, d.PostContent, d.GeneratedComment,
		analysis, d.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *aiDataRepository) GetByID(ctx context.Context, id int64) (*models.AiData, error) {
	query := `SELECT ` + aiDataColumns + ` FROM ai_data WHERE id = $1`
	d, err := scanAiData(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return d, nil
}

func (r *aiDataRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.AiData, error) {
	query := `SELECT ` + aiDataColumns + ` FROM ai_data WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var records []*models.AiData
	for rows.Next() {
		d, err := scanAiData(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		records = append(records, d)
	}
	return records, rows.Err()
}

func (r *aiDataRepository) UpdateAnalysis(ctx context.Context, id int64, analysis models.AiAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	query := `
		UPDATE ai_data
		SET analysis = $1
		WHERE id = $2
	`
	_, err = r.db.ExecContext(ctx, query, data, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
