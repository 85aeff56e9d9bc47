package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"socialpulse/internal/models"
)

type TemplateRepository interface {
	Create(ctx context.Context, t *models.Template) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Template, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Template, error)
	Update(ctx context.Context, t *models.Template) error
	Remove(ctx context.Context, id int64) error
}

type templateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) TemplateRepository {
	return &templateRepository{db: db}
}

const templateColumns = "id, user_id, name, type, content, variables, is_default, category, tags, created_at, updated_at"

func scanTemplate(row interface {
	Scan(dest ...interface{}) error
}) (*models.Template, error) {
	var t models.Template
	var variables, tags []byte

	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Type, &t.Content, &variables,
		&t.IsDefault, &t.Category, &tags, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(variables, &t.Variables); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &t.Tags); err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *templateRepository) Create(ctx context.Context, t *models.Template) (int64, error) {
	variables, err := json.Marshal(t.Variables)
	if err != nil {
		return 0, err
	}
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO templates (user_id, name, type, content, variables, is_default, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, t.UserID, t.Name, t.Type, t.Content,
		variables, t.IsDefault, t.Category, tags).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`
	t, err := scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return t, nil
}

func (r *templateRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var templates []*models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *templateRepository) Update(ctx context.Context, t *models.Template) error {
	variables, err := json.Marshal(t.Variables)
	if err != nil {
		return err
	}
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE templates
		SET name = $1,
			type = $2,
			content = $3,
			variables = $4,
			is_default = $5,
			category = $6,
			tags = $7,
			updated_at = $8
		WHERE id = $9
	`
	_, err = r.db.ExecContext(ctx, query, t.Name, t.Type, t.Content, variables,
		t.IsDefault, t.Category, tags, time.Now(), t.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *templateRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM templates WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
