package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"socialpulse/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Post, error)
	ListByUserAndPlatform(ctx context.Context, userID int64, platform string) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	UpdateStatus(ctx context.Context, id int64, status string, publishedAt *time.Time) error
	Remove(ctx context.Context, id int64) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = "id, user_id, content, platform, metadata, engagement, ai_analysis, status, published_at, created_at, updated_at"

func scanPost(row interface {
	Scan(dest ...interface{}) error
}) (*models.Post, error) {
	var post models.Post
	var metadata, engagement, analysis []byte

	err := row.Scan(&post.ID, &post.UserID, &post.Content, &post.Platform,
		&metadata, &engagement, &analysis, &post.Status, &post.PublishedAt,
		&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metadata, &post.Metadata); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(engagement, &post.Engagement); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(analysis, &post.AiAnalysis); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	metadata, err := json.Marshal(post.Metadata)
	if err != nil {
		return 0, err
	}
	engagement, err := json.Marshal(post.Engagement)
	if err != nil {
		return 0, err
	}
	analysis, err := json.Marshal(post.AiAnalysis)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO posts (user_id, content, platform, metadata, engagement, ai_analysis, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, post.UserID, post.Content, post.Platform,
		metadata, engagement, analysis, post.Status, post.PublishedAt).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *postRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepository) ListByUserAndPlatform(ctx context.Context, userID int64, platform string) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 AND platform = $2 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, platform)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	metadata, err := json.Marshal(post.Metadata)
	if err != nil {
		return err
	}
	engagement, err := json.Marshal(post.Engagement)
	if err != nil {
		return err
	}
	analysis, err := json.Marshal(post.AiAnalysis)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET content = $1,
			platform = $2,
			metadata = $3,
			engagement = $4,
			ai_analysis = $5,
			status = $6,
			published_at = $7,
			updated_at = $8
		WHERE id = $9
	`
	_, err = r.db.ExecContext(ctx, query, post.Content, post.Platform, metadata,
		engagement, analysis, post.Status, post.PublishedAt, time.Now(), post.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, id int64, status string, publishedAt *time.Time) error {
	query := `
		UPDATE posts
		SET status = $1,
			published_at = COALESCE($2, published_at),
			updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, status, publishedAt, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
