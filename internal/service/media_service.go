package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
)

type MediaService interface {
	AttachFiles(ctx context.Context, postID, userID int64, files []*multipart.FileHeader) error
	ListPostMedia(ctx context.Context, postID, userID int64) ([]*models.MediaAsset, error)
}

type mediaService struct {
	db *sql.DB
	pr repository.PostRepository
	ma repository.MediaAssetRepository
	pm repository.PostMediaRepository
	r2 *R2Service
}

func NewMediaService(
	db *sql.DB,
	pr repository.PostRepository,
	ma repository.MediaAssetRepository,
	pm repository.PostMediaRepository,
	r2 *R2Service) MediaService {
	return &mediaService{
		db: db,
		pr: pr,
		ma: ma,
		pm: pm,
		r2: r2,
	}
}

func (s *mediaService) ownedPost(ctx context.Context, postID, userID int64) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NotFound("post not found")
	}
	if err := Authorize(userID, post.UserID); err != nil {
		return nil, err
	}
	return post, nil
}

// AttachFiles uploads each file to object storage and links it to the post.
// All media rows for one request commit together.
func (s *mediaService) AttachFiles(ctx context.Context, postID, userID int64, files []*multipart.FileHeader) error {
	if _, err := s.ownedPost(ctx, postID, userID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer tx.Rollback()

	if err := s.processFiles(ctx, tx, userID, postID, files); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *mediaService) processFiles(ctx context.Context, tx *sql.Tx, userID, postID int64, files []*multipart.FileHeader) error {
	allowedTypes := map[string]struct{}{
		"mp4": {}, "mov": {}, "jpeg": {}, "png": {}, "jpg": {},
	}

	for i, file := range files {
		fileContent, err := file.Open()
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer fileContent.Close()

		fileBytes, err := io.ReadAll(fileContent)
		if err != nil {
			return fmt.Errorf("error reading file content: %w", err)
		}

		fileType, err := filetype.Match(fileBytes)
		if err != nil || fileType == types.Unknown {
			return Invalid("unsupported file type")
		}
		if _, ok := allowedTypes[fileType.Extension]; !ok {
			return Invalid(fmt.Sprintf("file type %s is not allowed", fileType.Extension))
		}

		assetID, err := s.saveFile(ctx, tx, userID, fileType.MIME.Value, file.Size, fileBytes)
		if err != nil {
			return fmt.Errorf("error uploading file: %w", err)
		}

		postMedia := models.PostMedia{
			PostID:       postID,
			AssetID:      assetID,
			DisplayOrder: i,
		}
		if err := s.pm.Create(ctx, tx, &postMedia); err != nil {
			return fmt.Errorf("error saving media file: %w", err)
		}
	}
	return nil
}

func (s *mediaService) saveFile(ctx context.Context, tx *sql.Tx, userID int64, contentType string, size int64, file []byte) (int64, error) {
	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	if err := s.r2.UploadToR2(ctx, id, file, contentType); err != nil {
		return 0, err
	}

	ma := models.MediaAsset{
		UserID:   userID,
		FileName: id,
		FileType: contentType,
		FileSize: size,
		FileURL:  s.r2.PublicURL(id),
	}

	return s.ma.Create(ctx, tx, &ma)
}

func (s *mediaService) ListPostMedia(ctx context.Context, postID, userID int64) ([]*models.MediaAsset, error) {
	if _, err := s.ownedPost(ctx, postID, userID); err != nil {
		return nil, err
	}

	links, err := s.pm.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	assets := make([]*models.MediaAsset, 0, len(links))
	for _, link := range links {
		asset, err := s.ma.GetByID(ctx, link.AssetID)
		if err != nil {
			return nil, err
		}
		if asset == nil {
			continue
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
