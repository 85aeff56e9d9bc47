package service

import (
	"context"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/internal/transfer"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, userID int64, req *transfer.TemplateCreation) (*models.Template, error)
	ListTemplates(ctx context.Context, userID int64) ([]*models.Template, error)
	GetTemplate(ctx context.Context, templateID, userID int64) (*models.Template, error)
	UpdateTemplate(ctx context.Context, templateID, userID int64, req *transfer.TemplateUpdate) (*models.Template, error)
	RemoveTemplate(ctx context.Context, templateID, userID int64) error
}

type templateService struct {
	tr repository.TemplateRepository
}

func NewTemplateService(tr repository.TemplateRepository) TemplateService {
	return &templateService{tr: tr}
}

func (s *templateService) ownedTemplate(ctx context.Context, templateID, userID int64) (*models.Template, error) {
	t, err := s.tr.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFound("template not found")
	}
	if err := Authorize(userID, t.UserID); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *templateService) CreateTemplate(ctx context.Context, userID int64, req *transfer.TemplateCreation) (*models.Template, error) {
	t := &models.Template{
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Content:   req.Content,
		Variables: req.Variables,
		IsDefault: req.IsDefault,
		Category:  req.Category,
		Tags:      req.Tags,
	}
	if t.Category == "" {
		t.Category = models.TemplateCategoryOther
	}

	id, err := s.tr.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id

	return t, nil
}

func (s *templateService) ListTemplates(ctx context.Context, userID int64) ([]*models.Template, error) {
	return s.tr.ListByUserID(ctx, userID)
}

func (s *templateService) GetTemplate(ctx context.Context, templateID, userID int64) (*models.Template, error) {
	return s.ownedTemplate(ctx, templateID, userID)
}

func (s *templateService) UpdateTemplate(ctx context.Context, templateID, userID int64, req *transfer.TemplateUpdate) (*models.Template, error) {
	t, err := s.ownedTemplate(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if req.Variables != nil {
		t.Variables = *req.Variables
	}
	if req.IsDefault != nil {
		t.IsDefault = *req.IsDefault
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Tags != nil {
		t.Tags = *req.Tags
	}

	if err := s.tr.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *templateService) RemoveTemplate(ctx context.Context, templateID, userID int64) error {
	if _, err := s.ownedTemplate(ctx, templateID, userID); err != nil {
		return err
	}
	return s.tr.Remove(ctx, templateID)
}
