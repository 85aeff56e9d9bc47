package transfer

import "socialpulse/internal/models"

type TemplateCreation struct {
	Name      string                    `json:"name" validate:"required"`
	Type      string                    `json:"type" validate:"required,oneof=comment caption hashtag"`
	Content   string                    `json:"content" validate:"required"`
	Variables []models.TemplateVariable `json:"variables"`
	IsDefault bool                      `json:"is_default"`
	Category  string                    `json:"category" validate:"omitempty,oneof=business personal marketing other"`
	Tags      []string                  `json:"tags"`
}

type TemplateUpdate struct {
	Name      *string                    `json:"name"`
	Type      *string                    `json:"type" validate:"omitempty,oneof=comment caption hashtag"`
	Content   *string                    `json:"content"`
	Variables *[]models.TemplateVariable `json:"variables"`
	IsDefault *bool                      `json:"is_default"`
	Category  *string                    `json:"category" validate:"omitempty,oneof=business personal marketing other"`
	Tags      *[]string                  `json:"tags"`
}
