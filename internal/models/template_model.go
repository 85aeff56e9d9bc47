package models

import "time"

type Template struct {
	ID        int64              `db:"id" json:"id"`
	UserID    int64              `db:"user_id" json:"user_id"`
	Name      string             `db:"name" json:"name"`
	Type      string             `db:"type" json:"type"`
	Content   string             `db:"content" json:"content"`
	Variables []TemplateVariable `db:"variables" json:"variables"`
	IsDefault bool               `db:"is_default" json:"is_default"`
	Category  string             `db:"category" json:"category"`
	Tags      []string           `db:"tags" json:"tags"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt time.Time          `db:"updated_at" json:"updated_at"`
}

type TemplateVariable struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

const (
	TemplateTypeComment = "comment"
	TemplateTypeCaption = "caption"
	TemplateTypeHashtag = "hashtag"
)

const (
	TemplateCategoryBusiness  = "business"
	TemplateCategoryPersonal  = "personal"
	TemplateCategoryMarketing = "marketing"
	TemplateCategoryOther     = "other"
)
