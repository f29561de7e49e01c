package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/social"
)

// CommentModel is the GORM database model for recipe comments (infrastructure concern)
type CommentModel struct {
	ID          string        `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time     `gorm:"not null;index"`
	UpdatedAt   time.Time     `gorm:"not null;index"`
	UserID      string        `gorm:"not null;index;type:uuid"`
	User        UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	RecipeID    string        `gorm:"not null;index;type:uuid"`
	Recipe      RecipeModel   `gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT"`
	InReplyToID *string       `gorm:"index;type:uuid"`
	InReplyTo   *CommentModel `gorm:"foreignKey:InReplyToID;constraint:OnDelete:RESTRICT"`
	Content     string        `gorm:"not null;type:text"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts GORM model to domain entity
func (m *CommentModel) ToDomain() *social.Comment {
	return &social.Comment{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		UserID:      m.UserID,
		RecipeID:    m.RecipeID,
		InReplyToID: m.InReplyToID,
		Content:     m.Content,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CommentModel) FromDomain(c *social.Comment) {
	m.ID = c.ID
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
	m.UserID = c.UserID
	m.RecipeID = c.RecipeID
	m.InReplyToID = c.InReplyToID
	m.Content = c.Content
}
