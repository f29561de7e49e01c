package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/social"
)

// LikeModel is the GORM database model for likes (infrastructure concern)
type LikeModel struct {
	ID        string        `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time     `gorm:"not null;index"`
	UpdatedAt time.Time     `gorm:"not null;index"`
	UserID    string        `gorm:"not null;index;type:uuid"`
	User      UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	RecipeID  string        `gorm:"not null;index;type:uuid"`
	Recipe    RecipeModel   `gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT"`
	CommentID *string       `gorm:"index;type:uuid"`
	Comment   *CommentModel `gorm:"foreignKey:CommentID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (LikeModel) TableName() string {
	return "likes"
}

// ToDomain converts GORM model to domain entity
func (m *LikeModel) ToDomain() *social.Like {
	return &social.Like{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		UserID:    m.UserID,
		RecipeID:  m.RecipeID,
		CommentID: m.CommentID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LikeModel) FromDomain(l *social.Like) {
	m.ID = l.ID
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
	m.UserID = l.UserID
	m.RecipeID = l.RecipeID
	m.CommentID = l.CommentID
}
