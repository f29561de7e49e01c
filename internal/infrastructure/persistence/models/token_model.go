package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
)

// TokenModel is the GORM database model for API tokens (infrastructure concern)
type TokenModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"not null;index"`
	Key       string    `gorm:"not null;uniqueIndex;type:varchar(40)"`
	UserID    string    `gorm:"not null;index;type:uuid"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (TokenModel) TableName() string {
	return "api_tokens"
}

// ToDomain converts GORM model to domain entity
func (m *TokenModel) ToDomain() *accounts.Token {
	return &accounts.Token{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Key:       m.Key,
		UserID:    m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TokenModel) FromDomain(t *accounts.Token) {
	m.ID = t.ID
	m.CreatedAt = t.CreatedAt
	m.Key = t.Key
	m.UserID = t.UserID
}
