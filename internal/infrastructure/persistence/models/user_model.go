package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
)

// UserModel is the GORM database model for user accounts (infrastructure concern)
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null;index"`
	Username  string    `gorm:"not null;uniqueIndex;type:varchar(150)"`
	Email     string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Username:  m.Username,
		Email:     m.Email,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
	m.Username = u.Username
	m.Email = u.Email
}
