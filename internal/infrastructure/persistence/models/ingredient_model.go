package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/recipes"
)

// IngredientModel is the GORM database model for ingredients (infrastructure concern)
type IngredientModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null;index"`
	Name      string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ToDomain converts GORM model to domain entity
func (m *IngredientModel) ToDomain() *recipes.Ingredient {
	return &recipes.Ingredient{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Name:      m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *IngredientModel) FromDomain(i *recipes.Ingredient) {
	m.ID = i.ID
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
	m.Name = i.Name
}
