package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/recipes"
)

// RecipeIngredientModel is the GORM database model for recipe ingredient
// lines (infrastructure concern). Lines belong to exactly one recipe and are
// removed with it; the referenced ingredient and unit are protected against
// deletion while lines use them.
type RecipeIngredientModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null;index"`
	RecipeID     string          `gorm:"not null;index;type:uuid"`
	IngredientID string          `gorm:"not null;index;type:uuid"`
	Ingredient   IngredientModel `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
	UnitID       string          `gorm:"not null;index;type:uuid"`
	Unit         UnitModel       `gorm:"foreignKey:UnitID;constraint:OnDelete:RESTRICT"`
	Quantity     float64         `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// ToDomain converts GORM model to domain entity. The ingredient and unit
// associations must be preloaded.
func (m *RecipeIngredientModel) ToDomain() *recipes.RecipeIngredient {
	return &recipes.RecipeIngredient{
		ID:         m.ID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Ingredient: m.Ingredient.ToDomain(),
		Unit:       m.Unit.ToDomain(),
		Quantity:   m.Quantity,
	}
}

// FromDomain converts domain entity to GORM model. Only the foreign keys of
// the resolved ingredient and unit are carried over; associations are never
// written through lines.
func (m *RecipeIngredientModel) FromDomain(recipeID string, ri *recipes.RecipeIngredient) {
	m.ID = ri.ID
	m.CreatedAt = ri.CreatedAt
	m.UpdatedAt = ri.UpdatedAt
	m.RecipeID = recipeID
	m.IngredientID = ri.Ingredient.ID
	m.UnitID = ri.Unit.ID
	m.Quantity = ri.Quantity
}
