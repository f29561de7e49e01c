package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/recipes"
)

// RecipeModel is the GORM database model for recipes (infrastructure concern)
type RecipeModel struct {
	ID                       string                  `gorm:"primaryKey;type:uuid"`
	CreatedAt                time.Time               `gorm:"not null;index"`
	UpdatedAt                time.Time               `gorm:"not null;index"`
	Name                     string                  `gorm:"not null;index;type:varchar(255)"`
	Serves                   uint                    `gorm:"not null;index"`
	PreparationTimeInMinutes uint                    `gorm:"not null;index"`
	Preparation              string                  `gorm:"not null;type:text"`
	AuthorID                 string                  `gorm:"not null;index;type:uuid"`
	Author                   UserModel               `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Ingredients              []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (RecipeModel) TableName() string {
	return "recipes"
}

// ToDomain converts GORM model to domain entity. The author and ingredient
// line associations must be preloaded.
func (m *RecipeModel) ToDomain() *recipes.Recipe {
	ingredients := make([]*recipes.RecipeIngredient, len(m.Ingredients))
	for i := range m.Ingredients {
		ingredients[i] = m.Ingredients[i].ToDomain()
	}

	return &recipes.Recipe{
		ID:                       m.ID,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
		Name:                     m.Name,
		Serves:                   m.Serves,
		PreparationTimeInMinutes: m.PreparationTimeInMinutes,
		Preparation:              m.Preparation,
		Author:                   m.Author.ToDomain(),
		Ingredients:              ingredients,
	}
}

// FromDomain converts domain entity to GORM model. Ingredient lines are
// intentionally not carried over: repositories write lines explicitly to
// control replacement semantics.
func (m *RecipeModel) FromDomain(r *recipes.Recipe) {
	m.ID = r.ID
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
	m.Name = r.Name
	m.Serves = r.Serves
	m.PreparationTimeInMinutes = r.PreparationTimeInMinutes
	m.Preparation = r.Preparation
	m.AuthorID = r.Author.ID
}
