package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/recipes"
)

// UnitModel is the GORM database model for measurement units (infrastructure concern)
type UnitModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null;index"`
	Name         string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Abbreviation string    `gorm:"not null;uniqueIndex;type:varchar(10)"`
}

// TableName specifies the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts GORM model to domain entity
func (m *UnitModel) ToDomain() *recipes.Unit {
	return &recipes.Unit{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UnitModel) FromDomain(u *recipes.Unit) {
	m.ID = u.ID
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
	m.Name = u.Name
	m.Abbreviation = u.Abbreviation
}
