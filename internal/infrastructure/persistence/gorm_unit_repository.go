package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/infrastructure/persistence/models"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUnitRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUnitRepository creates a new GORM-based UnitRepository implementation
func NewGormUnitRepository(db *gorm.DB, logger logger.Logger) (recipes.UnitRepository, error) {
	return &gormUnitRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUnitRepository) Create(ctx context.Context, unit *recipes.Unit) error {
	if err := unit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UnitModel{}
	model.FromDomain(unit)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("unit '%s': %w", unit.Name, recipes.ErrDuplicate)
		}
		return fmt.Errorf("failed to create unit: %w", err)
	}

	r.logger.Info("Created unit with id ", unit.ID)
	return nil
}

func (r *gormUnitRepository) List(ctx context.Context, query *recipes.UnitQuery) ([]*recipes.Unit, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.UnitModel{})

	if query.ID != "" {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count units: %w", err)
	}

	var modelList []*models.UnitModel
	err := dbQuery.
		Order("name ASC, created_at DESC").
		Limit(query.PageSize).
		Offset((query.Page - 1) * query.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch units: %w", err)
	}

	domainList := make([]*recipes.Unit, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormUnitRepository) GetByID(ctx context.Context, unitID string) (*recipes.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).Where("id = ?", unitID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unit with ID %s: %w", unitID, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch unit: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUnitRepository) GetByName(ctx context.Context, name string) (*recipes.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unit named '%s': %w", name, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch unit: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUnitRepository) UpdateByID(ctx context.Context, unit *recipes.Unit) error {
	if err := unit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UnitModel{}
	model.FromDomain(unit)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("unit '%s': %w", unit.Name, recipes.ErrDuplicate)
		}
		return fmt.Errorf("failed to update unit: %w", err)
	}

	r.logger.Info("Updated unit with id ", unit.ID)
	return nil
}

func (r *gormUnitRepository) DeleteByID(ctx context.Context, unitID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", unitID).Delete(&models.UnitModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("unit with ID %s: %w", unitID, recipes.ErrProtected)
		}
		return fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("unit with ID %s: %w", unitID, recipes.ErrNotFound)
	}

	r.logger.Info("Deleted unit with id ", unitID)
	return nil
}
