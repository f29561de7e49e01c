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

type gormIngredientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormIngredientRepository creates a new GORM-based IngredientRepository implementation
func NewGormIngredientRepository(db *gorm.DB, logger logger.Logger) (recipes.IngredientRepository, error) {
	return &gormIngredientRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormIngredientRepository) Create(ctx context.Context, ingredient *recipes.Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.IngredientModel{}
	model.FromDomain(ingredient)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("ingredient '%s': %w", ingredient.Name, recipes.ErrDuplicate)
		}
		return fmt.Errorf("failed to create ingredient: %w", err)
	}

	r.logger.Info("Created ingredient with id ", ingredient.ID)
	return nil
}

func (r *gormIngredientRepository) List(ctx context.Context, query *recipes.IngredientQuery) ([]*recipes.Ingredient, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.IngredientModel{})

	if query.ID != "" {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ingredients: %w", err)
	}

	var modelList []*models.IngredientModel
	err := dbQuery.
		Order("name ASC, created_at DESC").
		Limit(query.PageSize).
		Offset((query.Page - 1) * query.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch ingredients: %w", err)
	}

	domainList := make([]*recipes.Ingredient, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormIngredientRepository) GetByID(ctx context.Context, ingredientID string) (*recipes.Ingredient, error) {
	var model models.IngredientModel
	if err := r.db.WithContext(ctx).Where("id = ?", ingredientID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ingredient with ID %s: %w", ingredientID, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch ingredient: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormIngredientRepository) GetByName(ctx context.Context, name string) (*recipes.Ingredient, error) {
	var model models.IngredientModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ingredient named '%s': %w", name, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch ingredient: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormIngredientRepository) UpdateByID(ctx context.Context, ingredient *recipes.Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.IngredientModel{}
	model.FromDomain(ingredient)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("ingredient '%s': %w", ingredient.Name, recipes.ErrDuplicate)
		}
		return fmt.Errorf("failed to update ingredient: %w", err)
	}

	r.logger.Info("Updated ingredient with id ", ingredient.ID)
	return nil
}

func (r *gormIngredientRepository) DeleteByID(ctx context.Context, ingredientID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", ingredientID).Delete(&models.IngredientModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("ingredient with ID %s: %w", ingredientID, recipes.ErrProtected)
		}
		return fmt.Errorf("failed to delete ingredient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient with ID %s: %w", ingredientID, recipes.ErrNotFound)
	}

	r.logger.Info("Deleted ingredient with id ", ingredientID)
	return nil
}
