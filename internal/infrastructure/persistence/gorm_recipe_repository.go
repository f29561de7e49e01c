package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/infrastructure/persistence/models"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRecipeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRecipeRepository creates a new GORM-based RecipeRepository
// implementation. Writes touch the recipe row and its ingredient lines in
// one transaction; reads resolve the author and line associations.
func NewGormRecipeRepository(db *gorm.DB, logger logger.Logger) (recipes.RecipeRepository, error) {
	return &gormRecipeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRecipeRepository) Create(ctx context.Context, recipe *recipes.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RecipeModel{}
	model.FromDomain(recipe)
	lines := lineModels(recipe)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(lines).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	r.logger.Info("Created recipe with id ", recipe.ID)
	return nil
}

func (r *gormRecipeRepository) List(ctx context.Context, query *recipes.RecipeQuery) ([]*recipes.Recipe, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.RecipeModel{})

	if query.ID != "" {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}
	if query.Serves > 0 {
		dbQuery = dbQuery.Where("serves = ?", query.Serves)
	}
	if query.PreparationTimeInMinutes > 0 {
		dbQuery = dbQuery.Where("preparation_time_in_minutes = ?", query.PreparationTimeInMinutes)
	}
	if query.AuthorID != "" {
		dbQuery = dbQuery.Where("author_id = ?", query.AuthorID)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	var modelList []*models.RecipeModel
	err := dbQuery.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Order("name ASC, created_at DESC").
		Limit(query.PageSize).
		Offset((query.Page - 1) * query.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	domainList := make([]*recipes.Recipe, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
		orderLines(domainList[i])
	}

	return domainList, total, nil
}

func (r *gormRecipeRepository) GetByID(ctx context.Context, recipeID string) (*recipes.Recipe, error) {
	var model models.RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Where("id = ?", recipeID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe with ID %s: %w", recipeID, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch recipe: %w", err)
	}

	recipe := model.ToDomain()
	orderLines(recipe)
	return recipe, nil
}

func (r *gormRecipeRepository) UpdateByID(ctx context.Context, recipe *recipes.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RecipeModel{}
	model.FromDomain(recipe)
	lines := lineModels(recipe)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}

		// Drop lines no longer part of the set, then upsert the rest so
		// lines kept by ID stay in place.
		keep := make([]string, len(lines))
		for i, line := range lines {
			keep[i] = line.ID
		}
		orphans := tx.Where("recipe_id = ?", recipe.ID)
		if len(keep) > 0 {
			orphans = orphans.Where("id NOT IN ?", keep)
		}
		if err := orphans.Delete(&models.RecipeIngredientModel{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(lines).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	r.logger.Info("Updated recipe with id ", recipe.ID)
	return nil
}

func (r *gormRecipeRepository) DeleteByID(ctx context.Context, recipeID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", recipeID).Delete(&models.RecipeModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("recipe with ID %s: %w", recipeID, recipes.ErrProtected)
		}
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe with ID %s: %w", recipeID, recipes.ErrNotFound)
	}

	r.logger.Info("Deleted recipe with id ", recipeID)
	return nil
}

// lineModels converts the ingredient lines of a recipe into their database
// models, carrying the recipe ID into each line.
func lineModels(recipe *recipes.Recipe) []*models.RecipeIngredientModel {
	lines := make([]*models.RecipeIngredientModel, len(recipe.Ingredients))
	for i, line := range recipe.Ingredients {
		model := &models.RecipeIngredientModel{}
		model.FromDomain(recipe.ID, line)
		lines[i] = model
	}
	return lines
}

// orderLines sorts ingredient lines by ingredient name, newest first on
// name ties, matching the ordering of catalog listings.
func orderLines(recipe *recipes.Recipe) {
	sort.Slice(recipe.Ingredients, func(i, j int) bool {
		a, b := recipe.Ingredients[i], recipe.Ingredients[j]
		if a.Ingredient.Name != b.Ingredient.Name {
			return a.Ingredient.Name < b.Ingredient.Name
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
