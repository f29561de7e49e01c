package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/infrastructure/cache"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"github.com/google/uuid"
)

// unitService implements the UnitService interface for managing measurement units
type unitService struct {
	unitRepo recipes.UnitRepository
	logger   logger.Logger
}

// NewUnitService creates a new unitService instance
func NewUnitService(unitRepo recipes.UnitRepository, logger logger.Logger) (recipes.UnitService, error) {
	return &unitService{
		unitRepo: unitRepo,
		logger:   logger,
	}, nil
}

// List retrieves a page of units matching the query filters.
func (s *unitService) List(ctx context.Context, query *recipes.UnitQuery) ([]*recipes.Unit, int64, error) {
	units, total, err := s.unitRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return units, total, nil
}

// GetByID retrieves a unit by its ID.
func (s *unitService) GetByID(ctx context.Context, unitID string) (*recipes.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return unit, nil
}

// Create stores a new unit.
func (s *unitService) Create(ctx context.Context, name, abbreviation string) (*recipes.Unit, error) {
	now := time.Now()
	unit := &recipes.Unit{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         name,
		Abbreviation: abbreviation,
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return unit, nil
}

// UpdateByID replaces every field of the unit with the given ID.
func (s *unitService) UpdateByID(ctx context.Context, unitID, name, abbreviation string) (*recipes.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	unit.Name = name
	unit.Abbreviation = abbreviation
	unit.UpdatedAt = time.Now()

	if err := s.unitRepo.UpdateByID(ctx, unit); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return unit, nil
}

// PatchByID updates only the fields present in the patch.
func (s *unitService) PatchByID(ctx context.Context, unitID string, patch *recipes.UnitPatch) (*recipes.Unit, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if patch.Name != nil {
		unit.Name = *patch.Name
	}
	if patch.Abbreviation != nil {
		unit.Abbreviation = *patch.Abbreviation
	}
	unit.UpdatedAt = time.Now()

	if err := s.unitRepo.UpdateByID(ctx, unit); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return unit, nil
}

// DeleteByID deletes a unit.
func (s *unitService) DeleteByID(ctx context.Context, unitID string) error {
	if err := s.unitRepo.DeleteByID(ctx, unitID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ingredientService implements the IngredientService interface for managing ingredients
type ingredientService struct {
	ingredientRepo recipes.IngredientRepository
	logger         logger.Logger
}

// NewIngredientService creates a new ingredientService instance
func NewIngredientService(ingredientRepo recipes.IngredientRepository, logger logger.Logger) (recipes.IngredientService, error) {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		logger:         logger,
	}, nil
}

// List retrieves a page of ingredients matching the query filters.
func (s *ingredientService) List(ctx context.Context, query *recipes.IngredientQuery) ([]*recipes.Ingredient, int64, error) {
	ingredients, total, err := s.ingredientRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return ingredients, total, nil
}

// GetByID retrieves an ingredient by its ID.
func (s *ingredientService) GetByID(ctx context.Context, ingredientID string) (*recipes.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ingredient, nil
}

// Create stores a new ingredient.
func (s *ingredientService) Create(ctx context.Context, name string) (*recipes.Ingredient, error) {
	now := time.Now()
	ingredient := &recipes.Ingredient{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ingredient, nil
}

// UpdateByID replaces every field of the ingredient with the given ID.
func (s *ingredientService) UpdateByID(ctx context.Context, ingredientID, name string) (*recipes.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	ingredient.Name = name
	ingredient.UpdatedAt = time.Now()

	if err := s.ingredientRepo.UpdateByID(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ingredient, nil
}

// PatchByID updates only the fields present in the patch.
func (s *ingredientService) PatchByID(ctx context.Context, ingredientID string, patch *recipes.IngredientPatch) (*recipes.Ingredient, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	ingredient, err := s.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if patch.Name != nil {
		ingredient.Name = *patch.Name
	}
	ingredient.UpdatedAt = time.Now()

	if err := s.ingredientRepo.UpdateByID(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ingredient, nil
}

// DeleteByID deletes an ingredient.
func (s *ingredientService) DeleteByID(ctx context.Context, ingredientID string) error {
	if err := s.ingredientRepo.DeleteByID(ctx, ingredientID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// recipeService implements the RecipeService interface for managing recipes.
// Recipe payloads reference their author, ingredients and units by id or by
// unique name; the service resolves those references before writing and keeps
// a read-through cache of single-recipe lookups.
type recipeService struct {
	recipeRepo     recipes.RecipeRepository
	ingredientRepo recipes.IngredientRepository
	unitRepo       recipes.UnitRepository
	userRepo       accounts.UserRepository
	cache          cache.Cache
	cacheTTL       time.Duration
	logger         logger.Logger
}

// NewRecipeService creates a new recipeService instance. A nil cache disables
// caching; a non-positive cacheTTL falls back to one minute.
func NewRecipeService(
	recipeRepo recipes.RecipeRepository,
	ingredientRepo recipes.IngredientRepository,
	unitRepo recipes.UnitRepository,
	userRepo accounts.UserRepository,
	cache cache.Cache,
	cacheTTL time.Duration,
	logger logger.Logger,
) (recipes.RecipeService, error) {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &recipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		unitRepo:       unitRepo,
		userRepo:       userRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}, nil
}

// List retrieves a page of recipes matching the query filters.
func (s *recipeService) List(ctx context.Context, query *recipes.RecipeQuery) ([]*recipes.Recipe, int64, error) {
	matches, total, err := s.recipeRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return matches, total, nil
}

// GetByID retrieves a recipe by its ID, serving repeated lookups from the
// cache.
func (s *recipeService) GetByID(ctx context.Context, recipeID string) (*recipes.Recipe, error) {
	if recipe := s.cachedRecipe(ctx, recipeID); recipe != nil {
		return recipe, nil
	}

	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.storeCachedRecipe(ctx, recipe)
	return recipe, nil
}

// Create resolves the nested references of the input and stores a new recipe
// together with its ingredient lines.
func (s *recipeService) Create(ctx context.Context, input *recipes.RecipeInput) (*recipes.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	author, err := s.resolveAuthor(ctx, input.Author)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lines, err := s.buildLines(ctx, input.Ingredients, nil, now)
	if err != nil {
		return nil, err
	}

	recipe := &recipes.Recipe{
		ID:                       uuid.New().String(),
		CreatedAt:                now,
		UpdatedAt:                now,
		Name:                     input.Name,
		Serves:                   input.Serves,
		PreparationTimeInMinutes: input.PreparationTimeInMinutes,
		Preparation:              input.Preparation,
		Author:                   author,
		Ingredients:              lines,
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return recipe, nil
}

// UpdateByID replaces the recipe fields and its linked ingredient line set
// with the input. Lines carrying the ID of a line already linked to the
// recipe keep their creation time; every other linked line is dropped.
func (s *recipeService) UpdateByID(ctx context.Context, recipeID string, input *recipes.RecipeInput) (*recipes.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	author, err := s.resolveAuthor(ctx, input.Author)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lines, err := s.buildLines(ctx, input.Ingredients, recipe.Ingredients, now)
	if err != nil {
		return nil, err
	}

	recipe.Name = input.Name
	recipe.Serves = input.Serves
	recipe.PreparationTimeInMinutes = input.PreparationTimeInMinutes
	recipe.Preparation = input.Preparation
	recipe.Author = author
	recipe.Ingredients = lines
	recipe.UpdatedAt = now

	if err := s.recipeRepo.UpdateByID(ctx, recipe); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.dropCachedRecipe(ctx, recipeID)
	return recipe, nil
}

// PatchByID updates only the fields present in the patch. A non-nil
// ingredient set replaces the linked lines wholesale.
func (s *recipeService) PatchByID(ctx context.Context, recipeID string, patch *recipes.RecipePatch) (*recipes.Recipe, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now()
	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Serves != nil {
		recipe.Serves = *patch.Serves
	}
	if patch.PreparationTimeInMinutes != nil {
		recipe.PreparationTimeInMinutes = *patch.PreparationTimeInMinutes
	}
	if patch.Preparation != nil {
		recipe.Preparation = *patch.Preparation
	}
	if patch.Author != nil {
		author, err := s.resolveAuthor(ctx, *patch.Author)
		if err != nil {
			return nil, err
		}
		recipe.Author = author
	}
	if patch.Ingredients != nil {
		lines, err := s.buildLines(ctx, *patch.Ingredients, recipe.Ingredients, now)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = lines
	}
	recipe.UpdatedAt = now

	if err := s.recipeRepo.UpdateByID(ctx, recipe); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.dropCachedRecipe(ctx, recipeID)
	return recipe, nil
}

// DeleteByID deletes a recipe together with its ingredient lines.
func (s *recipeService) DeleteByID(ctx context.Context, recipeID string) error {
	if err := s.recipeRepo.DeleteByID(ctx, recipeID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.dropCachedRecipe(ctx, recipeID)
	return nil
}

// resolveAuthor turns an author reference into the existing user it names.
func (s *recipeService) resolveAuthor(ctx context.Context, ref recipes.AuthorRef) (*accounts.User, error) {
	var (
		user *accounts.User
		err  error
	)

	switch {
	case ref.ID != "":
		user, err = s.userRepo.GetByID(ctx, ref.ID)
	case ref.Username != "":
		user, err = s.userRepo.GetByUsername(ctx, ref.Username)
	case ref.Email != "":
		user, err = s.userRepo.GetByEmail(ctx, ref.Email)
	default:
		return nil, fmt.Errorf("author reference is empty: %w", recipes.ErrBadReference)
	}

	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, fmt.Errorf("author: %w", recipes.ErrBadReference)
		}
		return nil, fmt.Errorf("%w", err)
	}

	return user, nil
}

// resolveIngredient turns an ingredient reference into an existing
// ingredient, creating one when the reference names an unknown ingredient.
func (s *recipeService) resolveIngredient(ctx context.Context, ref recipes.IngredientRef) (*recipes.Ingredient, error) {
	if ref.ID != "" {
		ingredient, err := s.ingredientRepo.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, recipes.ErrNotFound) {
				return nil, fmt.Errorf("ingredient with ID %s: %w", ref.ID, recipes.ErrBadReference)
			}
			return nil, fmt.Errorf("%w", err)
		}
		return ingredient, nil
	}

	if ref.Name == "" {
		return nil, fmt.Errorf("ingredient reference is empty: %w", recipes.ErrBadReference)
	}

	ingredient, err := s.ingredientRepo.GetByName(ctx, ref.Name)
	if err == nil {
		return ingredient, nil
	}
	if !errors.Is(err, recipes.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	now := time.Now()
	created := &recipes.Ingredient{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      ref.Name,
	}
	if err := s.ingredientRepo.Create(ctx, created); err != nil {
		// A concurrent request or an earlier line of this payload created it
		if errors.Is(err, recipes.ErrDuplicate) {
			return s.ingredientRepo.GetByName(ctx, ref.Name)
		}
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created ingredient '", ref.Name, "' referenced by a recipe payload")
	return created, nil
}

// resolveUnit turns a unit reference into an existing unit, creating one when
// the reference names an unknown unit and carries an abbreviation for it.
func (s *recipeService) resolveUnit(ctx context.Context, ref recipes.UnitRef) (*recipes.Unit, error) {
	if ref.ID != "" {
		unit, err := s.unitRepo.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, recipes.ErrNotFound) {
				return nil, fmt.Errorf("unit with ID %s: %w", ref.ID, recipes.ErrBadReference)
			}
			return nil, fmt.Errorf("%w", err)
		}
		return unit, nil
	}

	if ref.Name == "" {
		return nil, fmt.Errorf("unit reference is empty: %w", recipes.ErrBadReference)
	}

	unit, err := s.unitRepo.GetByName(ctx, ref.Name)
	if err == nil {
		return unit, nil
	}
	if !errors.Is(err, recipes.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	if ref.Abbreviation == "" {
		return nil, fmt.Errorf("unit '%s' does not exist and carries no abbreviation to create it with: %w", ref.Name, recipes.ErrBadReference)
	}

	now := time.Now()
	created := &recipes.Unit{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         ref.Name,
		Abbreviation: ref.Abbreviation,
	}
	if err := s.unitRepo.Create(ctx, created); err != nil {
		// A concurrent request or an earlier line of this payload created it
		if errors.Is(err, recipes.ErrDuplicate) {
			return s.unitRepo.GetByName(ctx, ref.Name)
		}
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created unit '", ref.Name, "' referenced by a recipe payload")
	return created, nil
}

// buildLines resolves the ingredient and unit of every input line. Lines
// carrying the ID of a line in existing update it in place and keep its
// creation time; any other ID is ignored and the line is created fresh.
func (s *recipeService) buildLines(ctx context.Context, inputs []recipes.RecipeIngredientInput, existing []*recipes.RecipeIngredient, now time.Time) ([]*recipes.RecipeIngredient, error) {
	existingByID := make(map[string]*recipes.RecipeIngredient, len(existing))
	for _, line := range existing {
		existingByID[line.ID] = line
	}

	lines := make([]*recipes.RecipeIngredient, 0, len(inputs))
	for i, input := range inputs {
		ingredient, err := s.resolveIngredient(ctx, input.Ingredient)
		if err != nil {
			return nil, fmt.Errorf("ingredient line %d: %w", i, err)
		}
		unit, err := s.resolveUnit(ctx, input.Unit)
		if err != nil {
			return nil, fmt.Errorf("ingredient line %d: %w", i, err)
		}

		line := &recipes.RecipeIngredient{
			ID:         uuid.New().String(),
			CreatedAt:  now,
			UpdatedAt:  now,
			Ingredient: ingredient,
			Unit:       unit,
			Quantity:   input.Quantity,
		}
		if kept, ok := existingByID[input.ID]; ok {
			line.ID = kept.ID
			line.CreatedAt = kept.CreatedAt
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// recipeCacheKey returns the cache key of one recipe.
func recipeCacheKey(recipeID string) string {
	return "recipes:recipe:" + recipeID
}

// cachedRecipe returns the cached copy of a recipe, or nil on a miss.
// Caching is best-effort: cache trouble is logged, never surfaced.
func (s *recipeService) cachedRecipe(ctx context.Context, recipeID string) *recipes.Recipe {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, recipeCacheKey(recipeID))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("Failed to read recipe ", recipeID, " from the cache: ", err)
		}
		return nil
	}

	var recipe recipes.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		s.logger.Warn("Dropping undecodable cache entry for recipe ", recipeID, ": ", err)
		s.dropCachedRecipe(ctx, recipeID)
		return nil
	}

	return &recipe
}

func (s *recipeService) storeCachedRecipe(ctx context.Context, recipe *recipes.Recipe) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(recipe)
	if err != nil {
		s.logger.Warn("Failed to encode recipe ", recipe.ID, " for the cache: ", err)
		return
	}

	if err := s.cache.Set(ctx, recipeCacheKey(recipe.ID), string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache recipe ", recipe.ID, ": ", err)
	}
}

func (s *recipeService) dropCachedRecipe(ctx context.Context, recipeID string) {
	if s.cache == nil {
		return
	}

	if _, err := s.cache.Del(ctx, recipeCacheKey(recipeID)); err != nil {
		s.logger.Warn("Failed to drop cached recipe ", recipeID, ": ", err)
	}
}
