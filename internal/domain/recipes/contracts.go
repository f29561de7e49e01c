package recipes

import (
	"context"
	"errors"
)

// Sentinel errors returned by catalog repositories and services.
var (
	// ErrNotFound marks lookups for rows that do not exist.
	ErrNotFound = errors.New("catalog record not found")
	// ErrDuplicate marks writes violating a uniqueness constraint.
	ErrDuplicate = errors.New("catalog record already exists")
	// ErrProtected marks deletes blocked by rows still referencing the target.
	ErrProtected = errors.New("catalog record is still referenced")
	// ErrBadReference marks nested payload references that cannot be resolved,
	// e.g. an author ID no user has or an ingredient ID no ingredient has.
	ErrBadReference = errors.New("catalog reference cannot be resolved")
)

// UnitService defines methods for managing measurement units.
type UnitService interface {
	// List retrieves a page of units matching the query filters.
	// It returns the page of units, the total match count and any error encountered.
	List(ctx context.Context, query *UnitQuery) ([]*Unit, int64, error)

	// GetByID retrieves a unit by its unique ID.
	GetByID(ctx context.Context, unitID string) (*Unit, error)

	// Create stores a new unit.
	Create(ctx context.Context, name, abbreviation string) (*Unit, error)

	// UpdateByID replaces every field of the unit with the given ID.
	UpdateByID(ctx context.Context, unitID, name, abbreviation string) (*Unit, error)

	// PatchByID updates only the fields present in the patch.
	PatchByID(ctx context.Context, unitID string, patch *UnitPatch) (*Unit, error)

	// DeleteByID deletes a unit. Units referenced by recipe ingredient lines
	// cannot be deleted and yield ErrProtected.
	DeleteByID(ctx context.Context, unitID string) error
}

// IngredientService defines methods for managing ingredients.
type IngredientService interface {
	// List retrieves a page of ingredients matching the query filters.
	// It returns the page of ingredients, the total match count and any error encountered.
	List(ctx context.Context, query *IngredientQuery) ([]*Ingredient, int64, error)

	// GetByID retrieves an ingredient by its unique ID.
	GetByID(ctx context.Context, ingredientID string) (*Ingredient, error)

	// Create stores a new ingredient.
	Create(ctx context.Context, name string) (*Ingredient, error)

	// UpdateByID replaces every field of the ingredient with the given ID.
	UpdateByID(ctx context.Context, ingredientID, name string) (*Ingredient, error)

	// PatchByID updates only the fields present in the patch.
	PatchByID(ctx context.Context, ingredientID string, patch *IngredientPatch) (*Ingredient, error)

	// DeleteByID deletes an ingredient. Ingredients referenced by recipe
	// ingredient lines cannot be deleted and yield ErrProtected.
	DeleteByID(ctx context.Context, ingredientID string) error
}

// RecipeService defines methods for managing recipes, including the
// resolution of nested author, ingredient and unit references carried by
// recipe payloads.
type RecipeService interface {
	// List retrieves a page of recipes matching the query filters, each with
	// its author and ingredient lines resolved.
	List(ctx context.Context, query *RecipeQuery) ([]*Recipe, int64, error)

	// GetByID retrieves a recipe by its unique ID with its author and
	// ingredient lines resolved.
	GetByID(ctx context.Context, recipeID string) (*Recipe, error)

	// Create resolves the nested references of the input and stores a new
	// recipe together with its ingredient lines.
	Create(ctx context.Context, input *RecipeInput) (*Recipe, error)

	// UpdateByID replaces the recipe fields and its linked ingredient line
	// set with the input.
	UpdateByID(ctx context.Context, recipeID string, input *RecipeInput) (*Recipe, error)

	// PatchByID updates only the fields present in the patch. A non-nil
	// ingredient set replaces the linked lines wholesale.
	PatchByID(ctx context.Context, recipeID string, patch *RecipePatch) (*Recipe, error)

	// DeleteByID deletes a recipe together with its ingredient lines.
	// Recipes referenced by comments or likes yield ErrProtected.
	DeleteByID(ctx context.Context, recipeID string) error
}

// UnitRepository defines the interface for unit persistence operations
type UnitRepository interface {
	Create(ctx context.Context, unit *Unit) error
	List(ctx context.Context, query *UnitQuery) ([]*Unit, int64, error)
	GetByID(ctx context.Context, unitID string) (*Unit, error)
	GetByName(ctx context.Context, name string) (*Unit, error)
	UpdateByID(ctx context.Context, unit *Unit) error
	DeleteByID(ctx context.Context, unitID string) error
}

// IngredientRepository defines the interface for ingredient persistence operations
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *Ingredient) error
	List(ctx context.Context, query *IngredientQuery) ([]*Ingredient, int64, error)
	GetByID(ctx context.Context, ingredientID string) (*Ingredient, error)
	GetByName(ctx context.Context, name string) (*Ingredient, error)
	UpdateByID(ctx context.Context, ingredient *Ingredient) error
	DeleteByID(ctx context.Context, ingredientID string) error
}

// RecipeRepository defines the interface for recipe persistence operations.
// Writes cover the recipe row and its ingredient line set atomically.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	List(ctx context.Context, query *RecipeQuery) ([]*Recipe, int64, error)
	GetByID(ctx context.Context, recipeID string) (*Recipe, error)
	UpdateByID(ctx context.Context, recipe *Recipe) error
	DeleteByID(ctx context.Context, recipeID string) error
}
