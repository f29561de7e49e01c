package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error message in API responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message in API responses
type InfoResponse struct {
	Message string `json:"message"`
}

// CreateUnitRequest carries the payload for creating a measurement unit.
type CreateUnitRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Abbreviation string `json:"abbreviation" validate:"required,min=1,max=10"`
}

// Validate for validating CreateUnitRequest struct
func (r *CreateUnitRequest) Validate() error {
	return validateRequest(r)
}

// PatchUnitRequest carries the unit fields of a partial update.
type PatchUnitRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Abbreviation *string `json:"abbreviation" validate:"omitempty,min=1,max=10"`
}

// Validate for validating PatchUnitRequest struct
func (r *PatchUnitRequest) Validate() error {
	return validateRequest(r)
}

// CreateIngredientRequest carries the payload for creating an ingredient.
type CreateIngredientRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// Validate for validating CreateIngredientRequest struct
func (r *CreateIngredientRequest) Validate() error {
	return validateRequest(r)
}

// PatchIngredientRequest carries the ingredient fields of a partial update.
type PatchIngredientRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

// Validate for validating PatchIngredientRequest struct
func (r *PatchIngredientRequest) Validate() error {
	return validateRequest(r)
}

// AuthorRefRequest references an existing user by id, unique username or
// unique email.
type AuthorRefRequest struct {
	ID       string `json:"id" validate:"omitempty,uuid4"`
	Username string `json:"username" validate:"omitempty,max=150"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
}

// IngredientRefRequest references an ingredient by id or unique name.
type IngredientRefRequest struct {
	ID   string `json:"id" validate:"omitempty,uuid4"`
	Name string `json:"name" validate:"omitempty,min=1,max=255"`
}

// UnitRefRequest references a measurement unit by id or unique name. Unknown
// names create the unit, which requires the abbreviation as well.
type UnitRefRequest struct {
	ID           string `json:"id" validate:"omitempty,uuid4"`
	Name         string `json:"name" validate:"omitempty,min=1,max=255"`
	Abbreviation string `json:"abbreviation" validate:"omitempty,min=1,max=10"`
}

// RecipeIngredientRequest is one ingredient line of a recipe payload.
type RecipeIngredientRequest struct {
	ID         string               `json:"id" validate:"omitempty,uuid4"`
	Ingredient IngredientRefRequest `json:"ingredient" validate:"required"`
	Unit       UnitRefRequest       `json:"unit" validate:"required"`
	Quantity   float64              `json:"quantity" validate:"required,gt=0"`
}

func (r *RecipeIngredientRequest) toInput() recipes.RecipeIngredientInput {
	return recipes.RecipeIngredientInput{
		ID:         r.ID,
		Ingredient: recipes.IngredientRef{ID: r.Ingredient.ID, Name: r.Ingredient.Name},
		Unit:       recipes.UnitRef{ID: r.Unit.ID, Name: r.Unit.Name, Abbreviation: r.Unit.Abbreviation},
		Quantity:   r.Quantity,
	}
}

// CreateRecipeRequest carries the payload for creating or fully updating a
// recipe.
type CreateRecipeRequest struct {
	Name                     string                    `json:"name" validate:"required,min=1,max=255"`
	Serves                   uint                      `json:"serves" validate:"required,gt=0"`
	PreparationTimeInMinutes uint                      `json:"preparation_time_in_minutes" validate:"required,gt=0"`
	Preparation              string                    `json:"preparation" validate:"required"`
	Author                   AuthorRefRequest          `json:"author" validate:"required"`
	Ingredients              []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
}

// Validate for validating CreateRecipeRequest struct
func (r *CreateRecipeRequest) Validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}
	if r.Author.ID == "" && r.Author.Username == "" && r.Author.Email == "" {
		return fmt.Errorf("validation failed: author must carry an id, username or email")
	}
	return nil
}

func (r *CreateRecipeRequest) toInput() *recipes.RecipeInput {
	input := &recipes.RecipeInput{
		Name:                     r.Name,
		Serves:                   r.Serves,
		PreparationTimeInMinutes: r.PreparationTimeInMinutes,
		Preparation:              r.Preparation,
		Author:                   recipes.AuthorRef{ID: r.Author.ID, Username: r.Author.Username, Email: r.Author.Email},
	}
	for _, line := range r.Ingredients {
		input.Ingredients = append(input.Ingredients, line.toInput())
	}
	return input
}

// PatchRecipeRequest carries the recipe fields of a partial update. An
// ingredients array, when present, replaces the linked line set wholesale.
type PatchRecipeRequest struct {
	Name                     *string                    `json:"name" validate:"omitempty,min=1,max=255"`
	Serves                   *uint                      `json:"serves" validate:"omitempty,gt=0"`
	PreparationTimeInMinutes *uint                      `json:"preparation_time_in_minutes" validate:"omitempty,gt=0"`
	Preparation              *string                    `json:"preparation" validate:"omitempty,min=1"`
	Author                   *AuthorRefRequest          `json:"author" validate:"omitempty"`
	Ingredients              *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty"`
}

// Validate for validating PatchRecipeRequest struct
func (r *PatchRecipeRequest) Validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}
	if r.Ingredients != nil {
		for i := range *r.Ingredients {
			if err := validateRequest(&(*r.Ingredients)[i]); err != nil {
				return fmt.Errorf("ingredient line %d: %w", i, err)
			}
		}
	}
	return nil
}

func (r *PatchRecipeRequest) toPatch() *recipes.RecipePatch {
	patch := &recipes.RecipePatch{
		Name:                     r.Name,
		Serves:                   r.Serves,
		PreparationTimeInMinutes: r.PreparationTimeInMinutes,
		Preparation:              r.Preparation,
	}
	if r.Author != nil {
		patch.Author = &recipes.AuthorRef{ID: r.Author.ID, Username: r.Author.Username, Email: r.Author.Email}
	}
	if r.Ingredients != nil {
		lines := make([]recipes.RecipeIngredientInput, 0, len(*r.Ingredients))
		for _, line := range *r.Ingredients {
			lines = append(lines, line.toInput())
		}
		patch.Ingredients = &lines
	}
	return patch
}

// CreateCommentRequest carries the payload for commenting on a recipe. The
// commenting user is the authenticated caller.
type CreateCommentRequest struct {
	RecipeID    string  `json:"recipe_id" validate:"required,uuid4"`
	InReplyToID *string `json:"in_reply_to_id" validate:"omitempty,uuid4"`
	Content     string  `json:"content" validate:"required"`
}

// Validate for validating CreateCommentRequest struct
func (r *CreateCommentRequest) Validate() error {
	return validateRequest(r)
}

// UpdateCommentRequest carries the new content of a comment.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Validate for validating UpdateCommentRequest struct
func (r *UpdateCommentRequest) Validate() error {
	return validateRequest(r)
}

// CreateLikeRequest carries the payload for liking a recipe, or one of its
// comments when comment_id is set. The liking user is the authenticated
// caller.
type CreateLikeRequest struct {
	RecipeID  string  `json:"recipe_id" validate:"required,uuid4"`
	CommentID *string `json:"comment_id" validate:"omitempty,uuid4"`
}

// Validate for validating CreateLikeRequest struct
func (r *CreateLikeRequest) Validate() error {
	return validateRequest(r)
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserResponse(user *accounts.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// UnitResponse represents a measurement unit in API responses
type UnitResponse struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
}

func newUnitResponse(unit *recipes.Unit) UnitResponse {
	return UnitResponse{
		ID:           unit.ID,
		CreatedAt:    unit.CreatedAt,
		UpdatedAt:    unit.UpdatedAt,
		Name:         unit.Name,
		Abbreviation: unit.Abbreviation,
	}
}

// IngredientResponse represents an ingredient in API responses
type IngredientResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
}

func newIngredientResponse(ingredient *recipes.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:        ingredient.ID,
		CreatedAt: ingredient.CreatedAt,
		UpdatedAt: ingredient.UpdatedAt,
		Name:      ingredient.Name,
	}
}

// RecipeIngredientResponse represents one ingredient line of a recipe in API
// responses
type RecipeIngredientResponse struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Ingredient IngredientResponse `json:"ingredient"`
	Unit       UnitResponse       `json:"unit"`
	Quantity   float64            `json:"quantity"`
}

// RecipeResponse represents a recipe with its author and ingredient lines in
// API responses
type RecipeResponse struct {
	ID                       string                     `json:"id"`
	CreatedAt                time.Time                  `json:"created_at"`
	UpdatedAt                time.Time                  `json:"updated_at"`
	Name                     string                     `json:"name"`
	Serves                   uint                       `json:"serves"`
	PreparationTimeInMinutes uint                       `json:"preparation_time_in_minutes"`
	Preparation              string                     `json:"preparation"`
	Author                   UserResponse               `json:"author"`
	Ingredients              []RecipeIngredientResponse `json:"ingredients"`
}

func newRecipeResponse(recipe *recipes.Recipe) RecipeResponse {
	lines := make([]RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		lines = append(lines, RecipeIngredientResponse{
			ID:         line.ID,
			CreatedAt:  line.CreatedAt,
			UpdatedAt:  line.UpdatedAt,
			Ingredient: newIngredientResponse(line.Ingredient),
			Unit:       newUnitResponse(line.Unit),
			Quantity:   line.Quantity,
		})
	}

	return RecipeResponse{
		ID:                       recipe.ID,
		CreatedAt:                recipe.CreatedAt,
		UpdatedAt:                recipe.UpdatedAt,
		Name:                     recipe.Name,
		Serves:                   recipe.Serves,
		PreparationTimeInMinutes: recipe.PreparationTimeInMinutes,
		Preparation:              recipe.Preparation,
		Author:                   newUserResponse(recipe.Author),
		Ingredients:              lines,
	}
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      string    `json:"user_id"`
	RecipeID    string    `json:"recipe_id"`
	InReplyToID *string   `json:"in_reply_to_id"`
	Content     string    `json:"content"`
}

func newCommentResponse(comment *social.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
		UserID:      comment.UserID,
		RecipeID:    comment.RecipeID,
		InReplyToID: comment.InReplyToID,
		Content:     comment.Content,
	}
}

// LikeResponse represents a like in API responses
type LikeResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
	RecipeID  string    `json:"recipe_id"`
	CommentID *string   `json:"comment_id"`
}

func newLikeResponse(like *social.Like) LikeResponse {
	return LikeResponse{
		ID:        like.ID,
		CreatedAt: like.CreatedAt,
		UpdatedAt: like.UpdatedAt,
		UserID:    like.UserID,
		RecipeID:  like.RecipeID,
		CommentID: like.CommentID,
	}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Kind      string     `json:"kind"`
	ActorID   string     `json:"actor_id"`
	RecipeID  string     `json:"recipe_id"`
	CommentID *string    `json:"comment_id"`
	SourceID  string     `json:"source_id"`
	ReadAt    *time.Time `json:"read_at"`
}

func newNotificationResponse(notification *social.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		CreatedAt: notification.CreatedAt,
		Kind:      notification.Kind,
		ActorID:   notification.ActorID,
		RecipeID:  notification.RecipeID,
		CommentID: notification.CommentID,
		SourceID:  notification.SourceID,
		ReadAt:    notification.ReadAt,
	}
}

func validateRequest(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
