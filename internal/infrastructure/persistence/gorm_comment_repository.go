package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/persistence/models"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCommentRepository creates a new GORM-based CommentRepository implementation
func NewGormCommentRepository(db *gorm.DB, logger logger.Logger) (social.CommentRepository, error) {
	return &gormCommentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *social.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("comment references a missing row: %w", social.ErrNotFound)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	r.logger.Info("Created comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) List(ctx context.Context, query *social.CommentQuery) ([]*social.Comment, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.CommentModel{})

	if query.ID != "" {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.RecipeID != "" {
		dbQuery = dbQuery.Where("recipe_id = ?", query.RecipeID)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var modelList []*models.CommentModel
	err := dbQuery.
		Order("created_at DESC").
		Limit(query.PageSize).
		Offset((query.Page - 1) * query.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch comments: %w", err)
	}

	domainList := make([]*social.Comment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormCommentRepository) GetByID(ctx context.Context, commentID string) (*social.Comment, error) {
	var model models.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with ID %s: %w", commentID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCommentRepository) UpdateByID(ctx context.Context, comment *social.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	r.logger.Info("Updated comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) DeleteByID(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&models.CommentModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("comment with ID %s: %w", commentID, social.ErrProtected)
		}
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %s: %w", commentID, social.ErrNotFound)
	}

	r.logger.Info("Deleted comment with id ", commentID)
	return nil
}
