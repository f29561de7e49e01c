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

type gormLikeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLikeRepository creates a new GORM-based LikeRepository implementation
func NewGormLikeRepository(db *gorm.DB, logger logger.Logger) (social.LikeRepository, error) {
	return &gormLikeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLikeRepository) Create(ctx context.Context, like *social.Like) error {
	if err := like.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LikeModel{}
	model.FromDomain(like)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("like references a missing row: %w", social.ErrNotFound)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	r.logger.Info("Created like with id ", like.ID)
	return nil
}

func (r *gormLikeRepository) List(ctx context.Context, query *social.LikeQuery) ([]*social.Like, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.LikeModel{})

	if query.ID != "" {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.RecipeID != "" {
		dbQuery = dbQuery.Where("recipe_id = ?", query.RecipeID)
	}
	if query.CommentID != "" {
		dbQuery = dbQuery.Where("comment_id = ?", query.CommentID)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	var modelList []*models.LikeModel
	err := dbQuery.
		Order("created_at DESC").
		Limit(query.PageSize).
		Offset((query.Page - 1) * query.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch likes: %w", err)
	}

	domainList := make([]*social.Like, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormLikeRepository) GetByID(ctx context.Context, likeID string) (*social.Like, error) {
	var model models.LikeModel
	if err := r.db.WithContext(ctx).Where("id = ?", likeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("like with ID %s: %w", likeID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch like: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormLikeRepository) DeleteByID(ctx context.Context, likeID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", likeID).Delete(&models.LikeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("like with ID %s: %w", likeID, social.ErrNotFound)
	}

	r.logger.Info("Deleted like with id ", likeID)
	return nil
}
