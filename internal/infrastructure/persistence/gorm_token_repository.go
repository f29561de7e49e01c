package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/infrastructure/persistence/models"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTokenRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTokenRepository creates a new GORM-based TokenRepository implementation
func NewGormTokenRepository(db *gorm.DB, logger logger.Logger) (accounts.TokenRepository, error) {
	return &gormTokenRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTokenRepository) Create(ctx context.Context, token *accounts.Token) error {
	if err := token.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TokenModel{}
	model.FromDomain(token)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("token for user %s: %w", token.UserID, accounts.ErrDuplicate)
		}
		return fmt.Errorf("failed to create token: %w", err)
	}

	r.logger.Info("Created API token for user ", token.UserID)
	return nil
}

func (r *gormTokenRepository) GetByKey(ctx context.Context, key string) (*accounts.Token, error) {
	var model models.TokenModel
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("token: %w", accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return model.ToDomain(), nil
}
