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

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (social.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *social.Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("notification for %s %s: %w", notification.Kind, notification.SourceID, social.ErrDuplicate)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("notification references a missing row: %w", social.ErrNotFound)
		}
		return fmt.Errorf("failed to create notification: %w", err)
	}

	r.logger.Info("Created notification with id ", notification.ID)
	return nil
}

func (r *gormNotificationRepository) List(ctx context.Context, query *social.NotificationQuery) ([]*social.Notification, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ?", query.UserID)

	if query.Unread {
		dbQuery = dbQuery.Where("read_at IS NULL")
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	err := dbQuery.
		Order("created_at DESC").
		Limit(query.PageSize).
		Offset((query.Page - 1) * query.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	domainList := make([]*social.Notification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, notificationID string) (*social.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", notificationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification with ID %s: %w", notificationID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNotificationRepository) UpdateByID(ctx context.Context, notification *social.Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	r.logger.Info("Updated notification with id ", notification.ID)
	return nil
}
