package models

import (
	"time"

	"github.com/PHedro/recipes/internal/domain/social"
)

// NotificationModel is the GORM database model for notifications
// (infrastructure concern). Notifications are derived data: they disappear
// with their recipe and merely lose the comment link when a comment goes
// away. The (kind, source_id) pair is unique so that re-processing a social
// event cannot insert a second row.
type NotificationModel struct {
	ID        string        `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time     `gorm:"not null;index"`
	UpdatedAt time.Time     `gorm:"not null;index"`
	UserID    string        `gorm:"not null;index;type:uuid"`
	User      UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ActorID   string        `gorm:"not null;type:uuid"`
	Actor     UserModel     `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
	RecipeID  string        `gorm:"not null;index;type:uuid"`
	Recipe    RecipeModel   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CommentID *string       `gorm:"type:uuid"`
	Comment   *CommentModel `gorm:"foreignKey:CommentID;constraint:OnDelete:SET NULL"`
	Kind      string        `gorm:"not null;type:varchar(16);uniqueIndex:idx_notifications_kind_source"`
	SourceID  string        `gorm:"not null;type:uuid;uniqueIndex:idx_notifications_kind_source"`
	ReadAt    *time.Time    `gorm:"index"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *social.Notification {
	return &social.Notification{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		UserID:    m.UserID,
		ActorID:   m.ActorID,
		RecipeID:  m.RecipeID,
		CommentID: m.CommentID,
		Kind:      m.Kind,
		SourceID:  m.SourceID,
		ReadAt:    m.ReadAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *social.Notification) {
	m.ID = n.ID
	m.CreatedAt = n.CreatedAt
	m.UpdatedAt = n.UpdatedAt
	m.UserID = n.UserID
	m.ActorID = n.ActorID
	m.RecipeID = n.RecipeID
	m.CommentID = n.CommentID
	m.Kind = n.Kind
	m.SourceID = n.SourceID
	m.ReadAt = n.ReadAt
}
