package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"github.com/google/uuid"
)

// commentService implements the CommentService interface for managing recipe comments
type commentService struct {
	commentRepo social.CommentRepository
	publisher   social.EventPublisher
	logger      logger.Logger
}

// NewCommentService creates a new commentService instance. A nil publisher
// disables event publishing.
func NewCommentService(commentRepo social.CommentRepository, publisher social.EventPublisher, logger logger.Logger) (social.CommentService, error) {
	return &commentService{
		commentRepo: commentRepo,
		publisher:   publisher,
		logger:      logger,
	}, nil
}

// List retrieves a page of comments matching the query filters.
func (s *commentService) List(ctx context.Context, query *social.CommentQuery) ([]*social.Comment, int64, error) {
	comments, total, err := s.commentRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return comments, total, nil
}

// GetByID retrieves a comment by its ID.
func (s *commentService) GetByID(ctx context.Context, commentID string) (*social.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return comment, nil
}

// Create stores a new comment and publishes the matching event. Replies must
// target a comment of the commented recipe.
func (s *commentService) Create(ctx context.Context, input *social.CommentInput) (*social.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if input.InReplyToID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.InReplyToID)
		if err != nil {
			return nil, fmt.Errorf("reply target: %w", err)
		}
		if parent.RecipeID != input.RecipeID {
			return nil, fmt.Errorf("reply target %s: %w", *input.InReplyToID, social.ErrCrossRecipe)
		}
	}

	now := time.Now()
	comment := &social.Comment{
		ID:          uuid.New().String(),
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      input.UserID,
		RecipeID:    input.RecipeID,
		InReplyToID: input.InReplyToID,
		Content:     input.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, &social.Event{
			Kind:      social.EventKindComment,
			SourceID:  comment.ID,
			ActorID:   comment.UserID,
			RecipeID:  comment.RecipeID,
			CreatedAt: comment.CreatedAt,
		})
	}

	return comment, nil
}

// UpdateContentByID replaces the content of a comment.
func (s *commentService) UpdateContentByID(ctx context.Context, commentID, content string) (*social.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateByID(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return comment, nil
}

// DeleteByID deletes a comment.
func (s *commentService) DeleteByID(ctx context.Context, commentID string) error {
	if err := s.commentRepo.DeleteByID(ctx, commentID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// likeService implements the LikeService interface for managing likes
type likeService struct {
	likeRepo    social.LikeRepository
	commentRepo social.CommentRepository
	publisher   social.EventPublisher
	logger      logger.Logger
}

// NewLikeService creates a new likeService instance. A nil publisher disables
// event publishing.
func NewLikeService(likeRepo social.LikeRepository, commentRepo social.CommentRepository, publisher social.EventPublisher, logger logger.Logger) (social.LikeService, error) {
	return &likeService{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
		logger:      logger,
	}, nil
}

// List retrieves a page of likes matching the query filters.
func (s *likeService) List(ctx context.Context, query *social.LikeQuery) ([]*social.Like, int64, error) {
	likes, total, err := s.likeRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return likes, total, nil
}

// GetByID retrieves a like by its ID.
func (s *likeService) GetByID(ctx context.Context, likeID string) (*social.Like, error) {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return like, nil
}

// Create stores a new like and publishes the matching event. A liked comment
// must belong to the liked recipe.
func (s *likeService) Create(ctx context.Context, input *social.LikeInput) (*social.Like, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if input.CommentID != nil {
		comment, err := s.commentRepo.GetByID(ctx, *input.CommentID)
		if err != nil {
			return nil, fmt.Errorf("liked comment: %w", err)
		}
		if comment.RecipeID != input.RecipeID {
			return nil, fmt.Errorf("liked comment %s: %w", *input.CommentID, social.ErrCrossRecipe)
		}
	}

	now := time.Now()
	like := &social.Like{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    input.UserID,
		RecipeID:  input.RecipeID,
		CommentID: input.CommentID,
	}

	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, &social.Event{
			Kind:      social.EventKindLike,
			SourceID:  like.ID,
			ActorID:   like.UserID,
			RecipeID:  like.RecipeID,
			CreatedAt: like.CreatedAt,
		})
	}

	return like, nil
}

// DeleteByID deletes a like.
func (s *likeService) DeleteByID(ctx context.Context, likeID string) error {
	if err := s.likeRepo.DeleteByID(ctx, likeID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// notificationService implements the NotificationService interface. Listing
// and marking serve the REST API; Materialize runs in the background worker
// and turns queued social events into notification rows.
type notificationService struct {
	notificationRepo social.NotificationRepository
	commentRepo      social.CommentRepository
	likeRepo         social.LikeRepository
	recipeRepo       recipes.RecipeRepository
	logger           logger.Logger
}

// NewNotificationService creates a new notificationService instance
func NewNotificationService(
	notificationRepo social.NotificationRepository,
	commentRepo social.CommentRepository,
	likeRepo social.LikeRepository,
	recipeRepo recipes.RecipeRepository,
	logger logger.Logger,
) (social.NotificationService, error) {
	return &notificationService{
		notificationRepo: notificationRepo,
		commentRepo:      commentRepo,
		likeRepo:         likeRepo,
		recipeRepo:       recipeRepo,
		logger:           logger,
	}, nil
}

// List retrieves a page of the querying user's notifications.
func (s *notificationService) List(ctx context.Context, query *social.NotificationQuery) ([]*social.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return notifications, total, nil
}

// MarkReadByID marks one of the user's notifications as read. Marking an
// already read notification changes nothing.
func (s *notificationService) MarkReadByID(ctx context.Context, notificationID, userID string) (*social.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// Rows of other users stay invisible
	if notification.UserID != userID {
		return nil, fmt.Errorf("notification with ID %s: %w", notificationID, social.ErrNotFound)
	}

	if notification.ReadAt == nil {
		now := time.Now()
		notification.ReadAt = &now
		notification.UpdatedAt = now

		if err := s.notificationRepo.UpdateByID(ctx, notification); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return notification, nil
}

// Materialize turns a social event into a notification row for the affected
// user. Self-notifications are skipped and re-deliveries of the same event
// insert no second row. Events whose rows vanished in the meantime are
// dropped without error so the queue does not retry them forever.
func (s *notificationService) Materialize(ctx context.Context, event *social.Event) error {
	var (
		recipientID string
		kind        string
		commentID   *string
		err         error
	)

	switch event.Kind {
	case social.EventKindComment:
		recipientID, kind, commentID, err = s.resolveCommentEvent(ctx, event)
	case social.EventKindLike:
		recipientID, kind, commentID, err = s.resolveLikeEvent(ctx, event)
	default:
		s.logger.Warn("Dropping social event of unknown kind ", event.Kind)
		return nil
	}

	if err != nil {
		if errors.Is(err, social.ErrNotFound) || errors.Is(err, recipes.ErrNotFound) {
			s.logger.Info("Dropping social event ", event.SourceID, ": ", err)
			return nil
		}
		return fmt.Errorf("%w", err)
	}

	if recipientID == event.ActorID {
		return nil
	}

	now := time.Now()
	notification := &social.Notification{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    recipientID,
		ActorID:   event.ActorID,
		RecipeID:  event.RecipeID,
		CommentID: commentID,
		Kind:      kind,
		SourceID:  event.SourceID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		// The event was delivered before
		if errors.Is(err, social.ErrDuplicate) {
			return nil
		}
		if errors.Is(err, social.ErrNotFound) {
			s.logger.Info("Dropping social event ", event.SourceID, ": ", err)
			return nil
		}
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Materialized ", kind, " notification for user ", recipientID)
	return nil
}

// resolveCommentEvent picks the recipient of a comment event: the author of
// the parent comment for replies, the author of the recipe otherwise.
func (s *notificationService) resolveCommentEvent(ctx context.Context, event *social.Event) (recipientID, kind string, commentID *string, err error) {
	comment, err := s.commentRepo.GetByID(ctx, event.SourceID)
	if err != nil {
		return "", "", nil, err
	}

	if comment.InReplyToID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *comment.InReplyToID)
		if err != nil {
			return "", "", nil, err
		}
		return parent.UserID, social.NotificationKindReply, &comment.ID, nil
	}

	recipe, err := s.recipeRepo.GetByID(ctx, event.RecipeID)
	if err != nil {
		return "", "", nil, err
	}
	return recipe.Author.ID, social.NotificationKindComment, &comment.ID, nil
}

// resolveLikeEvent picks the recipient of a like event: the author of the
// liked comment when one is set, the author of the recipe otherwise.
func (s *notificationService) resolveLikeEvent(ctx context.Context, event *social.Event) (recipientID, kind string, commentID *string, err error) {
	like, err := s.likeRepo.GetByID(ctx, event.SourceID)
	if err != nil {
		return "", "", nil, err
	}

	if like.CommentID != nil {
		comment, err := s.commentRepo.GetByID(ctx, *like.CommentID)
		if err != nil {
			return "", "", nil, err
		}
		return comment.UserID, social.NotificationKindLike, like.CommentID, nil
	}

	recipe, err := s.recipeRepo.GetByID(ctx, event.RecipeID)
	if err != nil {
		return "", "", nil, err
	}
	return recipe.Author.ID, social.NotificationKindLike, nil, nil
}
