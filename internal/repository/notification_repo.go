package repository

import (
	"context"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByUser returns up to 50 of the user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var items []domain.Notification
	err := q.Order("created_at DESC").Limit(50).Find(&items).Error
	return items, err
}

// MarkRead is scoped to the owner so one user cannot ack another's rows.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
