package chat

import (
	"context"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

type MessageRepository interface {
	HasBookingAccess(ctx context.Context, bookingID, userID int64) (bool, error)
	CreateMessage(ctx context.Context, m *domain.ChatMessage) error
	GetMessageDetails(ctx context.Context, id int64) (*repository.MessageDetails, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]repository.MessageDetails, error)
	MarkRead(ctx context.Context, bookingID, receiverID int64) error
}
