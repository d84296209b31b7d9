package chat

import (
	"context"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

// SendMessage durably records one chat line. Broadcasting over the relay is
// the client's concern after this call returns; there is deliberately no
// atomicity between the two (see Hub).
func (s *Service) SendMessage(ctx context.Context, senderID int64, req SendMessageRequest) (*repository.MessageDetails, error) {
	ok, err := s.messages.HasBookingAccess(ctx, req.BookingID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAccessDenied
	}

	m := &domain.ChatMessage{
		BookingID:  req.BookingID,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	}
	if err := s.messages.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	return s.messages.GetMessageDetails(ctx, m.ID)
}

// GetMessages returns the booking's log oldest first and eagerly marks every
// message addressed to the requester as read: viewing is the read receipt.
// Messages addressed to the other party are untouched.
func (s *Service) GetMessages(ctx context.Context, requesterID, bookingID int64) ([]repository.MessageDetails, error) {
	ok, err := s.messages.HasBookingAccess(ctx, bookingID, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAccessDenied
	}

	msgs, err := s.messages.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.messages.MarkRead(ctx, bookingID, requesterID); err != nil {
		return nil, err
	}

	// Reflect the flip in the returned rows without re-querying.
	for i := range msgs {
		if msgs[i].ReceiverID == requesterID {
			msgs[i].IsRead = true
		}
	}
	return msgs, nil
}
