package chat

type SendMessageRequest struct {
	BookingID  int64  `json:"booking_id" binding:"required"`
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}
